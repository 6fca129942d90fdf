package models

// Credentials holds one set of eWAY account credentials. API key and
// password drive the Rapid REST API; CustomerID alone drives the legacy XML
// gateway. EcryptKey is only used by front-end Client Side Encryption and is
// carried here so hosts have a single credentials object to manage.
type Credentials struct {
	APIKey     string
	Password   string
	EcryptKey  string
	CustomerID string
}

// HasRapidAPI reports whether the Rapid API key and password are both set
func (c Credentials) HasRapidAPI() bool {
	return c.APIKey != "" && c.Password != ""
}

// HasLegacy reports whether a legacy customer ID is set
func (c Credentials) HasLegacy() bool {
	return c.CustomerID != ""
}

// IsConfigured reports whether the credentials can drive any gateway
func (c Credentials) IsConfigured() bool {
	return c.HasRapidAPI() || c.HasLegacy()
}

// CredentialSet pairs live and sandbox credentials. Exactly one of the two
// is active for any given payment attempt.
type CredentialSet struct {
	Live    Credentials
	Sandbox Credentials
}

// Active returns the credentials for the requested environment
func (s CredentialSet) Active(useSandbox bool) Credentials {
	if useSandbox {
		return s.Sandbox
	}
	return s.Live
}
