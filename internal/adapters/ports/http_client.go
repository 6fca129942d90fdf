package ports

import "net/http"

// HTTPClient is a minimal HTTP client interface for making requests.
// Adapters take it by injection so tests can substitute a mock, and so the
// caller controls connection pooling and timeouts.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
