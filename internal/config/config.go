package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kevin07696/eway-service/internal/domain/models"
)

// Config holds all application configuration
type Config struct {
	Gateway GatewayConfig
	Logger  LoggerConfig
}

// GatewayConfig holds eWAY gateway configuration. Live and sandbox
// credential sets coexist; UseSandbox selects which one a payment uses.
type GatewayConfig struct {
	Credentials models.CredentialSet
	UseSandbox  bool
	Capture     bool          // false records stored (authorize-only) payments
	PartnerID   string        // partner identifier sent with every request
	CustomerIP  string        // fallback cardholder IP when the host supplies none
	Timeout     time.Duration // per-request gateway timeout
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			Credentials: models.CredentialSet{
				Live: models.Credentials{
					APIKey:     getEnv("EWAY_API_KEY", ""),
					Password:   getEnv("EWAY_API_PASSWORD", ""),
					EcryptKey:  getEnv("EWAY_ECRYPT_KEY", ""),
					CustomerID: getEnv("EWAY_CUSTOMER_ID", ""),
				},
				Sandbox: models.Credentials{
					APIKey:     getEnv("EWAY_SANDBOX_API_KEY", ""),
					Password:   getEnv("EWAY_SANDBOX_API_PASSWORD", ""),
					EcryptKey:  getEnv("EWAY_SANDBOX_ECRYPT_KEY", ""),
					CustomerID: getEnv("EWAY_SANDBOX_CUSTOMER_ID", ""),
				},
			},
			UseSandbox: getEnvAsBool("EWAY_SANDBOX", true),
			Capture:    getEnvAsBool("EWAY_CAPTURE", true),
			PartnerID:  getEnv("EWAY_PARTNER_ID", ""),
			CustomerIP: getEnv("EWAY_CUSTOMER_IP", ""),
			Timeout:    time.Duration(getEnvAsInt("EWAY_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate that the active environment can drive a gateway
	if !cfg.Gateway.Credentials.Active(cfg.Gateway.UseSandbox).IsConfigured() {
		env := "EWAY_API_KEY/EWAY_API_PASSWORD or EWAY_CUSTOMER_ID"
		if cfg.Gateway.UseSandbox {
			env = "EWAY_SANDBOX_API_KEY/EWAY_SANDBOX_API_PASSWORD or EWAY_SANDBOX_CUSTOMER_ID"
		}
		return nil, fmt.Errorf("%s is required", env)
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
