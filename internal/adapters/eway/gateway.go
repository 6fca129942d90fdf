// Package eway integrates the eWAY payment gateway: the Rapid REST API for
// API-key accounts and the legacy XML gateway for customer-ID-only accounts.
// The request builder, response parser and response-code table live here;
// orchestration and logging policy live in the payment service.
package eway

import (
	"github.com/kevin07696/eway-service/internal/adapters/ports"
	domainports "github.com/kevin07696/eway-service/internal/domain/ports"
	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
)

// NewGateway selects the gateway implementation for the configured
// credentials: Rapid API when an API key and password are present, the
// legacy XML gateway when only a customer ID is set. Returns
// pkgerrors.ErrNotConfigured when neither applies, so hosts can tell the
// merchant the gateway is not set up rather than failing a payment.
func NewGateway(config Config, httpClient ports.HTTPClient, logger ports.Logger) (domainports.PaymentGateway, error) {
	creds := config.Credentials
	switch {
	case creds.HasRapidAPI():
		return NewRapidAPIAdapter(config, config.Endpoint(), httpClient, logger), nil
	case creds.HasLegacy():
		return NewLegacyAPIAdapter(config, config.LegacyEndpoint(), httpClient, logger), nil
	default:
		return nil, pkgerrors.ErrNotConfigured
	}
}
