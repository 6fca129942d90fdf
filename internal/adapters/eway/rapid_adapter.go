package eway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/kevin07696/eway-service/internal/adapters/ports"
	"github.com/kevin07696/eway-service/internal/domain/models"
	domainports "github.com/kevin07696/eway-service/internal/domain/ports"
	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
	"github.com/kevin07696/eway-service/pkg/security"
)

// Rapid API direct payment endpoints. Sandbox and live differ only by host.
const (
	EndpointLive    = "https://api.ewaypayments.com/Transaction"
	EndpointSandbox = "https://api.sandbox.ewaypayments.com/Transaction"
)

// DefaultTimeout bounds a gateway call when the caller's context carries no
// deadline. Kept short with no retry: retrying a payment request risks a
// double charge.
const DefaultTimeout = 30 * time.Second

// Config holds the per-merchant settings of a Rapid API connection
type Config struct {
	Credentials models.Credentials
	Capture     bool   // false records an authorize-only (stored) payment
	UseSandbox  bool
	PartnerID   string
	Timeout     time.Duration
}

// Endpoint returns the direct payment URL for the configured environment
func (c Config) Endpoint() string {
	if c.UseSandbox {
		return EndpointSandbox
	}
	return EndpointLive
}

// RapidAPIAdapter implements the PaymentGateway interface against the eWAY
// Rapid REST API with HTTP Basic authentication
type RapidAPIAdapter struct {
	config     Config
	baseURL    string
	httpClient ports.HTTPClient
	logger     ports.Logger
}

// NewRapidAPIAdapter creates a new Rapid API adapter with dependency injection
func NewRapidAPIAdapter(config Config, baseURL string, httpClient ports.HTTPClient, logger ports.Logger) *RapidAPIAdapter {
	return &RapidAPIAdapter{
		config:     config,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// NewRapidAPIAdapterWithDefaults creates a new Rapid API adapter with a
// default HTTP client and the environment's standard endpoint
func NewRapidAPIAdapterWithDefaults(config Config, logger ports.Logger) *RapidAPIAdapter {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RapidAPIAdapter{
		config:  config,
		baseURL: config.Endpoint(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// DirectPaymentJSON returns the canonical request payload for a transaction
// without sending it. Used by tests and merchant diagnostics.
func (a *RapidAPIAdapter) DirectPaymentJSON(tx *models.Transaction) ([]byte, error) {
	return NewDirectPayment(tx, a.config.Capture, tx.CustomerIP, a.config.PartnerID).JSON()
}

// ProcessPayment implements PaymentGateway.ProcessPayment. One request, one
// attempt; a declined transaction comes back as a result, not an error.
func (a *RapidAPIAdapter) ProcessPayment(ctx context.Context, tx *models.Transaction) (*domainports.PaymentResult, error) {
	payload, err := a.DirectPaymentJSON(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal direct payment: %w", err)
	}

	if a.logger != nil {
		a.logger.Info("sending direct payment",
			ports.Bool("sandbox", a.config.UseSandbox),
			ports.String("invoice_ref", tx.InvoiceReference),
			ports.String("card_number", security.MaskCardNumber(tx.CardNumber)),
		)
	}

	raw, err := a.send(ctx, payload)
	if err != nil {
		return nil, err
	}

	resp, err := ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	return resultFromResponse(resp), nil
}

// send posts the payload and returns the raw response body
func (a *RapidAPIAdapter) send(ctx context.Context, payload []byte) ([]byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		timeout := a.config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &pkgerrors.TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(a.config.Credentials.APIKey, a.config.Credentials.Password)

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &pkgerrors.TransportError{Sent: true, Err: err}
	}

	// the body of an error status is not trusted to be well-formed JSON
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &pkgerrors.TransportError{StatusCode: httpResp.StatusCode, Sent: true, Err: errors.New(http.StatusText(httpResp.StatusCode))}
	}

	return body, nil
}

// classifyTransportFailure distinguishes timeouts from other network
// failures, and dial failures (request never sent) from failures after the
// request may have reached the gateway
func classifyTransportFailure(err error) error {
	sent := true
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		sent = false
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &pkgerrors.TimeoutError{Sent: sent, Err: err}
	}
	return &pkgerrors.TransportError{Sent: sent, Err: err}
}

// resultFromResponse maps a parsed gateway response into the caller-facing
// payment result
func resultFromResponse(resp *Response) *domainports.PaymentResult {
	result := &domainports.PaymentResult{
		Success:         resp.TransactionStatus,
		TransactionID:   resp.TransactionID,
		AuthCode:        resp.AuthorisationCode,
		ResponseCode:    resp.ResponseCode,
		ResponseMessage: resp.ResponseMessage,
		TotalAmount:     resp.TotalAmount,
		BeagleScore:     resp.BeagleScore,
		RawErrors:       resp.ErrorCodes,
		FraudCodes:      resp.FraudCodes(),
	}
	if !resp.TransactionStatus {
		result.ErrorMessage = resp.ErrorMessage("Transaction failed")
		result.ErrorDetail = resp.ErrorsForLog()
	}
	return result
}
