package eway

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kevin07696/eway-service/internal/adapters/ports"
	"github.com/kevin07696/eway-service/internal/domain/models"
	domainports "github.com/kevin07696/eway-service/internal/domain/ports"
	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
	"github.com/kevin07696/eway-service/pkg/security"
)

// Legacy XML gateway endpoints, used for customer-ID-only accounts that
// never migrated to Rapid API keys
const (
	LegacyEndpointLive    = "https://www.eway.com.au/gateway_cvn/xmlpayment.asp"
	LegacyEndpointStored  = "https://www.eway.com.au/gateway/xmlstored.asp"
	LegacyEndpointSandbox = "https://www.eway.com.au/gateway_cvn/xmltest/testpage.asp"
)

// legacyRequest is the XML payload of the legacy direct payment gateway.
// Amounts are in cents and the country is a full name, not a code.
type legacyRequest struct {
	XMLName            xml.Name `xml:"ewaygateway"`
	CustomerID         string   `xml:"ewayCustomerID"`
	TotalAmount        string   `xml:"ewayTotalAmount"`
	CardHoldersName    string   `xml:"ewayCardHoldersName"`
	CardNumber         string   `xml:"ewayCardNumber"`
	CardExpiryMonth    string   `xml:"ewayCardExpiryMonth"`
	CardExpiryYear     string   `xml:"ewayCardExpiryYear"`
	CVN                string   `xml:"ewayCVN"`
	FirstName          string   `xml:"ewayCustomerFirstName"`
	LastName           string   `xml:"ewayCustomerLastName"`
	Email              string   `xml:"ewayCustomerEmail"`
	Address            string   `xml:"ewayCustomerAddress"`
	Postcode           string   `xml:"ewayCustomerPostcode"`
	InvoiceDescription string   `xml:"ewayCustomerInvoiceDescription"`
	InvoiceReference   string   `xml:"ewayCustomerInvoiceRef"`
	TransactionNumber  string   `xml:"ewayTrxnNumber"`
	Option1            string   `xml:"ewayOption1"`
	Option2            string   `xml:"ewayOption2"`
	Option3            string   `xml:"ewayOption3"`
}

// legacyResponse is the XML response of the legacy gateway. TrxnError
// carries a free-text reason rather than a response code.
type legacyResponse struct {
	XMLName      xml.Name `xml:"ewayResponse"`
	TrxnStatus   string   `xml:"ewayTrxnStatus"`
	TrxnNumber   string   `xml:"ewayTrxnNumber"`
	AuthCode     string   `xml:"ewayAuthCode"`
	ReturnAmount string   `xml:"ewayReturnAmount"`
	TrxnError    string   `xml:"ewayTrxnError"`
}

// LegacyAPIAdapter implements the PaymentGateway interface against eWAY's
// legacy XML gateway, authenticated by customer ID alone
type LegacyAPIAdapter struct {
	config     Config
	baseURL    string
	httpClient ports.HTTPClient
	logger     ports.Logger
}

// NewLegacyAPIAdapter creates a new legacy gateway adapter with dependency injection
func NewLegacyAPIAdapter(config Config, baseURL string, httpClient ports.HTTPClient, logger ports.Logger) *LegacyAPIAdapter {
	return &LegacyAPIAdapter{
		config:     config,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// LegacyEndpoint returns the legacy gateway URL for the configured
// environment and capture mode
func (c Config) LegacyEndpoint() string {
	if c.UseSandbox {
		return LegacyEndpointSandbox
	}
	if !c.Capture {
		return LegacyEndpointStored
	}
	return LegacyEndpointLive
}

// newLegacyRequest maps a transaction into the legacy payload. The legacy
// gateway has one free-text address line, so street, suburb, state and
// country name are joined.
func newLegacyRequest(customerID string, tx *models.Transaction) *legacyRequest {
	addressParts := make([]string, 0, 5)
	for _, part := range []string{tx.Address1, tx.Address2, tx.Suburb, tx.State, tx.CountryName} {
		if part = CleanString(part); part != "" {
			addressParts = append(addressParts, part)
		}
	}

	options := tx.OptionValues()
	optionAt := func(i int) string {
		if i < len(options) {
			return options[i]
		}
		return ""
	}

	return &legacyRequest{
		CustomerID:         customerID,
		TotalAmount:        AmountToMinorUnits(tx.Amount),
		CardHoldersName:    CleanString(tx.CardHolderName),
		CardNumber:         NormalizeCardNumber(tx.CardNumber),
		CardExpiryMonth:    FormatExpiryMonth(tx.CardExpiryMonth),
		CardExpiryYear:     NormalizeExpiryYear(tx.CardExpiryYear),
		CVN:                CleanString(tx.CardVerificationNumber),
		FirstName:          CleanString(tx.FirstName),
		LastName:           CleanString(tx.LastName),
		Email:              CleanString(tx.Email),
		Address:            strings.Join(addressParts, ", "),
		Postcode:           CleanString(tx.Postcode),
		InvoiceDescription: CleanString(tx.InvoiceDescription),
		InvoiceReference:   CleanString(tx.InvoiceReference),
		TransactionNumber:  CleanString(tx.TransactionNumber),
		Option1:            optionAt(0),
		Option2:            optionAt(1),
		Option3:            optionAt(2),
	}
}

// ProcessPayment implements PaymentGateway.ProcessPayment over the legacy
// XML gateway
func (a *LegacyAPIAdapter) ProcessPayment(ctx context.Context, tx *models.Transaction) (*domainports.PaymentResult, error) {
	payload, err := xml.Marshal(newLegacyRequest(a.config.Credentials.CustomerID, tx))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal legacy payment: %w", err)
	}

	if a.logger != nil {
		a.logger.Info("sending legacy direct payment",
			ports.Bool("sandbox", a.config.UseSandbox),
			ports.String("invoice_ref", tx.InvoiceReference),
			ports.String("card_number", security.MaskCardNumber(tx.CardNumber)),
		)
	}

	raw, err := a.send(ctx, payload)
	if err != nil {
		return nil, err
	}

	var resp legacyResponse
	if err := xml.Unmarshal(raw, &resp); err != nil {
		return nil, pkgerrors.NewDecodeError("legacy response body is not valid XML", err)
	}

	result := &domainports.PaymentResult{
		Success:       strings.EqualFold(resp.TrxnStatus, "true"),
		TransactionID: resp.TrxnNumber,
		AuthCode:      resp.AuthCode,
		TotalAmount:   resp.ReturnAmount,
		BeagleScore:   -1,
	}
	if !result.Success {
		result.ErrorMessage = resp.TrxnError
		result.ErrorDetail = resp.TrxnError
		if resp.TrxnError != "" {
			result.RawErrors = []string{resp.TrxnError}
		}
	}
	return result, nil
}

func (a *LegacyAPIAdapter) send(ctx context.Context, payload []byte) ([]byte, error) {
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
	httpReq.Header.Set("Content-Type", "text/xml")

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &pkgerrors.TransportError{Sent: true, Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &pkgerrors.TransportError{StatusCode: httpResp.StatusCode, Sent: true, Err: errors.New(http.StatusText(httpResp.StatusCode))}
	}

	return body, nil
}
