// Package payment orchestrates one payment attempt end to end: credential
// and gateway selection, one-shot transaction handling, and structured
// logging of the outcome on behalf of host integrations.
package payment

import (
	"context"

	"github.com/kevin07696/eway-service/internal/adapters/eway"
	"github.com/kevin07696/eway-service/internal/adapters/ports"
	"github.com/kevin07696/eway-service/internal/domain/models"
	domainports "github.com/kevin07696/eway-service/internal/domain/ports"
	"github.com/kevin07696/eway-service/pkg/security"
)

// Service processes payments through whichever eWAY gateway the supplied
// credentials support. It holds no per-transaction state; a Service is safe
// to reuse across payment attempts.
type Service struct {
	config  eway.Config
	gateway domainports.PaymentGateway
	logger  ports.Logger
}

// NewService builds a payment service for one credential environment.
// Returns pkgerrors.ErrNotConfigured when the active credentials cannot
// drive any gateway.
func NewService(set models.CredentialSet, config eway.Config, httpClient ports.HTTPClient, logger ports.Logger) (*Service, error) {
	config.Credentials = set.Active(config.UseSandbox)
	gateway, err := eway.NewGateway(config, httpClient, logger)
	if err != nil {
		return nil, err
	}
	return &Service{
		config:  config,
		gateway: gateway,
		logger:  logger,
	}, nil
}

// NewServiceWithGateway builds a payment service around an existing gateway,
// used by tests and by hosts that construct adapters themselves
func NewServiceWithGateway(gateway domainports.PaymentGateway, config eway.Config, logger ports.Logger) *Service {
	return &Service{
		config:  config,
		gateway: gateway,
		logger:  logger,
	}
}

// ProcessPayment consumes the transaction and processes it through the
// gateway. The transaction is one-shot: processing it a second time is a
// validation error, not a resend.
func (s *Service) ProcessPayment(ctx context.Context, tx *models.Transaction) (*domainports.PaymentResult, error) {
	if err := tx.Consume(); err != nil {
		return nil, err
	}

	// merchants without separate name fields send the cardholder name
	if tx.FirstName == "" && tx.LastName == "" {
		tx.LastName = tx.CardHolderName
	}

	s.logInfo("processing payment",
		ports.Bool("sandbox", s.config.UseSandbox),
		ports.Bool("capture", s.config.Capture),
		ports.String("invoice_ref", tx.InvoiceReference),
		ports.String("transaction_number", tx.TransactionNumber),
		ports.String("amount", tx.Amount.String()),
		ports.String("card_number", security.MaskCardNumber(tx.CardNumber)),
	)

	result, err := s.gateway.ProcessPayment(ctx, tx)
	if err != nil {
		s.logError("payment attempt failed before a result was returned",
			ports.String("invoice_ref", tx.InvoiceReference),
			ports.Err(err),
		)
		return nil, err
	}

	if result.Success {
		fields := []ports.Field{
			ports.String("invoice_ref", tx.InvoiceReference),
			ports.String("transaction_id", result.TransactionID),
			ports.String("auth_code", result.AuthCode),
			ports.String("total_amount", result.TotalAmount),
		}
		if result.Scored() {
			fields = append(fields, ports.Float64("beagle_score", result.BeagleScore))
		}
		s.logInfo("payment approved", fields...)
	} else {
		fields := []ports.Field{
			ports.String("invoice_ref", tx.InvoiceReference),
			ports.String("errors", result.ErrorDetail),
		}
		if result.Scored() {
			fields = append(fields, ports.Float64("beagle_score", result.BeagleScore))
		}
		s.logInfo("payment declined", fields...)
	}

	return result, nil
}

// DirectPaymentJSON returns the canonical Rapid API payload for a
// transaction without sending it, for fixtures and merchant diagnostics
func (s *Service) DirectPaymentJSON(tx *models.Transaction) ([]byte, error) {
	return eway.NewDirectPayment(tx, s.config.Capture, tx.CustomerIP, s.config.PartnerID).JSON()
}

func (s *Service) logInfo(msg string, fields ...ports.Field) {
	if s.logger != nil {
		s.logger.Info(msg, fields...)
	}
}

func (s *Service) logError(msg string, fields ...ports.Field) {
	if s.logger != nil {
		s.logger.Error(msg, fields...)
	}
}
