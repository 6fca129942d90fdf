package ports

import (
	"context"

	"github.com/kevin07696/eway-service/internal/domain/models"
)

// PaymentResult represents the outcome of a payment attempt as reported by
// the gateway. A declined transaction is a normal result, not an error:
// Success is false and the error fields describe why.
type PaymentResult struct {
	Success         bool
	TransactionID   string
	AuthCode        string
	ResponseCode    string
	ResponseMessage string

	// TotalAmount echoes the processed amount in the gateway's minor
	// units (cents)
	TotalAmount string

	// BeagleScore is the gateway's fraud-risk score; negative means the
	// transaction was not scored
	BeagleScore float64

	// ErrorMessage is the first human-readable error for display to the
	// customer; empty on success
	ErrorMessage string

	// RawErrors holds the gateway's error codes in wire order
	RawErrors []string

	// FraudCodes is the subset of RawErrors raised by fraud screening
	FraudCodes []string

	// ErrorDetail is a single log-ready line with every error tagged by
	// its raw code
	ErrorDetail string
}

// Scored reports whether the gateway returned a fraud score
func (r *PaymentResult) Scored() bool {
	return r.BeagleScore >= 0
}

// PaymentGateway processes one-shot payment transactions. Implementations
// are stateless across calls; credentials and transaction data are scoped to
// a single attempt. Host platform integrations adapt their own order or
// booking models into a models.Transaction and call this interface directly.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, tx *models.Transaction) (*PaymentResult, error)
}
