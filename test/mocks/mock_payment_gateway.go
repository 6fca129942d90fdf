package mocks

import (
	"context"

	"github.com/kevin07696/eway-service/internal/domain/models"
	"github.com/kevin07696/eway-service/internal/domain/ports"
)

// MockPaymentGateway is a mock implementation of PaymentGateway for testing
type MockPaymentGateway struct {
	ProcessPaymentFunc func(ctx context.Context, tx *models.Transaction) (*ports.PaymentResult, error)
	Calls              []*models.Transaction
}

// NewMockPaymentGateway creates a new mock payment gateway
func NewMockPaymentGateway(fn func(ctx context.Context, tx *models.Transaction) (*ports.PaymentResult, error)) *MockPaymentGateway {
	return &MockPaymentGateway{
		ProcessPaymentFunc: fn,
		Calls:              []*models.Transaction{},
	}
}

// ProcessPayment executes the mock function and captures the call
func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, tx *models.Transaction) (*ports.PaymentResult, error) {
	m.Calls = append(m.Calls, tx)
	if m.ProcessPaymentFunc != nil {
		return m.ProcessPaymentFunc(ctx, tx)
	}
	// Default approved result
	return &ports.PaymentResult{
		Success:       true,
		TransactionID: "11260600",
		AuthCode:      "123456",
		BeagleScore:   -1,
	}, nil
}

// Reset clears captured calls
func (m *MockPaymentGateway) Reset() {
	m.Calls = []*models.Transaction{}
}
