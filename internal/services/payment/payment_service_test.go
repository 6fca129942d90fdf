package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/eway-service/internal/adapters/eway"
	"github.com/kevin07696/eway-service/internal/domain/models"
	domainports "github.com/kevin07696/eway-service/internal/domain/ports"
	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
	"github.com/kevin07696/eway-service/test/mocks"
)

func newTestTransaction() *models.Transaction {
	return &models.Transaction{
		InvoiceReference:  "INV-100",
		TransactionNumber: "5554321",
		Amount:            decimal.NewFromFloat(25.50),
		CardHolderName:    "Jo Tester",
		CardNumber:        "4444333322221111",
		CardExpiryMonth:   12,
		CardExpiryYear:    2030,
		FirstName:         "Jo",
		LastName:          "Tester",
	}
}

func TestNewService_SelectsGatewayByCredentials(t *testing.T) {
	set := models.CredentialSet{
		Live:    models.Credentials{APIKey: "live-key", Password: "live-pass"},
		Sandbox: models.Credentials{CustomerID: "87654321"},
	}

	live, err := NewService(set, eway.Config{}, mocks.NewMockHTTPClient(nil), mocks.NewMockLogger())
	require.NoError(t, err)
	require.NotNil(t, live)

	sandbox, err := NewService(set, eway.Config{UseSandbox: true}, mocks.NewMockHTTPClient(nil), mocks.NewMockLogger())
	require.NoError(t, err)
	require.NotNil(t, sandbox)
}

func TestNewService_NotConfigured(t *testing.T) {
	set := models.CredentialSet{
		Live: models.Credentials{APIKey: "live-key", Password: "live-pass"},
	}

	// sandbox requested but only live credentials exist
	svc, err := NewService(set, eway.Config{UseSandbox: true}, mocks.NewMockHTTPClient(nil), mocks.NewMockLogger())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, pkgerrors.ErrNotConfigured)
}

func TestProcessPayment_Approved(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(nil)
	logger := mocks.NewMockLogger()
	svc := NewServiceWithGateway(gateway, eway.Config{Capture: true}, logger)

	tx := newTestTransaction()
	result, err := svc.ProcessPayment(context.Background(), tx)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "11260600", result.TransactionID)
	require.Len(t, gateway.Calls, 1)
	assert.True(t, tx.Consumed())

	require.Len(t, logger.InfoCalls, 2)
	assert.Equal(t, "processing payment", logger.InfoCalls[0].Message)
	assert.Equal(t, "payment approved", logger.InfoCalls[1].Message)
}

func TestProcessPayment_TransactionIsOneShot(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(nil)
	svc := NewServiceWithGateway(gateway, eway.Config{}, mocks.NewMockLogger())

	tx := newTestTransaction()
	_, err := svc.ProcessPayment(context.Background(), tx)
	require.NoError(t, err)

	result, err := svc.ProcessPayment(context.Background(), tx)
	assert.Nil(t, result)

	var validationErr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, gateway.Calls, 1, "a consumed transaction never reaches the gateway again")
}

func TestProcessPayment_CardholderNameFallback(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(nil)
	svc := NewServiceWithGateway(gateway, eway.Config{}, mocks.NewMockLogger())

	tx := newTestTransaction()
	tx.FirstName = ""
	tx.LastName = ""

	_, err := svc.ProcessPayment(context.Background(), tx)
	require.NoError(t, err)

	require.Len(t, gateway.Calls, 1)
	assert.Equal(t, "Jo Tester", gateway.Calls[0].LastName)
	assert.Empty(t, gateway.Calls[0].FirstName)
}

func TestProcessPayment_CardholderNameFallbackSkippedWhenNamed(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(nil)
	svc := NewServiceWithGateway(gateway, eway.Config{}, mocks.NewMockLogger())

	tx := newTestTransaction()
	_, err := svc.ProcessPayment(context.Background(), tx)
	require.NoError(t, err)

	assert.Equal(t, "Tester", gateway.Calls[0].LastName)
}

func TestProcessPayment_Declined(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(func(ctx context.Context, tx *models.Transaction) (*domainports.PaymentResult, error) {
		return &domainports.PaymentResult{
			Success:      false,
			ErrorMessage: "Do Not Honour",
			ErrorDetail:  "D4405: Do Not Honour",
			RawErrors:    []string{"D4405"},
			BeagleScore:  3.5,
		}, nil
	})
	logger := mocks.NewMockLogger()
	svc := NewServiceWithGateway(gateway, eway.Config{}, logger)

	result, err := svc.ProcessPayment(context.Background(), newTestTransaction())
	require.NoError(t, err, "a decline is a result, not an error")
	assert.False(t, result.Success)

	require.Len(t, logger.InfoCalls, 2)
	declined := logger.InfoCalls[1]
	assert.Equal(t, "payment declined", declined.Message)
	assert.Equal(t, "D4405: Do Not Honour", declined.FieldValue("errors"))
	assert.Equal(t, 3.5, declined.FieldValue("beagle_score"))
}

func TestProcessPayment_GatewayFailure(t *testing.T) {
	wantErr := &pkgerrors.TimeoutError{Sent: true, Err: context.DeadlineExceeded}
	gateway := mocks.NewMockPaymentGateway(func(ctx context.Context, tx *models.Transaction) (*domainports.PaymentResult, error) {
		return nil, wantErr
	})
	logger := mocks.NewMockLogger()
	svc := NewServiceWithGateway(gateway, eway.Config{}, logger)

	result, err := svc.ProcessPayment(context.Background(), newTestTransaction())
	assert.Nil(t, result)

	var timeoutErr *pkgerrors.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	require.Len(t, logger.ErrorCalls, 1)
	assert.Equal(t, "payment attempt failed before a result was returned", logger.ErrorCalls[0].Message)
}

func TestProcessPayment_MasksCardNumberInLogs(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(nil)
	logger := mocks.NewMockLogger()
	svc := NewServiceWithGateway(gateway, eway.Config{}, logger)

	_, err := svc.ProcessPayment(context.Background(), newTestTransaction())
	require.NoError(t, err)

	require.NotEmpty(t, logger.InfoCalls)
	assert.Equal(t, "444433XXXXXX1111", logger.InfoCalls[0].FieldValue("card_number"))
}

func TestDirectPaymentJSON_UsesServiceConfig(t *testing.T) {
	svc := NewServiceWithGateway(mocks.NewMockPaymentGateway(nil), eway.Config{
		Capture:   false,
		PartnerID: "partner-1",
	}, mocks.NewMockLogger())

	tx := newTestTransaction()
	tx.CustomerIP = "203.0.113.7"

	payload, err := svc.DirectPaymentJSON(tx)
	require.NoError(t, err)

	body := string(payload)
	assert.Contains(t, body, `"Method":"Authorise"`)
	assert.Contains(t, body, `"PartnerID":"partner-1"`)
	assert.Contains(t, body, `"CustomerIP":"203.0.113.7"`)
}

func TestProcessPayment_NilLogger(t *testing.T) {
	svc := NewServiceWithGateway(mocks.NewMockPaymentGateway(nil), eway.Config{}, nil)

	result, err := svc.ProcessPayment(context.Background(), newTestTransaction())
	require.NoError(t, err)
	assert.True(t, result.Success)
}
