package eway

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/eway-service/internal/domain/models"
)

const (
	testCustomerIP = "103.29.100.101"
	testPartnerID  = "4577fd8eb9014c7188d7be672c0e0d88"
)

// fullTransaction returns a transaction with every field populated,
// matching the gateway's certification fixture
func fullTransaction() *models.Transaction {
	return &models.Transaction{
		InvoiceDescription:     "testJsonTxFull",
		InvoiceReference:       "5554321",
		TransactionNumber:      "5554321",
		Amount:                 decimal.NewFromFloat(100.00),
		CurrencyCode:           "AUD",
		CardHolderName:         "Test Only",
		CardNumber:             "4444333322221111",
		CardExpiryMonth:        12,
		CardExpiryYear:         2030,
		CardVerificationNumber: "123",
		FirstName:              "Test",
		LastName:               "Only",
		CompanyName:            "Testers, Inc",
		Email:                  "test@example.com",
		Phone:                  "0123456789",
		Address1:               "123 Example Street",
		Address2:               "",
		Suburb:                 "Sometown",
		State:                  "NSW",
		Postcode:               "2000",
		Country:                "AU",
		CountryName:            "Australia",
		Comments:               "Fully populated test transaction",

		HasShipping:   true,
		ShipFirstName: "Amos",
		ShipLastName:  "Squito",
		ShipAddress1:  "999 Example Street",
		ShipAddress2:  `"The Castle"`,
		ShipSuburb:    "Another Town",
		ShipState:     "New South Wales",
		ShipCountry:   "AU",
		ShipPostcode:  "Australia",

		CustomerIP: testCustomerIP,
	}
}

func TestDirectPaymentJSON_FullyPopulated(t *testing.T) {
	tx := fullTransaction()

	payload, err := NewDirectPayment(tx, true, tx.CustomerIP, testPartnerID).JSON()
	require.NoError(t, err)

	expected := `{"Customer":{"FirstName":"Test","LastName":"Only","Street1":"123 Example Street","City":"Sometown","State":"NSW","PostalCode":"2000","Country":"au","Email":"test@example.com","CompanyName":"Testers, Inc","Phone":"0123456789","Comments":"Fully populated test transaction","CardDetails":{"Name":"Test Only","Number":"4444333322221111","ExpiryMonth":"12","ExpiryYear":"30","CVN":"123"}},"Payment":{"TotalAmount":"10000","InvoiceNumber":"5554321","InvoiceDescription":"testJsonTxFull","InvoiceReference":"5554321","CurrencyCode":"AUD"},"ShippingAddress":{"FirstName":"Amos","LastName":"Squito","Street1":"999 Example Street","Street2":"\"The Castle\"","City":"Another Town","State":"New South Wales","PostalCode":"Australia","Country":"au"},"CustomerIP":"103.29.100.101","Method":"ProcessPayment","TransactionType":"Purchase","PartnerID":"4577fd8eb9014c7188d7be672c0e0d88"}`

	assert.Equal(t, expected, string(payload))
}

func TestDirectPaymentJSON_PartiallyPopulated(t *testing.T) {
	tx := &models.Transaction{
		InvoiceDescription:     "testJsonTxPartial",
		InvoiceReference:       "5554321",
		TransactionNumber:      "5554321",
		Amount:                 decimal.NewFromFloat(100.00),
		CurrencyCode:           "AUD",
		CardHolderName:         "Test Only",
		CardNumber:             "4444333322221111",
		CardExpiryMonth:        12,
		CardExpiryYear:         2030,
		CardVerificationNumber: "123",
		FirstName:              "Test",
		LastName:               "Only",
		Email:                  "test@example.com",
		Country:                "AU",
		Comments:               "Partially populated test transaction",
		CustomerIP:             testCustomerIP,
	}

	payload, err := NewDirectPayment(tx, true, tx.CustomerIP, testPartnerID).JSON()
	require.NoError(t, err)

	expected := `{"Customer":{"FirstName":"Test","LastName":"Only","Country":"au","Email":"test@example.com","Comments":"Partially populated test transaction","CardDetails":{"Name":"Test Only","Number":"4444333322221111","ExpiryMonth":"12","ExpiryYear":"30","CVN":"123"}},"Payment":{"TotalAmount":"10000","InvoiceNumber":"5554321","InvoiceDescription":"testJsonTxPartial","InvoiceReference":"5554321","CurrencyCode":"AUD"},"CustomerIP":"103.29.100.101","Method":"ProcessPayment","TransactionType":"Purchase","PartnerID":"4577fd8eb9014c7188d7be672c0e0d88"}`

	assert.Equal(t, expected, string(payload))
}

func TestDirectPaymentJSON_SkeletonKeysAlwaysPresent(t *testing.T) {
	tx := &models.Transaction{
		Amount: decimal.NewFromFloat(1.00),
	}

	payload, err := NewDirectPayment(tx, true, "", "").JSON()
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, key := range []string{"Customer", "Payment", "CustomerIP", "Method", "TransactionType", "PartnerID"} {
		assert.Contains(t, decoded, key, "skeleton key %s must always be serialized", key)
	}
	assert.NotContains(t, decoded, "ShippingAddress")
	assert.NotContains(t, decoded, "Options")

	var customer map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["Customer"], &customer))
	assert.Contains(t, customer, "CardDetails", "CardDetails is always present")
	assert.Len(t, customer, 1, "empty optional customer fields must be omitted, not emitted as empty strings")
}

func TestDirectPayment_CaptureSelectsMethod(t *testing.T) {
	tx := fullTransaction()

	assert.Equal(t, MethodProcessPayment, NewDirectPayment(tx, true, "", "").Method)
	assert.Equal(t, MethodAuthorise, NewDirectPayment(tx, false, "", "").Method)
}

func TestDirectPayment_InvoiceDefaults(t *testing.T) {
	tests := []struct {
		name          string
		trxnNumber    string
		invoiceRef    string
		wantNumber    string
		wantReference string
	}{
		{
			name:          "both set",
			trxnNumber:    "1001",
			invoiceRef:    "INV-1",
			wantNumber:    "1001",
			wantReference: "INV-1",
		},
		{
			name:          "number defaults to reference",
			invoiceRef:    "INV-1",
			wantNumber:    "INV-1",
			wantReference: "INV-1",
		},
		{
			name:          "reference defaults to number",
			trxnNumber:    "1002",
			wantNumber:    "1002",
			wantReference: "1002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &models.Transaction{
				TransactionNumber: tt.trxnNumber,
				InvoiceReference:  tt.invoiceRef,
				Amount:            decimal.NewFromFloat(10.00),
			}
			req := NewDirectPayment(tx, true, "", "")
			assert.Equal(t, tt.wantNumber, req.Payment.InvoiceNumber)
			assert.Equal(t, tt.wantReference, req.Payment.InvoiceReference)
		})
	}
}

func TestDirectPayment_CurrencyDefaultsToAUD(t *testing.T) {
	tx := &models.Transaction{Amount: decimal.NewFromFloat(10.00)}
	assert.Equal(t, "AUD", NewDirectPayment(tx, true, "", "").Payment.CurrencyCode)
}

func TestDirectPayment_OptionsFilteredAndCapped(t *testing.T) {
	tx := fullTransaction()
	tx.Options = []string{"", "first", "", "second", "third", "fourth"}

	req := NewDirectPayment(tx, true, "", "")
	require.Len(t, req.Options, 3)
	assert.Equal(t, []Option{{Value: "first"}, {Value: "second"}, {Value: "third"}}, req.Options)
}

func TestDirectPayment_CardNumberNormalized(t *testing.T) {
	tx := fullTransaction()
	tx.CardNumber = "4444 3333-2222 1111"

	req := NewDirectPayment(tx, true, "", "")
	assert.Equal(t, "4444333322221111", req.Customer.CardDetails.Number)
}
