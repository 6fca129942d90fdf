package models

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
)

// MaxOptions is the number of free-text option fields the gateway accepts.
const MaxOptions = 3

// Transaction is a one-shot payment command. The host integration populates
// it field by field, then hands it to the payment service exactly once.
// Empty fields are simply omitted from the gateway request; there are no
// null sentinels.
type Transaction struct {
	// Invoice
	InvoiceDescription string
	InvoiceReference   string
	TransactionNumber  string
	Amount             decimal.Decimal
	CurrencyCode       string // ISO 4217, defaults to AUD when empty

	// Card
	CardHolderName         string
	CardNumber             string
	CardExpiryMonth        int
	CardExpiryYear         int
	CardVerificationNumber string

	// Customer
	FirstName   string
	LastName    string
	CompanyName string
	Email       string
	Phone       string
	Address1    string
	Address2    string
	Suburb      string
	State       string
	Postcode    string
	Country     string // 2-letter code
	CountryName string // legacy XML gateway only
	Comments    string

	// Shipping, sent only when HasShipping is set
	HasShipping   bool
	ShipFirstName string
	ShipLastName  string
	ShipAddress1  string
	ShipAddress2  string
	ShipSuburb    string
	ShipState     string
	ShipCountry   string
	ShipPostcode  string

	// Options carries up to MaxOptions merchant-custom values; empty
	// entries are dropped
	Options []string

	// CustomerIP is the cardholder's address as seen by the host, passed
	// through to the gateway's fraud screening
	CustomerIP string

	consumed bool
}

// Consume marks the transaction as processed. A Transaction must not be
// reused across payment attempts; the second call reports an error.
func (t *Transaction) Consume() error {
	if t.consumed {
		return pkgerrors.NewValidationError("transaction", "transaction has already been processed")
	}
	t.consumed = true
	return nil
}

// Consumed reports whether the transaction has already been processed
func (t *Transaction) Consumed() bool {
	return t.consumed
}

// OptionValues returns the non-empty option entries, capped at MaxOptions
func (t *Transaction) OptionValues() []string {
	values := make([]string, 0, MaxOptions)
	for _, opt := range t.Options {
		if opt == "" {
			continue
		}
		values = append(values, opt)
		if len(values) == MaxOptions {
			break
		}
	}
	return values
}
