package eway

import (
	"encoding/json"

	"github.com/kevin07696/eway-service/internal/domain/models"
)

// Rapid API direct payment methods and transaction types
const (
	MethodProcessPayment = "ProcessPayment"
	MethodAuthorise      = "Authorise"

	TransactionTypePurchase = "Purchase"
)

// CardDetails carries the card fields of a direct payment. Field order
// matters to the gateway's request validation logging, so declaration order
// is the wire order.
type CardDetails struct {
	Name        string `json:"Name,omitempty"`
	Number      string `json:"Number,omitempty"`
	ExpiryMonth string `json:"ExpiryMonth,omitempty"`
	ExpiryYear  string `json:"ExpiryYear,omitempty"`
	CVN         string `json:"CVN,omitempty"`
}

// Customer is the billing contact of a direct payment. Empty fields are
// omitted; CardDetails is always present once a payment is built.
type Customer struct {
	FirstName   string      `json:"FirstName,omitempty"`
	LastName    string      `json:"LastName,omitempty"`
	Street1     string      `json:"Street1,omitempty"`
	Street2     string      `json:"Street2,omitempty"`
	City        string      `json:"City,omitempty"`
	State       string      `json:"State,omitempty"`
	PostalCode  string      `json:"PostalCode,omitempty"`
	Country     string      `json:"Country,omitempty"`
	Email       string      `json:"Email,omitempty"`
	CompanyName string      `json:"CompanyName,omitempty"`
	Phone       string      `json:"Phone,omitempty"`
	Comments    string      `json:"Comments,omitempty"`
	CardDetails CardDetails `json:"CardDetails"`
}

// Payment carries invoice and amount details. The gateway requires every
// numeric-looking value as a JSON string; TotalAmount is in minor units.
type Payment struct {
	TotalAmount        string `json:"TotalAmount"`
	InvoiceNumber      string `json:"InvoiceNumber,omitempty"`
	InvoiceDescription string `json:"InvoiceDescription,omitempty"`
	InvoiceReference   string `json:"InvoiceReference,omitempty"`
	CurrencyCode       string `json:"CurrencyCode,omitempty"`
}

// ShippingAddress mirrors the customer address shape without the contact
// fields
type ShippingAddress struct {
	FirstName  string `json:"FirstName,omitempty"`
	LastName   string `json:"LastName,omitempty"`
	Street1    string `json:"Street1,omitempty"`
	Street2    string `json:"Street2,omitempty"`
	City       string `json:"City,omitempty"`
	State      string `json:"State,omitempty"`
	PostalCode string `json:"PostalCode,omitempty"`
	Country    string `json:"Country,omitempty"`
}

// Option is one merchant-custom metadata value
type Option struct {
	Value string `json:"Value"`
}

// DirectPayment is the Rapid API direct payment request. The skeleton keys
// (Customer, Payment, CustomerIP, Method, TransactionType, PartnerID) are
// always serialized, even when their contents are empty.
type DirectPayment struct {
	Customer        Customer         `json:"Customer"`
	Payment         Payment          `json:"Payment"`
	ShippingAddress *ShippingAddress `json:"ShippingAddress,omitempty"`
	Options         []Option         `json:"Options,omitempty"`
	CustomerIP      string           `json:"CustomerIP"`
	Method          string           `json:"Method"`
	TransactionType string           `json:"TransactionType"`
	PartnerID       string           `json:"PartnerID"`
}

// NewDirectPayment assembles a direct payment request from a transaction.
// All card and address values are normalized here; customerIP and partnerID
// are caller-supplied, never defaulted. capture selects an immediate
// purchase versus an authorize-only (stored) payment.
func NewDirectPayment(tx *models.Transaction, capture bool, customerIP, partnerID string) *DirectPayment {
	method := MethodProcessPayment
	if !capture {
		method = MethodAuthorise
	}

	currency := CleanString(tx.CurrencyCode)
	if currency == "" {
		currency = "AUD"
	}

	invoiceNumber := CleanString(tx.TransactionNumber)
	invoiceReference := CleanString(tx.InvoiceReference)
	if invoiceNumber == "" {
		invoiceNumber = invoiceReference
	}
	if invoiceReference == "" {
		invoiceReference = CleanString(tx.TransactionNumber)
	}

	req := &DirectPayment{
		Customer: Customer{
			FirstName:   CleanString(tx.FirstName),
			LastName:    CleanString(tx.LastName),
			Street1:     CleanString(tx.Address1),
			Street2:     CleanString(tx.Address2),
			City:        CleanString(tx.Suburb),
			State:       CleanString(tx.State),
			PostalCode:  CleanString(tx.Postcode),
			Country:     NormalizeCountry(tx.Country),
			Email:       CleanString(tx.Email),
			CompanyName: CleanString(tx.CompanyName),
			Phone:       CleanString(tx.Phone),
			Comments:    CleanString(tx.Comments),
			CardDetails: CardDetails{
				Name:        CleanString(tx.CardHolderName),
				Number:      NormalizeCardNumber(tx.CardNumber),
				ExpiryMonth: FormatExpiryMonth(tx.CardExpiryMonth),
				ExpiryYear:  NormalizeExpiryYear(tx.CardExpiryYear),
				CVN:         CleanString(tx.CardVerificationNumber),
			},
		},
		Payment: Payment{
			TotalAmount:        AmountToMinorUnits(tx.Amount),
			InvoiceNumber:      invoiceNumber,
			InvoiceDescription: CleanString(tx.InvoiceDescription),
			InvoiceReference:   invoiceReference,
			CurrencyCode:       currency,
		},
		CustomerIP:      customerIP,
		Method:          method,
		TransactionType: TransactionTypePurchase,
		PartnerID:       partnerID,
	}

	if tx.HasShipping {
		req.ShippingAddress = &ShippingAddress{
			FirstName:  CleanString(tx.ShipFirstName),
			LastName:   CleanString(tx.ShipLastName),
			Street1:    CleanString(tx.ShipAddress1),
			Street2:    CleanString(tx.ShipAddress2),
			City:       CleanString(tx.ShipSuburb),
			State:      CleanString(tx.ShipState),
			PostalCode: CleanString(tx.ShipPostcode),
			Country:    NormalizeCountry(tx.ShipCountry),
		}
	}

	for _, value := range tx.OptionValues() {
		req.Options = append(req.Options, Option{Value: value})
	}

	return req
}

// JSON serializes the request in the gateway's canonical key order
func (r *DirectPayment) JSON() ([]byte, error) {
	return json.Marshal(r)
}
