package eway

import (
	"fmt"

	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
)

// responseMessages maps the Rapid API's response codes to human-readable
// messages. Spans transaction results (A2xxx), decline reasons (D44xx),
// fraud screening (F7xxx/F9xxx), system errors (S5xxx) and request
// validation errors (V6xxx). Codes not listed here are surfaced verbatim.
var responseMessages = map[string]string{
	// Transaction results
	"A2000": "Transaction Approved",
	"A2008": "Honour With Identification",
	"A2010": "Approved For Partial Amount",
	"A2011": "Approved, VIP",
	"A2016": "Approved, Update Track 3",

	// Decline reasons, mirroring the issuing bank's response codes
	"D4401": "Refer to Issuer",
	"D4402": "Refer to Issuer, special",
	"D4403": "No Merchant",
	"D4404": "Pick Up Card",
	"D4405": "Do Not Honour",
	"D4406": "Error",
	"D4407": "Pick Up Card, Special",
	"D4409": "Request In Progress",
	"D4412": "Invalid Transaction",
	"D4413": "Invalid Amount",
	"D4414": "Invalid Card Number",
	"D4415": "Invalid Issuer",
	"D4419": "Re-enter Last Transaction",
	"D4421": "No Action Taken",
	"D4422": "Suspected Malfunction",
	"D4423": "Unacceptable Transaction Fee",
	"D4425": "Unable to Locate Record On File",
	"D4430": "Format Error",
	"D4431": "Bank Not Supported By Switch",
	"D4433": "Expired Card, Capture",
	"D4434": "Suspected Fraud, Retain Card",
	"D4435": "Card Acceptor, Contact Acquirer, Retain Card",
	"D4436": "Restricted Card, Retain Card",
	"D4437": "Contact Acquirer Security Department, Retain Card",
	"D4438": "PIN Tries Exceeded, Capture",
	"D4439": "No Credit Account",
	"D4440": "Function Not Supported",
	"D4441": "Lost Card",
	"D4442": "No Universal Account",
	"D4443": "Stolen Card",
	"D4444": "No Investment Account",
	"D4450": "Visa Checkout Transaction Error",
	"D4451": "Insufficient Funds",
	"D4452": "No Cheque Account",
	"D4453": "No Savings Account",
	"D4454": "Expired Card",
	"D4455": "Incorrect PIN",
	"D4456": "No Card Record",
	"D4457": "Function Not Permitted to Cardholder",
	"D4458": "Function Not Permitted to Terminal",
	"D4459": "Suspected Fraud",
	"D4460": "Acceptor Contact Acquirer",
	"D4461": "Exceeds Withdrawal Limit",
	"D4462": "Restricted Card",
	"D4463": "Security Violation",
	"D4464": "Original Amount Incorrect",
	"D4466": "Acceptor Contact Acquirer, Security",
	"D4467": "Capture Card",
	"D4475": "PIN Tries Exceeded",
	"D4482": "CVV Validation Error",
	"D4490": "Cut off In Progress",
	"D4491": "Card Issuer Unavailable",
	"D4492": "Unable To Route Transaction",
	"D4493": "Cannot Complete, Violation Of The Law",
	"D4494": "Duplicate Transaction",
	"D4496": "System Error",
	"D4497": "MasterPass Error",
	"D4498": "PayPal Create Transaction Error",
	"D4499": "Invalid Transaction for Auth/Void",

	// Beagle fraud alerts
	"F7000": "Undefined Fraud Error",
	"F7001": "Challenged Fraud",
	"F7002": "Country Match Fraud",
	"F7003": "High Risk Country Fraud",
	"F7004": "Anonymous Proxy Fraud",
	"F7005": "Transparent Proxy Fraud",
	"F7006": "Free Email Fraud",
	"F7007": "International Transaction Fraud",
	"F7008": "Risk Score Fraud",
	"F7009": "Denied Fraud",
	"F7010": "Denied by PayPal Fraud Rules",
	"F9010": "High Risk Billing Country",
	"F9011": "High Risk Credit Card Country",
	"F9012": "High Risk Customer IP Address",
	"F9013": "High Risk Email Address",
	"F9014": "High Risk Shipping Country",
	"F9015": "Multiple Card Numbers for Single Email Address",
	"F9016": "Multiple Card Numbers for Single Location",
	"F9017": "Multiple Email Addresses for Single Card Number",
	"F9018": "Multiple Email Addresses for Single Location",
	"F9019": "Multiple Locations for Single Card Number",
	"F9020": "Multiple Locations for Single Email Address",
	"F9021": "Suspicious Customer First Name",
	"F9022": "Suspicious Customer Last Name",
	"F9023": "Transaction Declined",
	"F9024": "Multiple Transactions for Same Address with Known Credit Card",
	"F9025": "Multiple Transactions for Same Address with New Credit Card",
	"F9029": "Multiple Transactions for New Credit Card",
	"F9030": "Multiple Transactions for Known Credit Card",

	// Gateway / system errors
	"S5000": "System Error",
	"S5010": "Unknown error returned by gateway",
	"S5011": "PayPal Connection Error",
	"S5012": "PayPal Settings Error",
	"S5085": "Started 3dSecure",
	"S5086": "Routed 3dSecure",
	"S5087": "Completed 3dSecure",
	"S5088": "PayPal Transaction Created",
	"S5099": "Incomplete (Access Code in progress/incomplete)",

	// Request validation errors
	"V6000": "Validation error",
	"V6001": "Invalid CustomerIP",
	"V6002": "Invalid DeviceID",
	"V6003": "Invalid Request PartnerID",
	"V6004": "Invalid Request Method",
	"V6010": "Invalid TransactionType, account not certified for eCome only MOTO or Recurring available",
	"V6011": "Invalid Payment TotalAmount",
	"V6012": "Invalid InvoiceDescription",
	"V6013": "Invalid InvoiceNumber",
	"V6014": "Invalid InvoiceReference",
	"V6015": "Invalid CurrencyCode",
	"V6016": "Payment Required",
	"V6017": "Payment CurrencyCode Required",
	"V6018": "Unknown CurrencyCode",
	"V6021": "Cardholder Name Required",
	"V6022": "Card Number Required",
	"V6023": "Card Security Code (CVN) Required",
	"V6033": "Invalid Expiry Date",
	"V6034": "Invalid Issue Number",
	"V6035": "Invalid Valid From Date",
	"V6040": "Invalid TokenCustomerID",
	"V6041": "Customer Required",
	"V6042": "Customer FirstName Required",
	"V6043": "Customer LastName Required",
	"V6044": "Customer CountryCode Required",
	"V6045": "Customer Title Required",
	"V6046": "TokenCustomerID Required",
	"V6047": "RedirectURL Required",
	"V6051": "Invalid Customer FirstName",
	"V6052": "Invalid Customer LastName",
	"V6053": "Invalid Customer CountryCode",
	"V6058": "Invalid Customer Title",
	"V6059": "Invalid RedirectURL",
	"V6060": "Invalid TokenCustomerID",
	"V6061": "Invalid Customer Reference",
	"V6062": "Invalid Customer CompanyName",
	"V6063": "Invalid Customer JobDescription",
	"V6064": "Invalid Customer Street1",
	"V6065": "Invalid Customer Street2",
	"V6066": "Invalid Customer City",
	"V6067": "Invalid Customer State",
	"V6068": "Invalid Customer PostalCode",
	"V6069": "Invalid Customer Email",
	"V6070": "Invalid Customer Phone",
	"V6071": "Invalid Customer Mobile",
	"V6072": "Invalid Customer Comments",
	"V6073": "Invalid Customer Fax",
	"V6074": "Invalid Customer URL",
	"V6075": "Invalid ShippingAddress FirstName",
	"V6076": "Invalid ShippingAddress LastName",
	"V6077": "Invalid ShippingAddress Street1",
	"V6078": "Invalid ShippingAddress Street2",
	"V6079": "Invalid ShippingAddress City",
	"V6080": "Invalid ShippingAddress State",
	"V6081": "Invalid ShippingAddress PostalCode",
	"V6082": "Invalid ShippingAddress Email",
	"V6083": "Invalid ShippingAddress Phone",
	"V6084": "Invalid ShippingAddress Country",
	"V6091": "Unknown Customer CountryCode",
	"V6092": "Unknown ShippingAddress CountryCode",
	"V6100": "Invalid Cardholder Name",
	"V6101": "Invalid Card Expiry Month",
	"V6102": "Invalid Card Expiry Year",
	"V6106": "Invalid Card Security Code (CVN)",
	"V6107": "Invalid Access Code",
	"V6108": "Invalid CustomerHostAddress",
	"V6109": "Invalid UserAgent",
	"V6110": "Invalid Card Number",
	"V6111": "Unauthorised API Access, Account Not PCI Certified",
}

// ResponseMessage returns the human-readable message for a gateway response
// code. Unknown codes pass through verbatim so they are never silently
// dropped.
func ResponseMessage(code string) string {
	if msg, ok := responseMessages[code]; ok {
		return msg
	}
	return code
}

// KnownResponseCode reports whether the code is in the static table
func KnownResponseCode(code string) bool {
	_, ok := responseMessages[code]
	return ok
}

// categoryForCode buckets a response code by its prefix for error handling
func categoryForCode(code string) pkgerrors.ErrorCategory {
	switch {
	case len(code) == 0:
		return pkgerrors.CategoryDeclined
	case code[0] == 'A':
		return pkgerrors.CategoryApproved
	case code[0] == 'F':
		return pkgerrors.CategoryFraud
	case code[0] == 'S':
		return pkgerrors.CategorySystemError
	case code[0] == 'V':
		return pkgerrors.CategoryInvalidRequest
	case code == "D4451":
		return pkgerrors.CategoryInsufficientFunds
	case code == "D4433" || code == "D4454":
		return pkgerrors.CategoryExpiredCard
	default:
		return pkgerrors.CategoryDeclined
	}
}

// CodeToPaymentError converts a declined response code into a PaymentError
// for callers that want an error value rather than a declined result.
func CodeToPaymentError(code string) *pkgerrors.PaymentError {
	category := categoryForCode(code)
	return &pkgerrors.PaymentError{
		Code:        code,
		Message:     ResponseMessage(code),
		Category:    category,
		IsRetriable: category == pkgerrors.CategorySystemError,
		Details:     map[string]interface{}{"known": KnownResponseCode(code)},
	}
}

// taggedMessage renders a code with its mapped message for log output
func taggedMessage(code string) string {
	if msg, ok := responseMessages[code]; ok {
		return fmt.Sprintf("%s: %s", code, msg)
	}
	return fmt.Sprintf("%s: (unknown response code)", code)
}
