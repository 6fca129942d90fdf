package eway

import (
	"encoding/json"
	"strings"

	pkgerrors "github.com/kevin07696/eway-service/pkg/errors"
)

// Response is the parsed result of a Rapid API direct payment. A declined
// transaction is still a well-formed Response; transport and decoding
// problems never produce one.
type Response struct {
	TransactionStatus bool
	TransactionID     string
	AuthorisationCode string
	ResponseCode      string
	ResponseMessage   string

	// TotalAmount echoes the processed amount in minor units
	TotalAmount string

	// BeagleScore is the fraud-risk score, -1 when the gateway did not
	// score the transaction
	BeagleScore float64

	// ErrorCodes holds the gateway's raw error codes in wire order
	ErrorCodes []string
}

// rapidResponse is the wire shape of a direct payment response. The gateway
// sends numbers for TransactionID, BeagleScore and TotalAmount, and reports
// Errors as either a comma-delimited string or an array of codes.
type rapidResponse struct {
	AuthorisationCode string          `json:"AuthorisationCode"`
	ResponseCode      string          `json:"ResponseCode"`
	ResponseMessage   string          `json:"ResponseMessage"`
	TransactionID     json.Number     `json:"TransactionID"`
	TransactionStatus *bool           `json:"TransactionStatus"`
	BeagleScore       *float64        `json:"BeagleScore"`
	Payment           rapidPayment    `json:"Payment"`
	Errors            json.RawMessage `json:"Errors"`
}

type rapidPayment struct {
	TotalAmount json.Number `json:"TotalAmount"`
}

// ParseResponse decodes a raw Rapid API response body. It fails with a
// *pkgerrors.DecodeError when the body is not valid JSON, or when the
// transaction status is missing and no errors were reported either (a body
// that tells us nothing about the payment's fate).
func ParseResponse(raw []byte) (*Response, error) {
	var wire rapidResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, pkgerrors.NewDecodeError("response body is not valid JSON", err)
	}

	errorCodes, err := parseErrorCodes(wire.Errors)
	if err != nil {
		return nil, err
	}

	status := false
	switch {
	case wire.TransactionStatus != nil:
		status = *wire.TransactionStatus
	case len(errorCodes) == 0:
		return nil, pkgerrors.NewDecodeError("response has no TransactionStatus field", nil)
	}

	resp := &Response{
		TransactionStatus: status,
		TransactionID:     wire.TransactionID.String(),
		AuthorisationCode: wire.AuthorisationCode,
		ResponseCode:      wire.ResponseCode,
		ResponseMessage:   wire.ResponseMessage,
		TotalAmount:       wire.Payment.TotalAmount.String(),
		BeagleScore:       -1,
		ErrorCodes:        errorCodes,
	}
	if wire.BeagleScore != nil && *wire.BeagleScore >= 0 {
		resp.BeagleScore = *wire.BeagleScore
	}
	if resp.TransactionID == "0" {
		// the gateway reports 0 when no transaction was created
		resp.TransactionID = ""
	}
	return resp, nil
}

// parseErrorCodes accepts the two wire encodings of the Errors field
func parseErrorCodes(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return splitErrorCodes(joined), nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		codes := make([]string, 0, len(list))
		for _, code := range list {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
		return codes, nil
	}

	return nil, pkgerrors.NewDecodeError("Errors field is neither a string nor an array", nil)
}

func splitErrorCodes(joined string) []string {
	var codes []string
	for _, code := range strings.Split(joined, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Scored reports whether the gateway returned a fraud score
func (r *Response) Scored() bool {
	return r.BeagleScore >= 0
}

// ErrorMessages returns the human-readable message for every error code, in
// wire order. Unknown codes pass through verbatim.
func (r *Response) ErrorMessages() []string {
	messages := make([]string, len(r.ErrorCodes))
	for i, code := range r.ErrorCodes {
		messages[i] = ResponseMessage(code)
	}
	return messages
}

// ErrorMessage returns the first mapped error message, or the fallback when
// the gateway reported no errors
func (r *Response) ErrorMessage(fallback string) string {
	if len(r.ErrorCodes) == 0 {
		return fallback
	}
	return ResponseMessage(r.ErrorCodes[0])
}

// ErrorsForLog returns a single log-ready line with every error message
// tagged by its raw code
func (r *Response) ErrorsForLog() string {
	tagged := make([]string, len(r.ErrorCodes))
	for i, code := range r.ErrorCodes {
		tagged[i] = taggedMessage(code)
	}
	return strings.Join(tagged, "; ")
}

// FraudCodes returns the subset of error codes raised by fraud screening
func (r *Response) FraudCodes() []string {
	var codes []string
	for _, code := range r.ErrorCodes {
		if strings.HasPrefix(code, "F") {
			codes = append(codes, code)
		}
	}
	return codes
}

// MarshalJSON renders the response in its wire shape, used by diagnostics
// and round-trip tests
func (r *Response) MarshalJSON() ([]byte, error) {
	wire := struct {
		AuthorisationCode string   `json:"AuthorisationCode,omitempty"`
		ResponseCode      string   `json:"ResponseCode,omitempty"`
		ResponseMessage   string   `json:"ResponseMessage,omitempty"`
		TransactionID     string   `json:"TransactionID,omitempty"`
		TransactionStatus bool     `json:"TransactionStatus"`
		BeagleScore       *float64 `json:"BeagleScore,omitempty"`
		Errors            string   `json:"Errors,omitempty"`
	}{
		AuthorisationCode: r.AuthorisationCode,
		ResponseCode:      r.ResponseCode,
		ResponseMessage:   r.ResponseMessage,
		TransactionID:     r.TransactionID,
		TransactionStatus: r.TransactionStatus,
		Errors:            strings.Join(r.ErrorCodes, ","),
	}
	if r.BeagleScore >= 0 {
		score := r.BeagleScore
		wire.BeagleScore = &score
	}
	return json.Marshal(wire)
}
