package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory represents the category of error for handling
type ErrorCategory string

const (
	CategoryApproved          ErrorCategory = "approved"
	CategoryDeclined          ErrorCategory = "declined"
	CategoryInsufficientFunds ErrorCategory = "insufficient_funds"
	CategoryInvalidCard       ErrorCategory = "invalid_card"
	CategoryExpiredCard       ErrorCategory = "expired_card"
	CategoryFraud             ErrorCategory = "fraud"
	CategorySystemError       ErrorCategory = "system_error"
	CategoryNetworkError      ErrorCategory = "network_error"
	CategoryInvalidRequest    ErrorCategory = "invalid_request"
)

// ErrNotConfigured is returned when neither Rapid API nor legacy customer ID
// credentials are available for the selected environment.
var ErrNotConfigured = errors.New("eway credentials are not configured")

// PaymentError represents a payment processing error with detailed context
type PaymentError struct {
	Code           string
	Message        string
	GatewayMessage string
	IsRetriable    bool
	Category       ErrorCategory
	Details        map[string]interface{}
}

func (e *PaymentError) Error() string {
	if e.GatewayMessage != "" {
		return fmt.Sprintf("%s: %s (gateway: %s)", e.Code, e.Message, e.GatewayMessage)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewPaymentError creates a new payment error
func NewPaymentError(code, message string, category ErrorCategory, retriable bool) *PaymentError {
	return &PaymentError{
		Code:        code,
		Message:     message,
		Category:    category,
		IsRetriable: retriable,
		Details:     make(map[string]interface{}),
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// DecodeError indicates the gateway returned a body that could not be decoded
// into a usable response. Fatal for the call; not retriable.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding gateway response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decoding gateway response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new decode error
func NewDecodeError(reason string, err error) *DecodeError {
	return &DecodeError{Reason: reason, Err: err}
}

// TransportError indicates a network or HTTP-level failure talking to the
// gateway. Sent reports whether the request went out before the failure;
// when true the transaction outcome is unknown and a blind retry risks a
// double charge.
type TransportError struct {
	StatusCode int
	Sent       bool
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString("gateway transport failure")
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Sent {
		b.WriteString(", transaction outcome unknown")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// OutcomeUnknown reports whether the transaction may have been processed
// despite the failure.
func (e *TransportError) OutcomeUnknown() bool {
	return e.Sent
}

// TimeoutError indicates the gateway call exceeded its deadline. Kept
// distinct from TransportError so callers can choose not to retry: the
// request may have reached the gateway before the deadline fired.
type TimeoutError struct {
	Sent bool
	Err  error
}

func (e *TimeoutError) Error() string {
	if e.Sent {
		return fmt.Sprintf("gateway request timed out, transaction outcome unknown: %v", e.Err)
	}
	return fmt.Sprintf("gateway request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// OutcomeUnknown reports whether the transaction may have been processed
// despite the timeout.
func (e *TimeoutError) OutcomeUnknown() bool {
	return e.Sent
}
