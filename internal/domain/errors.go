package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	// Request construction errors
	ErrorCodeRequestInvalid  ErrorCode = "REQUEST_INVALID"
	ErrorCodeCardDataInvalid ErrorCode = "CARD_DATA_INVALID"

	// Response handling errors
	ErrorCodeResponseMalformed ErrorCode = "RESPONSE_MALFORMED"

	// Gateway transport errors
	ErrorCodeGatewayError ErrorCode = "GATEWAY_ERROR"
)

// DomainError represents a structured domain error with error code and context
type DomainError struct {
	Err     error
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with a domain error code
func WrapError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsDomainError checks if an error is a DomainError with the given code
func IsDomainError(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error, returns empty string if not a DomainError
func GetErrorCode(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// Common domain errors
var (
	ErrAmountRequired         = NewDomainError(ErrorCodeRequestInvalid, "amount is required")
	ErrCardDataMissing        = NewDomainError(ErrorCodeCardDataInvalid, "no (virtual) credit card data set")
	ErrBillingAddressRequired = NewDomainError(ErrorCodeCardDataInvalid, "a billing address is required for this transaction")
	ErrEmptyResponse          = NewDomainError(ErrorCodeResponseMalformed, "empty response body received")
)
