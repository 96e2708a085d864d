package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrMissingIncomeDescription is returned when an income has no description.
	ErrMissingIncomeDescription = errors.New("income description is required")

	// ErrInvalidIncomeAmount is returned when an income amount is negative.
	ErrInvalidIncomeAmount = errors.New("income amount must not be negative")

	// ErrInvalidCurrency is returned when the currency is neither ARS nor USD.
	ErrInvalidCurrency = errors.New("invalid currency")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeNotFound           IncomeErrorCode = "INC-010001"
	ErrCodeMissingIncomeDescription IncomeErrorCode = "INC-010002"
	ErrCodeInvalidIncomeAmount      IncomeErrorCode = "INC-010003"
	ErrCodeInvalidCurrency          IncomeErrorCode = "INC-010004"

	// Internal errors (99XXXX)
	ErrCodeIncomeInternal IncomeErrorCode = "INC-990001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
