package error

import "errors"

// Debt projection domain errors.
var (
	// ErrInvalidReferenceMonth is returned when the projection reference month is out of range.
	ErrInvalidReferenceMonth = errors.New("reference month must be between 1 and 12")

	// ErrInvalidReferenceYear is returned when the projection reference year is out of range.
	ErrInvalidReferenceYear = errors.New("invalid reference year")

	// ErrInvalidExchangeRate is returned when a non-positive exchange rate is provided.
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
)

// DebtErrorCode defines error codes for debt projection errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReferenceMonth DebtErrorCode = "DBT-010001"
	ErrCodeInvalidReferenceYear  DebtErrorCode = "DBT-010002"
	ErrCodeInvalidExchangeRate   DebtErrorCode = "DBT-010003"

	// Internal errors (99XXXX)
	ErrCodeDebtInternal DebtErrorCode = "DBT-990001"
)

// DebtError represents a debt projection error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
