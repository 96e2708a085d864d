// Package error defines domain-specific errors for the household ledger application.
package error

import "errors"

// Import pipeline domain errors.
var (
	// ErrUnreadableWorkbook is returned when the uploaded file cannot be parsed as a spreadsheet.
	ErrUnreadableWorkbook = errors.New("unable to read spreadsheet file")

	// ErrEmptyWorkbook is returned when the spreadsheet has no data rows beyond the header.
	ErrEmptyWorkbook = errors.New("spreadsheet is empty or contains only headers")

	// ErrUnsupportedFileType is returned when the uploaded file is neither .xlsx nor .xls.
	ErrUnsupportedFileType = errors.New("unsupported spreadsheet file type")

	// ErrNoEligibleRows is returned when a commit is requested but no row survives filtering.
	ErrNoEligibleRows = errors.New("no eligible rows to import")

	// ErrEmptySnapshot is returned when an undo is requested without a snapshot to restore.
	ErrEmptySnapshot = errors.New("missing snapshot to restore")
)

// ImportErrorCode defines error codes for import pipeline errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnreadableWorkbook  ImportErrorCode = "IMP-010001"
	ErrCodeEmptyWorkbook       ImportErrorCode = "IMP-010002"
	ErrCodeUnsupportedFileType ImportErrorCode = "IMP-010003"
	ErrCodeNoEligibleRows      ImportErrorCode = "IMP-010004"
	ErrCodeEmptySnapshot       ImportErrorCode = "IMP-010005"
	ErrCodeImportMonthKey      ImportErrorCode = "IMP-010006"

	// Internal errors (99XXXX)
	ErrCodeImportInternal ImportErrorCode = "IMP-990001"
)

// ImportError represents an import pipeline error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
