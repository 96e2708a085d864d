// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/importer"
)

// ColumnMapResponse reports which spreadsheet column each canonical field was
// detected in (-1 when not found).
type ColumnMapResponse struct {
	Description        int `json:"description"`
	Date               int `json:"date"`
	InstallmentsTotal  int `json:"installments_total"`
	InstallmentCurrent int `json:"installment_current"`
	AmountARS          int `json:"amount_ars"`
	AmountUSD          int `json:"amount_usd"`
	PaymentMethod      int `json:"payment_method"`
	Institution        int `json:"institution"`
	Responsible        int `json:"responsible"`
	Category           int `json:"category"`
}

// RowValidationResponse carries one row's validation outcome.
type RowValidationResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ImportRowDTO represents one parsed spreadsheet row, both in preview
// responses and commit requests. Amounts are decimal strings; nil means the
// cell was empty or unparseable.
type ImportRowDTO struct {
	Description        string                `json:"description"`
	Date               string                `json:"date"`
	InstallmentsTotal  int                   `json:"installments_total"`
	InstallmentCurrent int                   `json:"installment_current"`
	AmountARS          *string               `json:"amount_ars"`
	AmountUSD          *string               `json:"amount_usd"`
	PaymentMethod      string                `json:"payment_method"`
	Institution        string                `json:"institution"`
	Responsible        string                `json:"responsible"`
	Category           string                `json:"category"`
	Validation         RowValidationResponse `json:"validation"`
	IsDuplicate        bool                  `json:"is_duplicate"`
}

// PreviewImportResponse represents the annotated preview of an upload.
type PreviewImportResponse struct {
	Columns      ColumnMapResponse `json:"columns"`
	Rows         []ImportRowDTO    `json:"rows"`
	Duplicates   []ImportRowDTO    `json:"duplicates"`
	ValidCount   int               `json:"valid_count"`
	InvalidCount int               `json:"invalid_count"`
}

// CommitImportRequest represents the request body for committing confirmed rows.
type CommitImportRequest struct {
	MonthKey       string         `json:"month_key" binding:"required"`
	Rows           []ImportRowDTO `json:"rows" binding:"required"`
	SkipDuplicates bool           `json:"skip_duplicates"`
}

// CommitImportResponse represents the result of a commit, including the
// pre-import snapshot for single-level undo.
type CommitImportResponse struct {
	ImportedCount    int               `json:"imported_count"`
	SkippedInvalid   int               `json:"skipped_invalid"`
	SkippedDuplicate int               `json:"skipped_duplicate"`
	Snapshot         []ExpenseResponse `json:"snapshot"`
}

// UndoImportRequest represents the request body for restoring a snapshot.
type UndoImportRequest struct {
	MonthKey string           `json:"month_key" binding:"required"`
	Snapshot []ExpenseRequest `json:"snapshot"`
}

// ToColumnMapResponse converts the detected column mapping.
func ToColumnMapResponse(cols importer.ColumnMap) ColumnMapResponse {
	return ColumnMapResponse{
		Description:        cols.Description,
		Date:               cols.Date,
		InstallmentsTotal:  cols.InstallmentsTotal,
		InstallmentCurrent: cols.InstallmentCurrent,
		AmountARS:          cols.AmountARS,
		AmountUSD:          cols.AmountUSD,
		PaymentMethod:      cols.PaymentMethod,
		Institution:        cols.Institution,
		Responsible:        cols.Responsible,
		Category:           cols.Category,
	}
}

// ToImportRowDTO converts a pipeline row to its DTO.
func ToImportRowDTO(row *importer.ImportRow) ImportRowDTO {
	return ImportRowDTO{
		Description:        row.Description,
		Date:               row.Date,
		InstallmentsTotal:  row.InstallmentsTotal,
		InstallmentCurrent: row.InstallmentCurrent,
		AmountARS:          decimalToString(row.AmountARS),
		AmountUSD:          decimalToString(row.AmountUSD),
		PaymentMethod:      row.PaymentMethod,
		Institution:        row.Institution,
		Responsible:        row.Responsible,
		Category:           row.Category,
		Validation: RowValidationResponse{
			IsValid:  row.Validation.IsValid,
			Errors:   row.Validation.Errors,
			Warnings: row.Validation.Warnings,
		},
		IsDuplicate: row.IsDuplicate,
	}
}

// ToImportRowDTOs converts a slice of pipeline rows.
func ToImportRowDTOs(rows []*importer.ImportRow) []ImportRowDTO {
	dtos := make([]ImportRowDTO, len(rows))
	for i, row := range rows {
		dtos[i] = ToImportRowDTO(row)
	}
	return dtos
}

// ToImportRow converts an ImportRowDTO back into a pipeline row. Unparseable
// amount strings are treated as absent, mirroring the spreadsheet parser.
func (d ImportRowDTO) ToImportRow() *importer.ImportRow {
	return &importer.ImportRow{
		Description:        d.Description,
		Date:               d.Date,
		InstallmentsTotal:  d.InstallmentsTotal,
		InstallmentCurrent: d.InstallmentCurrent,
		AmountARS:          stringToDecimal(d.AmountARS),
		AmountUSD:          stringToDecimal(d.AmountUSD),
		PaymentMethod:      d.PaymentMethod,
		Institution:        d.Institution,
		Responsible:        d.Responsible,
		Category:           d.Category,
		Validation: importer.RowValidation{
			IsValid:  d.Validation.IsValid,
			Errors:   d.Validation.Errors,
			Warnings: d.Validation.Warnings,
		},
		IsDuplicate: d.IsDuplicate,
	}
}

func decimalToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func stringToDecimal(s *string) *decimal.Decimal {
	if s == nil || *s == "" {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}
