package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// RowValidation carries the outcome of validating one parsed row. Errors
// block the row from being committed; warnings are informational only.
type RowValidation struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// ImportRow is the pipeline-local representation of one spreadsheet line
// before commit. Fields hold normalized values where normalization succeeded
// and raw passthrough values where it did not; amounts are nil when the cell
// was empty or unparseable, which is distinct from a valid zero.
type ImportRow struct {
	Description        string
	Date               string // DD/MM/YYYY when parsed, raw text otherwise
	InstallmentsTotal  int
	InstallmentCurrent int
	AmountARS          *decimal.Decimal
	AmountUSD          *decimal.Decimal
	PaymentMethod      string
	Institution        string
	Responsible        string
	Category           string
	Validation         RowValidation
	IsDuplicate        bool
}

// ParseRow builds an ImportRow from one raw spreadsheet line using the
// detected column mapping. The returned row always carries a validation
// result.
func ParseRow(raw []string, cols ColumnMap) *ImportRow {
	cell := func(index int) string {
		if index < 0 || index >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[index])
	}

	date, _ := ParseDateCell(cell(cols.Date))
	method, _ := valueobject.NormalizePaymentMethod(cell(cols.PaymentMethod))
	institution, _ := valueobject.NormalizeInstitution(cell(cols.Institution))
	responsible, _ := valueobject.NormalizeResponsible(cell(cols.Responsible))

	row := &ImportRow{
		Description:        cell(cols.Description),
		Date:               date,
		InstallmentsTotal:  ParseInstallmentCell(cell(cols.InstallmentsTotal)),
		InstallmentCurrent: ParseInstallmentCell(cell(cols.InstallmentCurrent)),
		AmountARS:          ParseAmountCell(cell(cols.AmountARS)),
		AmountUSD:          ParseAmountCell(cell(cols.AmountUSD)),
		PaymentMethod:      method,
		Institution:        institution,
		Responsible:        responsible,
		Category:           cell(cols.Category),
	}
	row.Validation = ValidateRow(row)

	return row
}

// ValidateRow computes the validation result for a row. A row is valid iff it
// has a description, a parsed date and at least one amount (zero counts as
// present). Enumeration values outside the closed sets produce non-blocking
// warnings; such rows stay importable.
func ValidateRow(row *ImportRow) RowValidation {
	var errs []string
	var warnings []string

	if strings.TrimSpace(row.Description) == "" {
		errs = append(errs, "missing description")
	}
	if row.Date == "" {
		errs = append(errs, "missing date")
	} else if !canonicalDatePattern.MatchString(row.Date) {
		errs = append(errs, fmt.Sprintf("invalid date %q", row.Date))
	}
	if row.AmountARS == nil && row.AmountUSD == nil {
		errs = append(errs, "missing amount (ARS or USD)")
	}

	if row.PaymentMethod != "" && !entity.PaymentMethod(row.PaymentMethod).Known() {
		warnings = append(warnings, fmt.Sprintf("payment method %q not recognized", row.PaymentMethod))
	}
	if row.Institution != "" && !entity.Institution(row.Institution).Known() {
		warnings = append(warnings, fmt.Sprintf("institution %q not recognized", row.Institution))
	}
	if row.Responsible != "" && !entity.Responsible(row.Responsible).Known() {
		warnings = append(warnings, fmt.Sprintf("responsible %q not recognized", row.Responsible))
	}

	return RowValidation{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// IsBlankLine reports whether every cell of a raw spreadsheet line is empty.
// Blank lines are skipped rather than parsed.
func IsBlankLine(raw []string) bool {
	for _, cell := range raw {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ToExpense converts a confirmed row into a committed Expense, applying the
// commit-time fallbacks: Cash payment method, Galicia institution, Shared
// responsible, zero ARS amount and unpaid status.
func (row *ImportRow) ToExpense() *entity.Expense {
	method := row.PaymentMethod
	if method == "" {
		method = string(entity.PaymentMethodCash)
	}
	institution := row.Institution
	if institution == "" {
		institution = string(entity.InstitutionGalicia)
	}
	responsible := row.Responsible
	if responsible == "" {
		responsible = string(entity.ResponsibleShared)
	}

	amountARS := decimal.Zero
	if row.AmountARS != nil {
		amountARS = *row.AmountARS
	}

	return &entity.Expense{
		Date:               row.Date,
		Description:        row.Description,
		PaymentMethod:      entity.PaymentMethod(method),
		Institution:        entity.Institution(institution),
		InstallmentsTotal:  row.InstallmentsTotal,
		InstallmentCurrent: row.InstallmentCurrent,
		AmountARS:          amountARS,
		AmountUSD:          row.AmountUSD,
		Responsible:        entity.Responsible(responsible),
		Category:           row.Category,
		Paid:               false,
	}
}
