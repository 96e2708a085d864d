package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// PreviewImportInput represents the input for an import preview.
// Rows is the raw cell grid of the first sheet; row 0 holds the headers.
type PreviewImportInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
	Rows     [][]string
}

// PreviewImportOutput represents the annotated result of an import preview,
// ready for user confirmation.
type PreviewImportOutput struct {
	Columns      ColumnMap
	Rows         []*ImportRow
	Duplicates   []*ImportRow
	ValidCount   int
	InvalidCount int
}

// PreviewImportUseCase runs the import pipeline up to (but excluding) commit:
// column detection, per-row parsing and validation, and duplicate detection
// against the period's committed records.
type PreviewImportUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewPreviewImportUseCase creates a new PreviewImportUseCase instance.
func NewPreviewImportUseCase(expenseRepo adapter.ExpenseRepository) *PreviewImportUseCase {
	return &PreviewImportUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the import preview.
func (uc *PreviewImportUseCase) Execute(ctx context.Context, input PreviewImportInput) (*PreviewImportOutput, error) {
	if !input.MonthKey.Valid() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	if len(input.Rows) < 2 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyWorkbook,
			"spreadsheet is empty or contains only headers",
			domainerror.ErrEmptyWorkbook,
		)
	}

	cols := DetectColumns(input.Rows[0])

	var rows []*ImportRow
	for _, line := range input.Rows[1:] {
		if len(line) == 0 || IsBlankLine(line) {
			continue
		}
		rows = append(rows, ParseRow(line, cols))
	}

	existing, err := uc.expenseRepo.FindByMonth(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing expenses for duplicate detection: %w", err)
	}

	duplicates := MarkDuplicates(rows, existing)

	output := &PreviewImportOutput{
		Columns:    cols,
		Rows:       rows,
		Duplicates: duplicates,
	}
	for _, row := range rows {
		if row.Validation.IsValid {
			output.ValidCount++
		} else {
			output.InvalidCount++
		}
	}

	return output, nil
}

// MarkDuplicates flags every row that matches a committed record on the
// (description, date, ARS amount, institution) identity tuple. Matching is
// exact with no fuzzing; the first hit per row short-circuits. The flagged
// rows are returned in input order.
func MarkDuplicates(rows []*ImportRow, existing []*entity.Expense) []*ImportRow {
	var duplicates []*ImportRow

	for _, row := range rows {
		for _, committed := range existing {
			if row.Description == committed.Description &&
				row.Date == committed.Date &&
				row.AmountARS != nil && row.AmountARS.Equal(committed.AmountARS) &&
				row.Institution == string(committed.Institution) {
				row.IsDuplicate = true
				duplicates = append(duplicates, row)
				break
			}
		}
	}

	return duplicates
}
