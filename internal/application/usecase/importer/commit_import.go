package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// CommitImportInput represents the input for committing confirmed rows.
type CommitImportInput struct {
	UserID         uuid.UUID
	MonthKey       valueobject.MonthKey
	Rows           []*ImportRow
	SkipDuplicates bool
}

// CommitImportOutput represents the result of a commit. Snapshot holds the
// period's record set as it was before the append, enabling a single-level
// undo via UndoImportUseCase.
type CommitImportOutput struct {
	ImportedCount    int
	SkippedInvalid   int
	SkippedDuplicate int
	Snapshot         []*entity.Expense
}

// CommitImportUseCase converts the eligible subset of previewed rows into
// committed expenses and appends them to the target period.
type CommitImportUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCommitImportUseCase creates a new CommitImportUseCase instance.
func NewCommitImportUseCase(expenseRepo adapter.ExpenseRepository) *CommitImportUseCase {
	return &CommitImportUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the commit. Rows are revalidated server-side; invalid rows
// are never imported, duplicates are excluded on request, and the commit is
// refused outright when nothing survives filtering.
func (uc *CommitImportUseCase) Execute(ctx context.Context, input CommitImportInput) (*CommitImportOutput, error) {
	if !input.MonthKey.Valid() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	output := &CommitImportOutput{}

	var eligible []*ImportRow
	for _, row := range input.Rows {
		if validation := ValidateRow(row); !validation.IsValid {
			output.SkippedInvalid++
			continue
		}
		if input.SkipDuplicates && row.IsDuplicate {
			output.SkippedDuplicate++
			continue
		}
		eligible = append(eligible, row)
	}

	if len(eligible) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeNoEligibleRows,
			"no eligible rows to import after filtering",
			domainerror.ErrNoEligibleRows,
		)
	}

	snapshot, err := uc.expenseRepo.FindByMonth(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot existing expenses: %w", err)
	}

	expenses := make([]*entity.Expense, len(eligible))
	for i, row := range eligible {
		expenses[i] = row.ToExpense()
	}

	if err := uc.expenseRepo.AddToMonth(ctx, input.UserID, input.MonthKey, expenses); err != nil {
		return nil, fmt.Errorf("failed to commit imported expenses: %w", err)
	}

	slog.Info("Import committed",
		"userID", input.UserID,
		"monthKey", input.MonthKey,
		"imported", len(expenses),
		"skippedInvalid", output.SkippedInvalid,
		"skippedDuplicate", output.SkippedDuplicate,
	)

	output.ImportedCount = len(expenses)
	output.Snapshot = snapshot

	return output, nil
}
