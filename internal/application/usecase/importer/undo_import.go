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

// UndoImportInput represents the input for restoring a pre-commit snapshot.
// An empty snapshot is legitimate: it restores a period that was empty before
// the import.
type UndoImportInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
	Snapshot []*entity.Expense
}

// UndoImportUseCase restores a ledger period to its pre-import state by
// replacing the period's record set wholesale with the snapshot taken at
// commit time. Only a single undo level is supported.
type UndoImportUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUndoImportUseCase creates a new UndoImportUseCase instance.
func NewUndoImportUseCase(expenseRepo adapter.ExpenseRepository) *UndoImportUseCase {
	return &UndoImportUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the snapshot restore.
func (uc *UndoImportUseCase) Execute(ctx context.Context, input UndoImportInput) error {
	if !input.MonthKey.Valid() {
		return domainerror.NewImportError(
			domainerror.ErrCodeImportMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	if err := uc.expenseRepo.ReplaceMonth(ctx, input.UserID, input.MonthKey, input.Snapshot); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	slog.Info("Import undone",
		"userID", input.UserID,
		"monthKey", input.MonthKey,
		"restored", len(input.Snapshot),
	)

	return nil
}
