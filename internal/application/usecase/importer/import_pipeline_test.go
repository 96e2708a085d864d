package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// fakeExpenseRepository is an in-memory ExpenseRepository for pipeline tests.
type fakeExpenseRepository struct {
	months map[valueobject.MonthKey][]*entity.Expense
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{months: make(map[valueobject.MonthKey][]*entity.Expense)}
}

func (r *fakeExpenseRepository) FindByMonth(_ context.Context, _ uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Expense, error) {
	return r.months[monthKey], nil
}

func (r *fakeExpenseRepository) FindAll(_ context.Context, _ uuid.UUID) (map[valueobject.MonthKey][]*entity.Expense, error) {
	return r.months, nil
}

func (r *fakeExpenseRepository) AddToMonth(_ context.Context, _ uuid.UUID, monthKey valueobject.MonthKey, expenses []*entity.Expense) error {
	r.months[monthKey] = append(r.months[monthKey], expenses...)
	return nil
}

func (r *fakeExpenseRepository) ReplaceMonth(_ context.Context, _ uuid.UUID, monthKey valueobject.MonthKey, expenses []*entity.Expense) error {
	r.months[monthKey] = expenses
	return nil
}

func (r *fakeExpenseRepository) DeleteByIndex(_ context.Context, _ uuid.UUID, monthKey valueobject.MonthKey, index int) error {
	expenses := r.months[monthKey]
	if index < 0 || index >= len(expenses) {
		return domainerror.ErrExpenseNotFound
	}
	r.months[monthKey] = append(expenses[:index], expenses[index+1:]...)
	return nil
}

func (r *fakeExpenseRepository) ClearMonth(_ context.Context, _ uuid.UUID, monthKey valueobject.MonthKey) error {
	delete(r.months, monthKey)
	return nil
}

func (r *fakeExpenseRepository) ClearAll(_ context.Context, _ uuid.UUID) error {
	r.months = make(map[valueobject.MonthKey][]*entity.Expense)
	return nil
}

func sampleGrid() [][]string {
	return [][]string{
		{"Descripcion", "Fecha", "Cuotas", "Cuota Actual", "Monto ARS", "Monto USD", "Medio de Pago", "Banco", "Responsable", "Categoria"},
		{"Supermercado", "15/03/2023", "1", "1", "25.000,00", "", "visa", "galicia", "p1", "Comida"},
		{"Notebook", "45000", "12", "3", "150.000,00", "", "mc", "bbva", "p2", "Tecnologia"},
		{"", "", "", "", "", "", "", "", "", ""},
		{"Sin fecha", "", "", "", "1.000,00", "", "", "", "", ""},
	}
}

func TestPreviewImport(t *testing.T) {
	repo := newFakeExpenseRepository()
	uc := NewPreviewImportUseCase(repo)
	userID := uuid.New()

	t.Run("invalid month key is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), PreviewImportInput{
			UserID:   userID,
			MonthKey: "2023-3",
			Rows:     sampleGrid(),
		})
		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) || importErr.Code != domainerror.ErrCodeImportMonthKey {
			t.Fatalf("expected month key error, got %v", err)
		}
	})

	t.Run("header-only workbook is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), PreviewImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Rows:     sampleGrid()[:1],
		})
		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) || importErr.Code != domainerror.ErrCodeEmptyWorkbook {
			t.Fatalf("expected empty workbook error, got %v", err)
		}
	})

	t.Run("rows are parsed, blanks skipped, counts tallied", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), PreviewImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Rows:     sampleGrid(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Rows) != 3 {
			t.Fatalf("expected 3 parsed rows (blank skipped), got %d", len(output.Rows))
		}
		if output.ValidCount != 2 || output.InvalidCount != 1 {
			t.Errorf("counts = %d valid / %d invalid, want 2/1", output.ValidCount, output.InvalidCount)
		}
		if output.Rows[1].Date != "15/03/2023" {
			t.Errorf("serial date not converted: %q", output.Rows[1].Date)
		}
		if output.Rows[1].Institution != "Galicia" {
			t.Errorf("institution not normalized: %q", output.Rows[1].Institution)
		}
	})

	t.Run("duplicates are flagged against committed records", func(t *testing.T) {
		dupRepo := newFakeExpenseRepository()
		dupRepo.months["2023-03"] = []*entity.Expense{{
			Description: "Supermercado",
			Date:        "15/03/2023",
			AmountARS:   decimal.RequireFromString("25000"),
			Institution: entity.InstitutionGalicia,
		}}

		output, err := NewPreviewImportUseCase(dupRepo).Execute(context.Background(), PreviewImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Rows:     sampleGrid(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Duplicates) != 1 {
			t.Fatalf("expected 1 duplicate, got %d", len(output.Duplicates))
		}
		if output.Duplicates[0].Description != "Supermercado" || !output.Duplicates[0].IsDuplicate {
			t.Errorf("wrong duplicate flagged: %+v", output.Duplicates[0])
		}
	})
}

func TestCommitImport(t *testing.T) {
	userID := uuid.New()

	previewRows := func(repo *fakeExpenseRepository) []*ImportRow {
		output, err := NewPreviewImportUseCase(repo).Execute(context.Background(), PreviewImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Rows:     sampleGrid(),
		})
		if err != nil {
			t.Fatalf("preview failed: %v", err)
		}
		return output.Rows
	}

	t.Run("commits valid rows and skips invalid ones", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		rows := previewRows(repo)

		output, err := NewCommitImportUseCase(repo).Execute(context.Background(), CommitImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Rows:     rows,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ImportedCount != 2 || output.SkippedInvalid != 1 {
			t.Errorf("imported %d, skipped %d, want 2/1", output.ImportedCount, output.SkippedInvalid)
		}
		if len(repo.months["2023-03"]) != 2 {
			t.Errorf("expected 2 committed expenses, got %d", len(repo.months["2023-03"]))
		}
		if len(output.Snapshot) != 0 {
			t.Errorf("expected empty snapshot for empty period, got %d", len(output.Snapshot))
		}
	})

	t.Run("skip duplicates on request", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		repo.months["2023-03"] = []*entity.Expense{{
			Description: "Supermercado",
			Date:        "15/03/2023",
			AmountARS:   decimal.RequireFromString("25000"),
			Institution: entity.InstitutionGalicia,
		}}
		rows := previewRows(repo)

		output, err := NewCommitImportUseCase(repo).Execute(context.Background(), CommitImportInput{
			UserID:         userID,
			MonthKey:       "2023-03",
			Rows:           rows,
			SkipDuplicates: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ImportedCount != 1 || output.SkippedDuplicate != 1 {
			t.Errorf("imported %d, skipped dup %d, want 1/1", output.ImportedCount, output.SkippedDuplicate)
		}
		if len(output.Snapshot) != 1 {
			t.Errorf("snapshot should hold the pre-commit record, got %d", len(output.Snapshot))
		}
	})

	t.Run("refuses commit when nothing survives filtering", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		invalid := &ImportRow{Description: "", Date: "", AmountARS: nil}

		_, err := NewCommitImportUseCase(repo).Execute(context.Background(), CommitImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Rows:     []*ImportRow{invalid},
		})
		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) || importErr.Code != domainerror.ErrCodeNoEligibleRows {
			t.Fatalf("expected no-eligible-rows error, got %v", err)
		}
	})
}

func TestUndoImport(t *testing.T) {
	userID := uuid.New()
	repo := newFakeExpenseRepository()

	// Commit on top of one pre-existing record, then roll back.
	existing := &entity.Expense{
		Description: "Alquiler",
		Date:        "01/03/2023",
		AmountARS:   decimal.RequireFromString("500000"),
		Institution: entity.InstitutionGalicia,
	}
	repo.months["2023-03"] = []*entity.Expense{existing}

	preview, err := NewPreviewImportUseCase(repo).Execute(context.Background(), PreviewImportInput{
		UserID:   userID,
		MonthKey: "2023-03",
		Rows:     sampleGrid(),
	})
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	commit, err := NewCommitImportUseCase(repo).Execute(context.Background(), CommitImportInput{
		UserID:   userID,
		MonthKey: "2023-03",
		Rows:     preview.Rows,
	})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if len(repo.months["2023-03"]) != 1+commit.ImportedCount {
		t.Fatalf("expected %d records after commit, got %d", 1+commit.ImportedCount, len(repo.months["2023-03"]))
	}

	if err := NewUndoImportUseCase(repo).Execute(context.Background(), UndoImportInput{
		UserID:   userID,
		MonthKey: "2023-03",
		Snapshot: commit.Snapshot,
	}); err != nil {
		t.Fatalf("undo failed: %v", err)
	}

	restored := repo.months["2023-03"]
	if len(restored) != 1 || restored[0].Description != "Alquiler" {
		t.Errorf("expected period restored to single pre-import record, got %d", len(restored))
	}

	t.Run("empty snapshot restores an empty period", func(t *testing.T) {
		if err := NewUndoImportUseCase(repo).Execute(context.Background(), UndoImportInput{
			UserID:   userID,
			MonthKey: "2023-03",
			Snapshot: nil,
		}); err != nil {
			t.Fatalf("undo failed: %v", err)
		}
		if len(repo.months["2023-03"]) != 0 {
			t.Errorf("expected empty period, got %d records", len(repo.months["2023-03"]))
		}
	})
}
