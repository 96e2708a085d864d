package importer

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

func testColumns() ColumnMap {
	return ColumnMap{
		Description:        0,
		Date:               1,
		InstallmentsTotal:  2,
		InstallmentCurrent: 3,
		AmountARS:          4,
		AmountUSD:          5,
		PaymentMethod:      6,
		Institution:        7,
		Responsible:        8,
		Category:           9,
	}
}

func TestParseRow(t *testing.T) {
	cols := testColumns()

	t.Run("complete row parses and validates", func(t *testing.T) {
		raw := []string{"Supermercado", "45000", "3", "1", "1.500,50", "", "mc", "galicia", "p1", "Comida"}
		row := ParseRow(raw, cols)

		if row.Description != "Supermercado" {
			t.Errorf("Description = %q", row.Description)
		}
		if row.Date != "15/03/2023" {
			t.Errorf("Date = %q, want 15/03/2023", row.Date)
		}
		if row.InstallmentsTotal != 3 || row.InstallmentCurrent != 1 {
			t.Errorf("installments = %d/%d, want 1/3", row.InstallmentCurrent, row.InstallmentsTotal)
		}
		if row.AmountARS == nil || !row.AmountARS.Equal(decimal.RequireFromString("1500.50")) {
			t.Errorf("AmountARS = %v, want 1500.50", row.AmountARS)
		}
		if row.AmountUSD != nil {
			t.Errorf("AmountUSD = %v, want nil", row.AmountUSD)
		}
		if row.PaymentMethod != "Mastercard" {
			t.Errorf("PaymentMethod = %q, want Mastercard", row.PaymentMethod)
		}
		if row.Institution != "Galicia" {
			t.Errorf("Institution = %q, want Galicia", row.Institution)
		}
		if row.Responsible != "Person A" {
			t.Errorf("Responsible = %q, want Person A", row.Responsible)
		}
		if !row.Validation.IsValid {
			t.Errorf("expected valid row, errors: %v", row.Validation.Errors)
		}
	})

	t.Run("short raw lines read missing cells as empty", func(t *testing.T) {
		row := ParseRow([]string{"Cena", "24/12/2024"}, cols)
		if row.AmountARS != nil || row.AmountUSD != nil {
			t.Error("expected nil amounts for absent cells")
		}
		if row.Validation.IsValid {
			t.Error("expected invalid row without any amount")
		}
	})
}

func TestValidateRow(t *testing.T) {
	ars := decimal.NewFromInt(100)

	t.Run("missing description", func(t *testing.T) {
		row := &ImportRow{Date: "01/01/2025", AmountARS: &ars}
		v := ValidateRow(row)
		if v.IsValid || len(v.Errors) != 1 {
			t.Errorf("expected single error, got %+v", v)
		}
	})

	t.Run("unparsed date is an error", func(t *testing.T) {
		row := &ImportRow{Description: "x", Date: "pronto", AmountARS: &ars}
		v := ValidateRow(row)
		if v.IsValid {
			t.Errorf("expected invalid row, got %+v", v)
		}
	})

	t.Run("zero amount counts as present", func(t *testing.T) {
		zero := decimal.Zero
		row := &ImportRow{Description: "x", Date: "01/01/2025", AmountARS: &zero}
		v := ValidateRow(row)
		if !v.IsValid {
			t.Errorf("expected valid row, got %+v", v)
		}
	})

	t.Run("USD-only row is valid", func(t *testing.T) {
		usd := decimal.NewFromInt(50)
		row := &ImportRow{Description: "x", Date: "01/01/2025", AmountUSD: &usd}
		v := ValidateRow(row)
		if !v.IsValid {
			t.Errorf("expected valid row, got %+v", v)
		}
	})

	t.Run("unknown enum values warn but do not block", func(t *testing.T) {
		row := &ImportRow{
			Description:   "x",
			Date:          "01/01/2025",
			AmountARS:     &ars,
			PaymentMethod: "trueque",
			Institution:   "Banco Nacion",
			Responsible:   "equipo",
		}
		v := ValidateRow(row)
		if !v.IsValid {
			t.Errorf("expected valid row, got errors %v", v.Errors)
		}
		if len(v.Warnings) != 3 {
			t.Errorf("expected 3 warnings, got %v", v.Warnings)
		}
	})
}

func TestIsBlankLine(t *testing.T) {
	if !IsBlankLine([]string{"", "  ", "\t"}) {
		t.Error("expected blank line")
	}
	if IsBlankLine([]string{"", "x"}) {
		t.Error("expected non-blank line")
	}
	if !IsBlankLine(nil) {
		t.Error("expected nil line to be blank")
	}
}

func TestToExpense(t *testing.T) {
	t.Run("fallback defaults apply", func(t *testing.T) {
		row := &ImportRow{
			Description:        "Cena",
			Date:               "24/12/2024",
			InstallmentsTotal:  1,
			InstallmentCurrent: 1,
		}
		exp := row.ToExpense()

		if exp.PaymentMethod != entity.PaymentMethodCash {
			t.Errorf("PaymentMethod = %q, want Cash", exp.PaymentMethod)
		}
		if exp.Institution != entity.InstitutionGalicia {
			t.Errorf("Institution = %q, want Galicia", exp.Institution)
		}
		if exp.Responsible != entity.ResponsibleShared {
			t.Errorf("Responsible = %q, want Shared", exp.Responsible)
		}
		if !exp.AmountARS.IsZero() {
			t.Errorf("AmountARS = %s, want 0", exp.AmountARS)
		}
		if exp.Paid {
			t.Error("expected imported expense to start unpaid")
		}
	})

	t.Run("parsed values carry over", func(t *testing.T) {
		ars := decimal.RequireFromString("1500.50")
		usd := decimal.NewFromInt(20)
		row := &ImportRow{
			Description:        "Notebook",
			Date:               "15/03/2023",
			InstallmentsTotal:  12,
			InstallmentCurrent: 4,
			AmountARS:          &ars,
			AmountUSD:          &usd,
			PaymentMethod:      "Visa",
			Institution:        "Patagonia",
			Responsible:        "Person B",
			Category:           "Tecnologia",
		}
		exp := row.ToExpense()

		if !exp.AmountARS.Equal(ars) {
			t.Errorf("AmountARS = %s", exp.AmountARS)
		}
		if exp.AmountUSD == nil || !exp.AmountUSD.Equal(usd) {
			t.Errorf("AmountUSD = %v", exp.AmountUSD)
		}
		if exp.InstallmentsTotal != 12 || exp.InstallmentCurrent != 4 {
			t.Errorf("installments = %d/%d", exp.InstallmentCurrent, exp.InstallmentsTotal)
		}
		if exp.Institution != entity.Institution("Patagonia") {
			t.Errorf("Institution = %q", exp.Institution)
		}
	})
}
