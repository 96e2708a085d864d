package importer

import "testing"

func TestDetectColumns(t *testing.T) {
	t.Run("typical spanish headers", func(t *testing.T) {
		headers := []string{"Fecha", "Descripcion", "Cuotas", "Cuota Actual", "Monto ARS", "Monto USD", "Medio de Pago", "Banco", "Responsable", "Categoria"}
		cols := DetectColumns(headers)

		if cols.Date != 0 {
			t.Errorf("Date = %d, want 0", cols.Date)
		}
		if cols.Description != 1 {
			t.Errorf("Description = %d, want 1", cols.Description)
		}
		if cols.InstallmentsTotal != 2 {
			t.Errorf("InstallmentsTotal = %d, want 2", cols.InstallmentsTotal)
		}
		if cols.InstallmentCurrent != 3 {
			t.Errorf("InstallmentCurrent = %d, want 3", cols.InstallmentCurrent)
		}
		if cols.AmountARS != 4 {
			t.Errorf("AmountARS = %d, want 4", cols.AmountARS)
		}
		if cols.AmountUSD != 5 {
			t.Errorf("AmountUSD = %d, want 5", cols.AmountUSD)
		}
		if cols.PaymentMethod != 6 {
			t.Errorf("PaymentMethod = %d, want 6", cols.PaymentMethod)
		}
		if cols.Institution != 7 {
			t.Errorf("Institution = %d, want 7", cols.Institution)
		}
		if cols.Responsible != 8 {
			t.Errorf("Responsible = %d, want 8", cols.Responsible)
		}
		if cols.Category != 9 {
			t.Errorf("Category = %d, want 9", cols.Category)
		}
	})

	t.Run("unmatched fields stay at -1", func(t *testing.T) {
		cols := DetectColumns([]string{"Fecha", "Concepto"})
		if cols.AmountARS != -1 || cols.AmountUSD != -1 || cols.Institution != -1 {
			t.Errorf("expected unmatched amount and institution columns, got %+v", cols)
		}
	})

	t.Run("generic amount header falls back to ARS", func(t *testing.T) {
		cols := DetectColumns([]string{"Fecha", "Detalle", "Importe"})
		if cols.AmountARS != 2 {
			t.Errorf("AmountARS = %d, want 2 via generic fallback", cols.AmountARS)
		}
	})

	t.Run("currency specific header beats generic fallback", func(t *testing.T) {
		cols := DetectColumns([]string{"Monto", "Gasto ARS"})
		if cols.AmountARS != 1 {
			t.Errorf("AmountARS = %d, want 1 (ARS-specific header)", cols.AmountARS)
		}
	})

	t.Run("later matching header wins", func(t *testing.T) {
		cols := DetectColumns([]string{"Fecha de compra", "Fecha"})
		if cols.Date != 1 {
			t.Errorf("Date = %d, want 1", cols.Date)
		}
	})

	t.Run("headers are matched case-insensitively", func(t *testing.T) {
		cols := DetectColumns([]string{"FECHA", "DESCRIPCION", "MONTO ARS"})
		if cols.Date != 0 || cols.Description != 1 || cols.AmountARS != 2 {
			t.Errorf("case-insensitive match failed: %+v", cols)
		}
	})
}
