// Package importer contains the spreadsheet import pipeline use cases.
package importer

import "strings"

// ColumnMap maps each canonical expense field to the index of the spreadsheet
// column it was detected in, or -1 when no header matched. A missing column is
// not a pipeline failure; it surfaces downstream as a per-row validation error.
type ColumnMap struct {
	Description        int
	Date               int
	InstallmentsTotal  int
	InstallmentCurrent int
	AmountARS          int
	AmountUSD          int
	PaymentMethod      int
	Institution        int
	Responsible        int
	Category           int
}

// genericAmountWords are headers that name an amount without a currency. They
// feed the ARS fallback pass when no ARS-specific header was found.
var genericAmountWords = map[string]bool{
	"monto":   true,
	"importe": true,
	"valor":   true,
	"gasto":   true,
	"total":   true,
}

// DetectColumns maps spreadsheet headers onto canonical fields using
// case-insensitive substring and equality heuristics.
//
// Headers are scanned in order and every match assigns unconditionally, so
// when two headers satisfy the same field's heuristic the later one wins.
// Imported sheets in the wild rely on this, so it is kept as-is.
func DetectColumns(headers []string) ColumnMap {
	cols := ColumnMap{
		Description:        -1,
		Date:               -1,
		InstallmentsTotal:  -1,
		InstallmentCurrent: -1,
		AmountARS:          -1,
		AmountUSD:          -1,
		PaymentMethod:      -1,
		Institution:        -1,
		Responsible:        -1,
		Category:           -1,
	}

	for i, header := range headers {
		h := strings.ToLower(strings.TrimSpace(header))

		if strings.Contains(h, "descrip") || h == "concepto" || h == "detalle" || h == "nombre" {
			cols.Description = i
		}
		if strings.Contains(h, "fecha") || h == "date" || h == "dia" || h == "día" {
			cols.Date = i
		}
		if (strings.Contains(h, "cuota") && !strings.Contains(h, "actual") && !strings.Contains(h, "monto")) || h == "cuotas" {
			cols.InstallmentsTotal = i
		}
		if strings.Contains(h, "cuota") && strings.Contains(h, "actual") {
			cols.InstallmentCurrent = i
		}
		if strings.Contains(h, "ars") || h == "pesos" || h == "monto ars" || h == "gasto ars" ||
			h == "importe ars" || h == "valor ars" || h == "monto_ars" {
			cols.AmountARS = i
		}
		if strings.Contains(h, "usd") || strings.Contains(h, "dolar") || strings.Contains(h, "dólar") ||
			h == "monto usd" || h == "gasto usd" || h == "importe usd" || h == "monto_usd" {
			cols.AmountUSD = i
		}
		if strings.Contains(h, "medio") || h == "pago" || h == "forma de pago" || strings.Contains(h, "tarjeta") || h == "medio_pago" {
			cols.PaymentMethod = i
		}
		if strings.Contains(h, "entidad") || strings.Contains(h, "banco") || h == "emisor" {
			cols.Institution = i
		}
		if strings.Contains(h, "responsable") || strings.Contains(h, "persona") || h == "quien" || h == "quién" {
			cols.Responsible = i
		}
		if strings.Contains(h, "categoria") || strings.Contains(h, "categoría") || h == "rubro" || h == "tipo" {
			cols.Category = i
		}
	}

	// Fallback: a generic amount column counts as ARS when no ARS-specific
	// header was found and the header does not mention dollars.
	if cols.AmountARS == -1 {
		for i, header := range headers {
			h := strings.ToLower(strings.TrimSpace(header))
			if genericAmountWords[h] && !strings.Contains(h, "usd") && !strings.Contains(h, "dolar") {
				cols.AmountARS = i
			}
		}
	}

	return cols
}
