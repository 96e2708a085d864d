// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodMastercard PaymentMethod = "Mastercard"
	PaymentMethodVisa       PaymentMethod = "Visa"
	PaymentMethodAmex       PaymentMethod = "Amex"
	PaymentMethodCash       PaymentMethod = "Cash"
)

// PaymentMethods lists every recognized payment method.
var PaymentMethods = []PaymentMethod{
	PaymentMethodMastercard,
	PaymentMethodVisa,
	PaymentMethodAmex,
	PaymentMethodCash,
}

// Known reports whether the payment method is part of the closed enumeration.
func (m PaymentMethod) Known() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Institution represents the issuing institution (bank or card issuer) of an expense.
type Institution string

const (
	InstitutionGaliciaMas  Institution = "Galicia Mas"
	InstitutionGalicia     Institution = "Galicia"
	InstitutionPatagonia   Institution = "Patagonia"
	InstitutionCiudad      Institution = "Ciudad"
	InstitutionMacro       Institution = "Macro"
	InstitutionHipotecario Institution = "Hipotecario"
	InstitutionAmexDirecta Institution = "Amex directa"
)

// Institutions lists every recognized issuing institution.
var Institutions = []Institution{
	InstitutionGaliciaMas,
	InstitutionGalicia,
	InstitutionPatagonia,
	InstitutionCiudad,
	InstitutionMacro,
	InstitutionHipotecario,
	InstitutionAmexDirecta,
}

// Known reports whether the institution is part of the closed enumeration.
func (i Institution) Known() bool {
	for _, known := range Institutions {
		if i == known {
			return true
		}
	}
	return false
}

// Responsible represents the household member attributed to an expense or income.
type Responsible string

const (
	ResponsiblePersonA Responsible = "Person A"
	ResponsiblePersonB Responsible = "Person B"
	ResponsibleShared  Responsible = "Shared"
)

// Responsibles lists every recognized responsible party.
var Responsibles = []Responsible{
	ResponsiblePersonA,
	ResponsiblePersonB,
	ResponsibleShared,
}

// Known reports whether the responsible party is part of the closed enumeration.
func (r Responsible) Known() bool {
	for _, known := range Responsibles {
		if r == known {
			return true
		}
	}
	return false
}

// Expense represents a single committed ledger entry.
//
// Dates are carried as DD/MM/YYYY strings, matching the spreadsheet sources
// the ledger is imported from. PaymentMethod, Institution and Responsible may
// hold values outside their enumerations: unrecognized inputs are preserved
// verbatim and surfaced as warnings at import time rather than rejected.
type Expense struct {
	Date               string // DD/MM/YYYY
	Description        string
	PaymentMethod      PaymentMethod
	Institution        Institution
	InstallmentsTotal  int
	InstallmentCurrent int
	AmountARS          decimal.Decimal
	AmountUSD          *decimal.Decimal
	Responsible        Responsible
	Category           string
	Paid               bool
}

// HasInstallments reports whether the expense is paid in installments.
func (e *Expense) HasInstallments() bool {
	return e.InstallmentsTotal > 1
}

// RemainingInstallments returns how many installments are still owed after the
// current one. A record on its last recorded installment has zero remaining.
func (e *Expense) RemainingInstallments() int {
	remaining := e.InstallmentsTotal - e.InstallmentCurrent
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SameIdentity reports whether two expenses describe the same purchase for
// deduplication purposes. Identity is the (description, date, ARS amount,
// institution) tuple; all other fields are ignored.
func (e *Expense) SameIdentity(other *Expense) bool {
	return e.Description == other.Description &&
		e.Date == other.Date &&
		e.AmountARS.Equal(other.AmountARS) &&
		e.Institution == other.Institution
}
