// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"regexp"
	"time"
)

// monthKeyPattern is the regex pattern for valid month keys (YYYY-MM).
var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthKey is the canonical YYYY-MM identifier for a ledger period.
// Months are 1-indexed and zero-padded.
type MonthKey string

// NewMonthKey builds a MonthKey from a 1-indexed month and a year.
func NewMonthKey(month, year int) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", year, month))
}

// Valid reports whether the key is in YYYY-MM form.
func (k MonthKey) Valid() bool {
	return monthKeyPattern.MatchString(string(k))
}

// MonthYear returns the 1-indexed month and the year the key refers to.
// The key must be valid.
func (k MonthKey) MonthYear() (month, year int) {
	t, _ := time.Parse("2006-01", string(k))
	return int(t.Month()), t.Year()
}

// String returns the key as a plain string.
func (k MonthKey) String() string {
	return string(k)
}
