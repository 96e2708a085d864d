// Package valueobject defines immutable value types shared across the domain.
package valueobject

import "testing"

func TestMonthKeyValid(t *testing.T) {
	valid := []string{"2025-01", "2025-12", "1999-06", "2030-09"}
	for _, key := range valid {
		if !MonthKey(key).Valid() {
			t.Errorf("expected %q to be valid", key)
		}
	}

	invalid := []string{"", "2025-13", "2025-00", "2025-1", "25-01", "2025/01", "2025-01-15", "enero 2025"}
	for _, key := range invalid {
		if MonthKey(key).Valid() {
			t.Errorf("expected %q to be invalid", key)
		}
	}
}

func TestNewMonthKey(t *testing.T) {
	if got := NewMonthKey(3, 2025); got != "2025-03" {
		t.Errorf("expected 2025-03, got %s", got)
	}
	if got := NewMonthKey(12, 1999); got != "1999-12" {
		t.Errorf("expected 1999-12, got %s", got)
	}
}

func TestMonthKeyMonthYear(t *testing.T) {
	month, year := MonthKey("2025-07").MonthYear()
	if month != 7 || year != 2025 {
		t.Errorf("expected (7, 2025), got (%d, %d)", month, year)
	}
}

func TestMonthKeyRoundTrip(t *testing.T) {
	for m := 1; m <= 12; m++ {
		key := NewMonthKey(m, 2024)
		if !key.Valid() {
			t.Fatalf("generated key %s is invalid", key)
		}
		month, year := key.MonthYear()
		if month != m || year != 2024 {
			t.Errorf("round trip mismatch for month %d: got (%d, %d)", m, month, year)
		}
	}
}
