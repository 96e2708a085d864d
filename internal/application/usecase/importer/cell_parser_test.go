// Package importer contains the spreadsheet import pipeline use cases.
package importer

import "testing"

func TestParseDateCell(t *testing.T) {
	t.Run("numeric serials convert to canonical dates", func(t *testing.T) {
		cases := map[string]string{
			"45000": "15/03/2023",
			"44927": "01/01/2023",
			"45292": "01/01/2024",
		}
		for raw, want := range cases {
			got, ok := ParseDateCell(raw)
			if !ok || got != want {
				t.Errorf("ParseDateCell(%q) = (%q, %v), want (%q, true)", raw, got, ok, want)
			}
		}
	})

	t.Run("canonical dates pass through", func(t *testing.T) {
		got, ok := ParseDateCell("24/12/2024")
		if !ok || got != "24/12/2024" {
			t.Errorf("expected passthrough, got (%q, %v)", got, ok)
		}
	})

	t.Run("ISO dates are reformatted", func(t *testing.T) {
		got, ok := ParseDateCell("2024-12-24")
		if !ok || got != "24/12/2024" {
			t.Errorf("expected 24/12/2024, got (%q, %v)", got, ok)
		}
	})

	t.Run("unparseable text is returned with ok=false", func(t *testing.T) {
		got, ok := ParseDateCell("navidad")
		if ok || got != "navidad" {
			t.Errorf("expected (navidad, false), got (%q, %v)", got, ok)
		}
	})

	t.Run("empty cell", func(t *testing.T) {
		got, ok := ParseDateCell("  ")
		if ok || got != "" {
			t.Errorf("expected empty result, got (%q, %v)", got, ok)
		}
	})
}

func TestParseAmountCell(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"$ 1.234.567,89", "1234567.89"},
		{"1.234", "1234"},
		{"12.345.678", "12345678"},
		{"999,5", "999.5"},
		{"0", "0"},
		{"-500,25", "-500.25"},
	}

	for _, tc := range cases {
		got := ParseAmountCell(tc.raw)
		if got == nil {
			t.Errorf("ParseAmountCell(%q) = nil, want %s", tc.raw, tc.want)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseAmountCell(%q) = %s, want %s", tc.raw, got.String(), tc.want)
		}
	}

	t.Run("empty and unparseable cells yield nil", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "n/a", "---"} {
			if got := ParseAmountCell(raw); got != nil {
				t.Errorf("ParseAmountCell(%q) = %s, want nil", raw, got.String())
			}
		}
	})
}

func TestParseInstallmentCell(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"1":   1,
		"12":  12,
		"3.0": 3,
		"0":   1,
		"-2":  1,
		"abc": 1,
	}

	for raw, want := range cases {
		if got := ParseInstallmentCell(raw); got != want {
			t.Errorf("ParseInstallmentCell(%q) = %d, want %d", raw, got, want)
		}
	}
}
