package valueobject

import "testing"

func TestNormalizePaymentMethod(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		matched bool
	}{
		{"mc", "Mastercard", true},
		{"MASTER", "Mastercard", true},
		{"  Visa  ", "Visa", true},
		{"american express", "Amex", true},
		{"efectivo", "Cash", true},
		{"débito", "Cash", true},
		{"crypto", "crypto", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, matched := NormalizePaymentMethod(tc.in)
		if got != tc.want || matched != tc.matched {
			t.Errorf("NormalizePaymentMethod(%q) = (%q, %v), want (%q, %v)", tc.in, got, matched, tc.want, tc.matched)
		}
	}
}

func TestNormalizeInstitution(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		matched bool
	}{
		{"galicia más", "Galicia Mas", true},
		{"GaliciaMas", "Galicia Mas", true},
		{"bbva frances", "Galicia", true},
		{"Banco Patagonia", "Patagonia", true},
		{"amex", "Amex directa", true},
		{"Santander", "Santander", false},
	}

	for _, tc := range cases {
		got, matched := NormalizeInstitution(tc.in)
		if got != tc.want || matched != tc.matched {
			t.Errorf("NormalizeInstitution(%q) = (%q, %v), want (%q, %v)", tc.in, got, matched, tc.want, tc.matched)
		}
	}
}

func TestNormalizeResponsible(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		matched bool
	}{
		{"p1", "Person A", true},
		{"Persona 2", "Person B", true},
		{"ambos", "Shared", true},
		{"compartido", "Shared", true},
		{"1", "Person A", true},
		{"equipo", "equipo", false},
	}

	for _, tc := range cases {
		got, matched := NormalizeResponsible(tc.in)
		if got != tc.want || matched != tc.matched {
			t.Errorf("NormalizeResponsible(%q) = (%q, %v), want (%q, %v)", tc.in, got, matched, tc.want, tc.matched)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Canonical values map to themselves so a second pass is a no-op.
	for _, v := range []string{"Mastercard", "Visa", "Amex", "Cash"} {
		got, _ := NormalizePaymentMethod(v)
		if got != v {
			t.Errorf("expected canonical %q to survive normalization, got %q", v, got)
		}
	}
	for _, v := range []string{"Galicia", "Galicia Mas", "Patagonia", "Ciudad", "Macro", "Hipotecario", "Amex directa"} {
		got, _ := NormalizeInstitution(v)
		if got != v {
			t.Errorf("expected canonical %q to survive normalization, got %q", v, got)
		}
	}
	for _, v := range []string{"Person A", "Person B", "Shared"} {
		got, _ := NormalizeResponsible(v)
		if got != v {
			t.Errorf("expected canonical %q to survive normalization, got %q", v, got)
		}
	}
}
