package valueobject

import "strings"

// Synonym tables used by the import pipeline to map free-form spreadsheet
// values onto the canonical enumerations. Keys are lower-cased and trimmed
// before lookup. Values outside the tables are passed through verbatim.

var paymentMethodSynonyms = map[string]string{
	"mc":               "Mastercard",
	"master":           "Mastercard",
	"mastercard":       "Mastercard",
	"visa":             "Visa",
	"amex":             "Amex",
	"american express": "Amex",
	"efectivo":         "Cash",
	"cash":             "Cash",
	"debito":           "Cash",
	"débito":           "Cash",
}

var institutionSynonyms = map[string]string{
	"galicia mas":       "Galicia Mas",
	"galicia más":       "Galicia Mas",
	"galiciamas":        "Galicia Mas",
	"galicia":           "Galicia",
	"bbva":              "Galicia",
	"bbva frances":      "Galicia",
	"frances":           "Galicia",
	"patagonia":         "Patagonia",
	"banco patagonia":   "Patagonia",
	"ciudad":            "Ciudad",
	"banco ciudad":      "Ciudad",
	"macro":             "Macro",
	"banco macro":       "Macro",
	"hipotecario":       "Hipotecario",
	"banco hipotecario": "Hipotecario",
	"amex directa":      "Amex directa",
	"amex":              "Amex directa",
}

var responsibleSynonyms = map[string]string{
	"person a":   "Person A",
	"persona 1":  "Person A",
	"persona1":   "Person A",
	"p1":         "Person A",
	"1":          "Person A",
	"person b":   "Person B",
	"persona 2":  "Person B",
	"persona2":   "Person B",
	"p2":         "Person B",
	"2":          "Person B",
	"shared":     "Shared",
	"compartido": "Shared",
	"ambos":      "Shared",
	"todos":      "Shared",
	"otro":       "Shared",
}

// normalize looks the value up in the given synonym table. On a hit it returns
// the canonical value and true; on a miss the original value is returned
// unchanged and false. Empty input yields an empty string.
func normalize(value string, table map[string]string) (string, bool) {
	if value == "" {
		return "", false
	}
	if canonical, ok := table[strings.ToLower(strings.TrimSpace(value))]; ok {
		return canonical, true
	}
	return value, false
}

// NormalizePaymentMethod maps a raw spreadsheet value onto a canonical payment
// method. Unmatched values pass through verbatim with matched=false.
func NormalizePaymentMethod(value string) (canonical string, matched bool) {
	return normalize(value, paymentMethodSynonyms)
}

// NormalizeInstitution maps a raw spreadsheet value onto a canonical issuing
// institution. Unmatched values pass through verbatim with matched=false.
func NormalizeInstitution(value string) (canonical string, matched bool) {
	return normalize(value, institutionSynonyms)
}

// NormalizeResponsible maps a raw spreadsheet value onto a canonical
// responsible party. Unmatched values pass through verbatim with matched=false.
func NormalizeResponsible(value string) (canonical string, matched bool) {
	return normalize(value, responsibleSynonyms)
}
