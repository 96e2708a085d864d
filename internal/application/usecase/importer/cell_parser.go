package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateFormat is the canonical ledger date layout (DD/MM/YYYY).
	DateFormat = "02/01/2006"

	// excelEpochOffset is the number of days between the 1900 spreadsheet
	// epoch (as serial 0 is rendered by the 1900 date system) and the Unix
	// epoch: serial 25569 is 1970-01-01.
	excelEpochOffset = 25569

	secondsPerDay = 86400
)

// canonicalDatePattern matches dates already in DD/MM/YYYY form.
var canonicalDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// fallbackDateLayouts are tried, in order, for date strings that are neither
// numeric serials nor already canonical.
var fallbackDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2/1/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// amountCleaner strips currency symbols and whitespace from amount cells.
var amountCleaner = strings.NewReplacer("$", "", " ", "", "\t", "", " ", "")

// thousandsPattern matches numbers whose dots are digit-grouping separators
// ("1.234", "12.345.678"), as opposed to a spreadsheet-native decimal point.
var thousandsPattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseDateCell interprets a raw date cell.
//
// Numeric values are treated as 1900-system spreadsheet date serials and
// converted to DD/MM/YYYY. Strings already in DD/MM/YYYY pass through
// unchanged. Other strings are tried against common layouts and reformatted.
// Anything else is returned as-is with ok=false so validation can flag it
// instead of silently dropping the value; empty input yields ("", false).
func ParseDateCell(raw string) (value string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		seconds := (serial - excelEpochOffset) * secondsPerDay
		t := time.Unix(int64(seconds), 0).UTC()
		return t.Format(DateFormat), true
	}

	if canonicalDatePattern.MatchString(s) {
		return s, true
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateFormat), true
		}
	}

	return s, false
}

// ParseAmountCell interprets a raw amount cell as a decimal number.
//
// Currency symbols and whitespace are stripped, `.` is treated as a thousands
// separator and dropped, and the first `,` becomes the decimal separator.
// Empty or unparseable cells yield nil, which is distinct from a valid zero.
func ParseAmountCell(raw string) *decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	cleaned := amountCleaner.Replace(s)

	// Spreadsheet-native numbers arrive with a plain decimal point and no
	// grouping; those must not have their dot stripped.
	if !strings.Contains(cleaned, ",") && !thousandsPattern.MatchString(cleaned) {
		if d, err := decimal.NewFromString(cleaned); err == nil {
			return &d
		}
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// ParseInstallmentCell interprets a raw installment counter cell, defaulting
// to 1 when the cell is absent or not a positive integer.
func ParseInstallmentCell(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 1
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 1 {
		return n
	}

	// Spreadsheets occasionally render integers as floats ("3.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil && int(f) >= 1 {
		return int(f)
	}

	return 1
}
