package adapter

import "io"

// SpreadsheetReader defines the interface for reading tabular spreadsheet
// files into raw cell grids. Only the first sheet is read; row 0 holds the
// headers. Cell values are returned unformatted so numeric date serials
// survive for the import pipeline to interpret.
type SpreadsheetReader interface {
	// Read parses the file content and returns its rows. The filename is
	// used to pick the decoder by extension (.xlsx or .xls).
	Read(r io.Reader, filename string) ([][]string, error)
}
