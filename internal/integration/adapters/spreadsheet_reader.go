// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// spreadsheetReader implements the adapter.SpreadsheetReader interface for
// .xlsx (excelize) and legacy .xls (xlsReader) workbooks.
type spreadsheetReader struct{}

// NewSpreadsheetReader creates a new spreadsheet reader instance.
func NewSpreadsheetReader() adapter.SpreadsheetReader {
	return &spreadsheetReader{}
}

// Read parses the first sheet of the workbook into a raw cell grid.
func (s *spreadsheetReader) Read(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return s.readXLSX(r)
	case ".xls":
		return s.readXLS(r)
	default:
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnsupportedFileType,
			fmt.Sprintf("unsupported spreadsheet file type %q", filepath.Ext(filename)),
			domainerror.ErrUnsupportedFileType,
		)
	}
}

func (s *spreadsheetReader) readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnreadableWorkbook,
			"unable to read xlsx file",
			err,
		)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyWorkbook,
			"workbook contains no sheets",
			domainerror.ErrEmptyWorkbook,
		)
	}

	// Raw cell values keep date serials as numbers instead of the sheet's
	// display format, which the row parser relies on.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnreadableWorkbook,
			"unable to read xlsx rows",
			err,
		)
	}
	return rows, nil
}

func (s *spreadsheetReader) readXLS(r io.Reader) ([][]string, error) {
	// xlsReader needs a ReadSeeker
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnreadableWorkbook,
			"unable to read xls file",
			err,
		)
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnreadableWorkbook,
			"unable to read xls file",
			err,
		)
	}

	if len(workbook.GetSheets()) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyWorkbook,
			"workbook contains no sheets",
			domainerror.ErrEmptyWorkbook,
		)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnreadableWorkbook,
			"unable to read xls sheet",
			err,
		)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
