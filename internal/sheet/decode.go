// Package sheet turns raw statement spreadsheets into header-labeled
// row records. It decodes XLSX, legacy XLS and CSV files into a plain
// cell grid, finds the header row, and truncates at footer noise.
package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// Format identifies the statement file encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// FormatForFile guesses the format from a file name extension.
func FormatForFile(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return FormatXLSX, nil
	case strings.HasSuffix(lower, ".xls"):
		return FormatXLS, nil
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported statement file %q (expected .xlsx, .xls or .csv)", name)
}

// Decode reads a statement file into a raw cell grid. Cells are kept
// as raw strings; numeric cells (including date serials) arrive as
// their undecorated numeric text.
func Decode(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatXLSX:
		return decodeXLSX(r)
	case FormatXLS:
		return decodeXLS(r)
	case FormatCSV:
		return decodeCSV(r)
	}
	return nil, fmt.Errorf("unknown statement format %q", format)
}

// decodeXLSX reads the first worksheet of an XLSX workbook. Raw cell
// values are requested so date cells surface as serial numbers, the
// same shape the normalizer expects from every decoder.
func decodeXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading XLSX rows: %w", err)
	}
	return rows, nil
}

// decodeXLS reads the first sheet of a legacy binary XLS workbook. The
// xls reader needs a seekable source, so the input is buffered first.
func decodeXLS(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading XLS data: %w", err)
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error opening XLS workbook: %w", err)
	}

	sheets := workbook.GetSheets()
	if len(sheets) == 0 {
		return nil, nil
	}

	var grid [][]string
	for _, row := range sheets[0].GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// decodeCSV reads a CSV statement into the same grid shape. Ragged
// rows are allowed; banks do not pad their exports.
func decodeCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV data: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return grid, nil
}

// NumericCell reports whether a raw cell value is a plain number, the
// shape a spreadsheet serial date takes after decoding.
func NumericCell(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
