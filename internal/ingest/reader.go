package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"clientmap-api/internal/models"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of an uploaded document. Number is the 1-based sheet row.
type Row struct {
	Number int
	Cells  []string
}

// Table is a parsed tabular document: a header row followed by data rows.
type Table struct {
	Header []string
	Rows   []Row
}

// Cell returns the value at column index col, or "" when the row is short.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

type format int

const (
	formatUnknown format = iota
	formatXLSX
	formatCSV
	formatXLS
)

var zipSignature = []byte("PK\x03\x04")

// ReadTable parses an uploaded XLSX or CSV document. Any failure is a *models.ParseError.
func ReadTable(filename string, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &models.ParseError{File: filename, Reason: "cannot read upload", Err: err}
	}
	if len(data) == 0 {
		return nil, &models.ParseError{File: filename, Reason: "empty file"}
	}

	var rows [][]string
	switch detectFormat(filename, data) {
	case formatXLSX:
		rows, err = readXLSX(data)
	case formatCSV:
		rows, err = readCSV(data)
	case formatXLS:
		return nil, &models.ParseError{File: filename, Reason: "legacy .xls workbooks are not supported, save the file as .xlsx"}
	default:
		return nil, &models.ParseError{File: filename, Reason: "unsupported format, expected .xlsx or .csv"}
	}
	if err != nil {
		return nil, &models.ParseError{File: filename, Reason: "invalid tabular data", Err: err}
	}

	return buildTable(filename, rows)
}

func detectFormat(filename string, data []byte) format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return formatXLSX
	case ".csv":
		return formatCSV
	case ".xls":
		return formatXLS
	}
	if bytes.HasPrefix(data, zipSignature) {
		return formatXLSX
	}
	return formatUnknown
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	// Raw values keep the full precision of number-formatted coordinate cells.
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.Comma = sniffDelimiter(data)

	return reader.ReadAll()
}

// sniffDelimiter picks ';' when the header line uses it more than ','.
// Spreadsheet programs in Spanish locales export CSV that way.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func buildTable(filename string, rows [][]string) (*Table, error) {
	headerIdx := -1
	for i, row := range rows {
		if !blank(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, &models.ParseError{File: filename, Reason: "no header row found"}
	}

	table := &Table{Header: rows[headerIdx]}
	for i := headerIdx + 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		table.Rows = append(table.Rows, Row{Number: i + 1, Cells: rows[i]})
	}
	return table, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// String describes the table shape, used in log lines.
func (t *Table) String() string {
	return fmt.Sprintf("%d columns, %d rows", len(t.Header), len(t.Rows))
}
