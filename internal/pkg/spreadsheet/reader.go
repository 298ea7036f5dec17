package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyInput is returned when the file parses but yields zero data rows.
var ErrEmptyInput = errors.New("spreadsheet: no data rows")

// ParseError wraps any failure to decode the uploaded blob as a tabular
// file. It is fatal to the whole upload attempt.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("spreadsheet: parse failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	ooxmlMagic  = []byte{0x50, 0x4b, 0x03, 0x04}
	legacyMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// Parse reads a spreadsheet-like blob and returns its data rows. The
// container is sniffed from the leading bytes: OOXML workbooks (.xlsx),
// legacy binary workbooks (.xls) and comma-separated text are recognized.
// Only the first sheet is read; the first non-empty row supplies the column
// names for all following rows.
func Parse(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var records [][]string
	switch {
	case bytes.HasPrefix(data, ooxmlMagic):
		records, err = readWorkbook(data)
	case bytes.HasPrefix(data, legacyMagic):
		records, err = readLegacyWorkbook(data)
	default:
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return toRows(records)
}

func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readLegacyWorkbook(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		records = append(records, cells)
	}
	return records, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

// toRows takes raw cell records, promotes the first non-empty record to the
// header and maps the rest onto it.
func toRows(records [][]string) ([]Row, error) {
	var header []string
	start := -1
	for i, rec := range records {
		if !emptyRecord(rec) {
			header = rec
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil, ErrEmptyInput
	}

	rows := make([]Row, 0, len(records)-start)
	for _, rec := range records[start:] {
		if emptyRecord(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" || i >= len(rec) {
				continue
			}
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return rows, nil
}

func emptyRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
