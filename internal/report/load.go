package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// ErrUnsupportedFormat reports an upload that is neither delimited text
// nor a spreadsheet. The invocation aborts without partial output.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// LoadFile reads one input table from disk, dispatching on extension.
func LoadFile(path string) (*model.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return LoadReader(file, filepath.Base(path))
}

// LoadReader reads one input table from a stream; the filename decides
// the format.
func LoadReader(r io.Reader, filename string) (*model.Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return loadCSV(r, filename)
	case ".xlsx", ".xls":
		return loadWorkbook(r, filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func loadCSV(r io.Reader, name string) (*model.Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input %s is empty", name)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	ds := &model.Dataset{Name: name, Columns: cleanHeaders(headers)}
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		row := make(model.Record, len(ds.Columns))
		for i, col := range ds.Columns {
			if i < len(record) {
				row[col] = utils.ParseValue(record[i])
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	fmt.Printf("📄 Loaded %d records from %s\n", len(ds.Rows), name)
	return ds, nil
}

func loadWorkbook(r io.Reader, name string) (*model.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input %s is empty", name)
	}

	ds := &model.Dataset{Name: name, Columns: cleanHeaders(rows[0])}
	for _, cells := range rows[1:] {
		row := make(model.Record, len(ds.Columns))
		for i, col := range ds.Columns {
			if i < len(cells) {
				row[col] = utils.ParseValue(cells[i])
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	fmt.Printf("📄 Loaded %d records from %s (sheet %s)\n", len(ds.Rows), name, sheet)
	return ds, nil
}

// cleanHeaders trims whitespace and strips stray quotes from header
// cells.
func cleanHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		clean := strings.TrimSpace(h)
		clean = strings.ReplaceAll(clean, `"`, "")
		out[i] = clean
	}
	return out
}
