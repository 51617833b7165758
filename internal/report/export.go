package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// ExportTables writes every output table of a run as a UTF-8 CSV file
// under dir: header row, projected columns only, no index column.
func ExportTables(dir string, result *model.Result) ([]model.OutputFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := make([]model.OutputFile, 0, len(result.Tables))
	for _, table := range result.Tables {
		path := filepath.Join(dir, table.Name+".csv")
		count, err := writeTableCSV(path, table)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, model.OutputFile{
			Name:        table.Name,
			Path:        path,
			RecordCount: count,
			ExportedAt:  time.Now(),
		})
		fmt.Printf("💾 Exported %d records to %s\n", count, path)
	}
	return outputs, nil
}

func writeTableCSV(path string, table model.Table) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	count := 0
	for _, record := range table.Rows {
		row := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			row[i] = utils.FormatValue(record[col])
		}
		if err := writer.Write(row); err != nil {
			return count, fmt.Errorf("failed to write row: %w", err)
		}
		count++
	}
	return count, writer.Error()
}

// ExportWorkbook writes every output table of a run into one xlsx
// workbook, a sheet per table.
func ExportWorkbook(path string, result *model.Result) (*model.OutputFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	total := 0
	for i, table := range result.Tables {
		sheet := sheetName(table.Name)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		for col, header := range table.Columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, header)
		}
		for rowIdx, record := range table.Rows {
			for col, header := range table.Columns {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				f.SetCellValue(sheet, cell, utils.FormatValue(record[header]))
			}
			total++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &model.OutputFile{
		Name:        filepath.Base(path),
		Path:        path,
		RecordCount: total,
		ExportedAt:  time.Now(),
	}, nil
}

// sheetName keeps table names inside Excel's 31-character sheet limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
