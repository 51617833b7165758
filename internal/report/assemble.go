package report

import (
	"strings"
	"time"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// ApplyDateWindow keeps rows whose date falls inside the window
// anchored to the invocation wall clock. Dates compare at local
// midnight; an unparseable date never falls inside the window.
func ApplyDateWindow(rows []model.Record, win *model.DateWindow, now time.Time) []model.Record {
	if win == nil {
		return rows
	}
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := rows[:0:0]
	for _, row := range rows {
		d, ok := utils.ParseDate(row[win.Column])
		if ok && !d.Before(start) {
			out = append(out, row)
		}
	}
	return out
}

// Assemble partitions the valuated rows by region rule and projects
// each partition to the variant's output columns. Prefix partitions
// match on the normalized, upper-cased warehouse code; membership
// partitions match codes exactly. A partition with neither rule takes
// every row.
func Assemble(rows []model.Record, spec *model.ReportSpec, now time.Time) []model.Table {
	rows = ApplyDateWindow(rows, spec.DateWindow, now)

	tables := make([]model.Table, 0, len(spec.Partitions))
	for _, p := range spec.Partitions {
		var selected []model.Record
		for _, row := range rows {
			if partitionMatch(row, p) {
				selected = append(selected, row)
			}
		}
		tables = append(tables, model.Table{
			Name:    p.Name,
			Columns: spec.Columns,
			Rows:    project(selected, spec.Columns),
		})
	}
	return tables
}

func partitionMatch(row model.Record, p model.Partition) bool {
	if p.Prefix == "" && len(p.Members) == 0 {
		return true
	}
	code := strings.TrimSpace(utils.FormatValue(row[p.Column]))
	if p.Prefix != "" {
		return strings.HasPrefix(strings.ToUpper(code), strings.ToUpper(p.Prefix))
	}
	for _, member := range p.Members {
		if code == member {
			return true
		}
	}
	return false
}

func project(rows []model.Record, cols []string) []model.Record {
	out := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		projected := make(model.Record, len(cols))
		for _, col := range cols {
			projected[col] = row[col]
		}
		out = append(out, projected)
	}
	return out
}
