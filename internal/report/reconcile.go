package report

import (
	"strings"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// buildKey synthesizes the join key for a row by concatenating the
// named fields. Keys exist only for the duration of one run.
func buildKey(row model.Record, cols []string) string {
	var b strings.Builder
	for _, c := range cols {
		b.WriteString(utils.FormatValue(row[c]))
	}
	return b.String()
}

// Reconcile left-joins the primary rows against the secondary dataset.
// The secondary side is normalized, filtered and pre-aggregated by key
// (summing each mapped measure), which guarantees a one-row-per-key
// lookup: the join can never duplicate a primary row. Primary rows
// without a matching key receive 0 for every mapped measure, never nil.
func Reconcile(primary []model.Record, secondary *model.Dataset, spec *model.ReconcileSpec) []model.Record {
	totals := make(map[string][]float64)
	if secondary != nil {
		ApplyNormalize(secondary.Rows, spec.Normalize)
		rows := ApplyFilters(secondary.Rows, spec.Filters)
		for _, row := range rows {
			key := buildKey(row, spec.SecondaryKey)
			sums, ok := totals[key]
			if !ok {
				sums = make([]float64, len(spec.Measures))
				totals[key] = sums
			}
			for i, m := range spec.Measures {
				sums[i] += utils.Numeric(row[m.From])
			}
		}
	}

	for _, row := range primary {
		key := buildKey(row, spec.PrimaryKey)
		sums, ok := totals[key]
		for i, m := range spec.Measures {
			if ok {
				row[m.To] = sums[i]
			} else {
				row[m.To] = 0.0
			}
		}
	}
	return primary
}
