package report

import (
	"sort"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// Aggregate groups rows by the identifier columns and sums each
// measure. Unparseable cells count as 0 so a bad row is absorbed, not
// dropped: the sum of a measure over all groups always equals its sum
// over the input rows. Groups come back sorted by key so repeated runs
// over the same input produce identical output.
func Aggregate(rows []model.Record, spec *model.AggregateSpec) []model.Record {
	groups := make(map[string]model.Record)
	for _, row := range rows {
		key := buildKey(row, spec.GroupBy)
		g, ok := groups[key]
		if !ok {
			g = make(model.Record, len(spec.GroupBy)+len(spec.Carry)+len(spec.Sums))
			for _, col := range spec.GroupBy {
				g[col] = row[col]
			}
			for _, col := range spec.Carry {
				g[col] = row[col]
			}
			for _, col := range spec.Sums {
				g[col] = 0.0
			}
			groups[key] = g
		}
		for _, col := range spec.Sums {
			g[col] = g[col].(float64) + utils.Numeric(row[col])
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]model.Record, 0, len(groups))
	for _, key := range keys {
		out = append(out, groups[key])
	}
	return out
}
