package report

import (
	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// ApplyDerives runs the valuation steps over every row, in declaration
// order. Ratio steps run on the pre-clamp totals, so a zero-quantity
// group yields a NaN unit price that propagates into every value
// derived from it instead of being masked as 0.
func ApplyDerives(rows []model.Record, derives []model.Derive) {
	for _, row := range rows {
		for _, d := range derives {
			switch d.Kind {
			case model.DeriveDiff:
				row[d.Out] = utils.Numeric(row[d.A]) - utils.Numeric(row[d.B])
			case model.DeriveClampDiff:
				v := utils.Numeric(row[d.A]) - utils.Numeric(row[d.B])
				if v < 0 {
					v = 0
				}
				row[d.Out] = v
			case model.DeriveRatio:
				// 0/0 is IEEE NaN, preserved as a data-quality marker.
				row[d.Out] = utils.Numeric(row[d.A]) / utils.Numeric(row[d.B])
			case model.DeriveProduct:
				row[d.Out] = utils.Numeric(row[d.A]) * utils.Numeric(row[d.B])
			case model.DeriveConcat:
				row[d.Out] = utils.FormatValue(row[d.A]) + utils.FormatValue(row[d.B])
			}
		}
	}
}
