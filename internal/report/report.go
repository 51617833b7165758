package report

import (
	"fmt"
	"time"

	"go-warehouse-reports/internal/model"
)

// ------------------- Report Runner -------------------

// Run executes one report variant over freshly loaded datasets. The
// whole pipeline is synchronous and run-to-completion: normalize,
// filter, reconcile, aggregate, post-normalize, derive, date window,
// project, partition. Structural problems abort before any table is
// produced; row-level data-quality problems are absorbed with safe
// defaults. Re-running with the same inputs and clock reproduces the
// same tables.
func Run(spec *model.ReportSpec, primary, secondary *model.Dataset, now time.Time) (*model.Result, error) {
	fmt.Printf("🚀 Starting report: %s\n", spec.Name)

	if primary == nil {
		return nil, fmt.Errorf("report %s: primary input %s is required", spec.Name, spec.Primary.Name)
	}
	if err := primary.RequireColumns(spec.Primary.Required...); err != nil {
		return nil, err
	}
	if spec.Secondary != nil {
		if secondary == nil {
			return nil, fmt.Errorf("report %s: secondary input %s is required", spec.Name, spec.Secondary.Name)
		}
		if err := secondary.RequireColumns(spec.Secondary.Required...); err != nil {
			return nil, err
		}
	}

	ApplyNormalize(primary.Rows, spec.Normalize)

	rows := ApplyFilters(primary.Rows, spec.Filters)
	fmt.Printf("🔍 Filtered %s: %d of %d rows survive\n", spec.Primary.Name, len(rows), len(primary.Rows))

	if spec.Reconcile != nil && !spec.Reconcile.AfterAggregate {
		rows = Reconcile(rows, secondary, spec.Reconcile)
	}

	if spec.Aggregate != nil {
		before := len(rows)
		rows = Aggregate(rows, spec.Aggregate)
		fmt.Printf("📊 Aggregated %d rows into %d groups\n", before, len(rows))
	}

	if spec.Reconcile != nil && spec.Reconcile.AfterAggregate {
		rows = Reconcile(rows, secondary, spec.Reconcile)
	}

	ApplyNormalize(rows, spec.PostNormalize)
	ApplyDerives(rows, spec.Derives)

	tables := Assemble(rows, spec, now)
	for _, t := range tables {
		fmt.Printf("✅ Output %s: %d rows\n", t.Name, len(t.Rows))
	}

	return &model.Result{Report: spec.Name, Tables: tables}, nil
}
