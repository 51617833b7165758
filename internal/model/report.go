package model

// Filter kinds recognized by the record filter. Predicates compose by
// logical AND; order never changes the surviving row set.
const (
	FilterContains      = "contains"      // keep rows whose column contains any token
	FilterNotContains   = "notContains"   // drop rows whose column contains any token
	FilterEquals        = "equals"        // keep rows whose column equals one of the values
	FilterNotEquals     = "notEquals"     // drop rows whose column equals one of the values
	FilterPrefixExclude = "prefixExclude" // drop rows whose column starts with any prefix
)

// Normalize casing modes.
const (
	CaseLower = "lower"
	CaseUpper = "upper"
)

// Derive kinds recognized by the valuation calculator.
const (
	DeriveDiff      = "diff"      // out = a - b (may go negative, never clamped)
	DeriveClampDiff = "clampDiff" // out = max(0, a - b)
	DeriveRatio     = "ratio"     // out = a / b (0/0 yields NaN, preserved)
	DeriveProduct   = "product"   // out = a * b
	DeriveConcat    = "concat"    // out = string(a) + string(b)
)

// InputSpec names one uploaded table and the columns the variant
// addresses on it. A missing column is fatal for the invocation.
type InputSpec struct {
	Name     string   `json:"name"`
	Required []string `json:"required"`
}

// NormalizeRule canonicalizes a single column in place.
type NormalizeRule struct {
	Column  string `json:"column"`
	Trim    bool   `json:"trim,omitempty"`
	Casing  string `json:"casing,omitempty"`  // "", "lower" or "upper"
	SKUCode bool   `json:"skuCode,omitempty"` // full SKU canonicalization
}

// Filter is one predicate over a single column.
type Filter struct {
	Kind   string   `json:"kind"`
	Column string   `json:"column"`
	Tokens []string `json:"tokens"`
	Fold   bool     `json:"fold,omitempty"` // case-insensitive comparison
	// MissingExcluded drops rows whose column value is missing or blank.
	// Default false: a missing value never matches, so the row survives
	// exclusion predicates and fails inclusion predicates.
	MissingExcluded bool `json:"missingExcluded,omitempty"`
}

// MeasureMap carries one secondary-side measure onto the primary side.
type MeasureMap struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ReconcileSpec links the primary dataset to a secondary dataset via a
// synthesized key. The secondary side is pre-aggregated by key so the
// left join can never fan out primary rows.
type ReconcileSpec struct {
	PrimaryKey   []string        `json:"primaryKey"`
	SecondaryKey []string        `json:"secondaryKey"`
	Normalize    []NormalizeRule `json:"normalize,omitempty"` // applied to the secondary dataset
	Filters      []Filter        `json:"filters,omitempty"`   // applied to the secondary dataset
	Measures     []MeasureMap    `json:"measures"`
	// AfterAggregate joins against the grouped primary rows instead of
	// the raw filtered rows (open-order netting per identifier).
	AfterAggregate bool `json:"afterAggregate,omitempty"`
}

// AggregateSpec groups rows by identifier columns and sums measures.
type AggregateSpec struct {
	GroupBy []string `json:"groupBy"`
	Sums    []string `json:"sums"`
	// Carry lists columns copied from the first row of each group,
	// for descriptive fields that are constant per identifier.
	Carry []string `json:"carry,omitempty"`
}

// Derive is one valuation step; steps run in declaration order.
type Derive struct {
	Kind string `json:"kind"`
	Out  string `json:"out"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// DateWindow restricts rows to a wall-clock anchored range.
type DateWindow struct {
	Column      string `json:"column"`
	MonthToDate bool   `json:"monthToDate"`
}

// Partition names one output table. Prefix and Members are mutually
// exclusive rules; with neither set the partition takes every row.
type Partition struct {
	Name    string   `json:"name"`
	Column  string   `json:"column,omitempty"`
	Prefix  string   `json:"prefix,omitempty"`
	Members []string `json:"members,omitempty"`
}

// ReportSpec is one report variant expressed as configuration over the
// shared pipeline. Stages always run in the same order: normalize,
// filter, reconcile, aggregate, post-normalize, derive, date window,
// project, partition.
type ReportSpec struct {
	Name          string          `json:"name"`
	Title         string          `json:"title"`
	Primary       InputSpec       `json:"primary"`
	Secondary     *InputSpec      `json:"secondary,omitempty"`
	Normalize     []NormalizeRule `json:"normalize,omitempty"`
	Filters       []Filter        `json:"filters,omitempty"`
	Reconcile     *ReconcileSpec  `json:"reconcile,omitempty"`
	Aggregate     *AggregateSpec  `json:"aggregate,omitempty"`
	PostNormalize []NormalizeRule `json:"postNormalize,omitempty"`
	Derives       []Derive        `json:"derives,omitempty"`
	DateWindow    *DateWindow     `json:"dateWindow,omitempty"`
	Columns       []string        `json:"columns"`
	Partitions    []Partition     `json:"partitions"`
}
