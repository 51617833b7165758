package report

import (
	"fmt"
	"sort"

	"go-warehouse-reports/internal/model"
)

// Shared constant tables, declared once and referenced by every variant
// configuration that needs them.
var (
	// ExcludedCategories lists SKU categories that never count as stock.
	// Membership is a case-sensitive exact match.
	ExcludedCategories = []string{
		"Accessories",
		"Apparel",
		"Asset",
		"Capex",
		"Clothing And Accessories",
		"Consumables",
		"Footwears",
		"Rajeev Colony_CxEC Lite",
	}

	// ZoneExclusionKeywords drop stock parked in zones that are not
	// sellable. Matched case-insensitively as substrings.
	ZoneExclusionKeywords = []string{"damaged", "expiry", "qc_zone", "short"}

	// WarehouseScopeTokens scope a report to the business unit's
	// fulfilment warehouses.
	WarehouseScopeTokens = []string{"hm1", "ls1"}

	// SKUPrefixExclusions drop non-stock SKU families by normalized
	// identifier prefix.
	SKUPrefixExclusions = []string{"FR", "CAP"}

	// HRClosingStockWarehouses is the explicit membership list for the
	// HR closing-stock partition.
	HRClosingStockWarehouses = []string{"HR007_RJV_LS1", "HR009_PLA_LS1"}
)

const storageZone18 = "STORAGEZONE18"

// zoneStockSpec builds one zone-restricted stock valuation variant with
// open-order netting. The LKO and FBD reports differ only in their
// input pair and output name.
func zoneStockSpec(name, title, stockInput, orderInput, output string) model.ReportSpec {
	return model.ReportSpec{
		Name:  name,
		Title: title,
		Primary: model.InputSpec{
			Name:     stockInput,
			Required: []string{"SKU Code", "SKU Category", "Zone", "Quantity", "Stock Value"},
		},
		Secondary: &model.InputSpec{
			Name:     orderInput,
			Required: []string{"Customer Name", "SKU Code", "SKU Category", "Open Quantity"},
		},
		Normalize: []model.NormalizeRule{
			{Column: "SKU Code", SKUCode: true},
		},
		Filters: []model.Filter{
			{Kind: model.FilterEquals, Column: "Zone", Tokens: []string{storageZone18}, Fold: true},
			{Kind: model.FilterNotEquals, Column: "SKU Category", Tokens: ExcludedCategories},
		},
		Aggregate: &model.AggregateSpec{
			GroupBy: []string{"SKU Code"},
			Sums:    []string{"Quantity", "Stock Value"},
		},
		Reconcile: &model.ReconcileSpec{
			AfterAggregate: true,
			PrimaryKey:     []string{"SKU Code"},
			SecondaryKey:   []string{"SKU Code"},
			Normalize: []model.NormalizeRule{
				{Column: "SKU Code", SKUCode: true},
			},
			Filters: []model.Filter{
				{Kind: model.FilterContains, Column: "Customer Name", Tokens: WarehouseScopeTokens, Fold: true},
				{Kind: model.FilterNotEquals, Column: "SKU Category", Tokens: ExcludedCategories},
			},
			Measures: []model.MeasureMap{
				{From: "Open Quantity", To: "Open Quantity"},
			},
		},
		Derives: []model.Derive{
			{Kind: model.DeriveRatio, Out: "BP", A: "Stock Value", B: "Quantity"},
			{Kind: model.DeriveClampDiff, Out: "Final Quantity", A: "Quantity", B: "Open Quantity"},
			{Kind: model.DeriveProduct, Out: "Final Value", A: "Final Quantity", B: "BP"},
		},
		Columns: []string{
			"SKU Code", "Quantity", "Stock Value", "BP",
			"Open Quantity", "Final Quantity", "Final Value",
		},
		Partitions: []model.Partition{
			{Name: output},
		},
	}
}

// variants holds every report variant as a configuration value over the
// shared pipeline. No variant gets its own code fork.
var variants = map[string]model.ReportSpec{
	"order-summary": {
		Name:  "order-summary",
		Title: "Order Summary Cleaner",
		Primary: model.InputSpec{
			Name: "Order_Summary",
			Required: []string{
				"WareHouse", "Order Reference", "SKU Code", "SKU Description",
				"Order Status", "Invoice Number", "Invoice Amount", "Invoice Qty",
				"Order Date",
			},
		},
		Secondary: &model.InputSpec{
			Name: "Sales_Returns",
			Required: []string{
				"Invoice / Challan Number", "SKU Code", "Quantity",
				"Total Credit Note Amount",
			},
		},
		Normalize: []model.NormalizeRule{
			{Column: "WareHouse", Trim: true, Casing: model.CaseLower},
			{Column: "SKU Code", SKUCode: true},
		},
		Filters: []model.Filter{
			{Kind: model.FilterContains, Column: "WareHouse", Tokens: WarehouseScopeTokens, Fold: true},
			{Kind: model.FilterNotContains, Column: "Order Reference", Tokens: []string{"st"}, Fold: true},
			{Kind: model.FilterNotEquals, Column: "Order Status", Tokens: []string{"cancelled"}, Fold: true},
			{Kind: model.FilterPrefixExclude, Column: "SKU Code", Tokens: SKUPrefixExclusions},
		},
		Reconcile: &model.ReconcileSpec{
			PrimaryKey:   []string{"Invoice Number", "SKU Code"},
			SecondaryKey: []string{"Invoice / Challan Number", "SKU Code"},
			Normalize: []model.NormalizeRule{
				{Column: "SKU Code", SKUCode: true},
			},
			Measures: []model.MeasureMap{
				{From: "Quantity", To: "Return Qty"},
				{From: "Total Credit Note Amount", To: "Return Value"},
			},
		},
		PostNormalize: []model.NormalizeRule{
			{Column: "WareHouse", Casing: model.CaseUpper},
		},
		Derives: []model.Derive{
			{Kind: model.DeriveDiff, Out: "Sales Qty", A: "Invoice Qty", B: "Return Qty"},
			{Kind: model.DeriveDiff, Out: "Sales Value", A: "Invoice Amount", B: "Return Value"},
			{Kind: model.DeriveConcat, Out: "Merge", A: "WareHouse", B: "SKU Code"},
		},
		DateWindow: &model.DateWindow{Column: "Order Date", MonthToDate: true},
		Columns:    []string{"Merge", "SKU Code", "SKU Description", "Sales Qty", "Sales Value"},
		Partitions: []model.Partition{
			{Name: "MTD_UP_Order_Summary", Column: "WareHouse", Prefix: "UP"},
			{Name: "MTD_HR_Order_Summary", Column: "WareHouse", Prefix: "HR"},
		},
	},

	"closing-stock": {
		Name:  "closing-stock",
		Title: "Closing Stock Report",
		Primary: model.InputSpec{
			Name: "Closing_Stock",
			Required: []string{
				"Warehouse", "SKU Code", "SKU Category", "zone",
				"Stock Quantity", "Stock WAC",
			},
		},
		Normalize: []model.NormalizeRule{
			{Column: "Warehouse", Trim: true, Casing: model.CaseUpper},
			{Column: "SKU Code", SKUCode: true},
		},
		Filters: []model.Filter{
			{Kind: model.FilterContains, Column: "Warehouse", Tokens: WarehouseScopeTokens, Fold: true},
			{Kind: model.FilterNotEquals, Column: "SKU Category", Tokens: ExcludedCategories},
			{Kind: model.FilterNotContains, Column: "zone", Tokens: ZoneExclusionKeywords, Fold: true},
		},
		Derives: []model.Derive{
			// Physical on-hand quantity is non-negative by assumption,
			// so closing stock value is never clamped.
			{Kind: model.DeriveProduct, Out: "Final Value", A: "Stock Quantity", B: "Stock WAC"},
		},
		Columns: []string{"SKU Code", "Stock Quantity", "Stock WAC", "Final Value", "Warehouse"},
		Partitions: []model.Partition{
			{Name: "UP_Closing_Stock_Report", Column: "Warehouse", Prefix: "UP"},
			{Name: "HR_Closing_Stock_Report", Column: "Warehouse", Members: HRClosingStockWarehouses},
		},
	},

	"lko-z18": zoneStockSpec(
		"lko-z18", "LKO Z18 Report",
		"NDR_Stock_Detail", "NDR_View_Order", "cleaned_ndr_stock",
	),

	"fbd": zoneStockSpec(
		"fbd", "FBD Stock Report",
		"FBD_Stock_Detail", "FBD_View_Order", "cleaned_fbd_stock",
	),

	"rbl": {
		Name:  "rbl",
		Title: "RBL Stock Report",
		Primary: model.InputSpec{
			Name:     "RBL_Stock_Detail",
			Required: []string{"SKU Code", "SKU Category", "Zone", "Quantity", "Stock Value"},
		},
		Normalize: []model.NormalizeRule{
			{Column: "SKU Code", SKUCode: true},
		},
		Filters: []model.Filter{
			{Kind: model.FilterEquals, Column: "Zone", Tokens: []string{storageZone18}, Fold: true},
			{Kind: model.FilterNotEquals, Column: "SKU Category", Tokens: ExcludedCategories},
		},
		Aggregate: &model.AggregateSpec{
			GroupBy: []string{"SKU Code"},
			Sums:    []string{"Quantity", "Stock Value"},
		},
		Columns: []string{"SKU Code", "Quantity", "Stock Value"},
		Partitions: []model.Partition{
			{Name: "cleaned_rbl_stock"},
		},
	},

	"temp-stock": {
		Name:  "temp-stock",
		Title: "TEMP Stock Summary",
		Primary: model.InputSpec{
			Name: "TEMP_Stock_Summary",
			Required: []string{
				"SKU Code", "SKU Category", "Available Qty",
				"Open Order Qty", "Stock WAC",
			},
		},
		Normalize: []model.NormalizeRule{
			{Column: "SKU Code", SKUCode: true},
		},
		Filters: []model.Filter{
			{Kind: model.FilterNotEquals, Column: "SKU Category", Tokens: ExcludedCategories},
		},
		Derives: []model.Derive{
			{Kind: model.DeriveClampDiff, Out: "Final Quantity", A: "Available Qty", B: "Open Order Qty"},
			{Kind: model.DeriveProduct, Out: "Final Value", A: "Final Quantity", B: "Stock WAC"},
		},
		Columns: []string{"SKU Code", "Final Quantity", "Final Value"},
		Partitions: []model.Partition{
			{Name: "cleaned_temp_stock"},
		},
	},
}

// Lookup resolves a report variant by name.
func Lookup(name string) (*model.ReportSpec, error) {
	spec, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown report variant: %s", name)
	}
	return &spec, nil
}

// VariantNames lists every known report variant, sorted.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
