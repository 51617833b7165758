package report

import (
	"testing"
	"time"

	"go-warehouse-reports/internal/model"
)

func TestAssemblePartitionsAreDisjoint(t *testing.T) {
	rows := []model.Record{
		{"Warehouse": "UP001_HM1", "SKU Code": "A"},
		{"Warehouse": "UP044_LS1", "SKU Code": "B"},
		{"Warehouse": "HR007_RJV_LS1", "SKU Code": "C"},
		{"Warehouse": "MP001_HM1", "SKU Code": "D"},
	}
	spec := &model.ReportSpec{
		Columns: []string{"SKU Code", "Warehouse"},
		Partitions: []model.Partition{
			{Name: "UP", Column: "Warehouse", Prefix: "UP"},
			{Name: "HR", Column: "Warehouse", Prefix: "HR"},
		},
	}
	tables := Assemble(rows, spec, time.Now())
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	seen := make(map[string]string)
	for _, table := range tables {
		for _, row := range table.Rows {
			sku := row["SKU Code"].(string)
			if prev, dup := seen[sku]; dup {
				t.Errorf("row %s appears in both %s and %s", sku, prev, table.Name)
			}
			seen[sku] = table.Name
		}
	}
	if len(tables[0].Rows) != 2 || len(tables[1].Rows) != 1 {
		t.Errorf("unexpected partition sizes: UP=%d HR=%d", len(tables[0].Rows), len(tables[1].Rows))
	}
}

func TestAssembleMembershipPartition(t *testing.T) {
	rows := []model.Record{
		{"Warehouse": "HR007_RJV_LS1"},
		{"Warehouse": "HR009_PLA_LS1"},
		{"Warehouse": "HR999_XXX_LS1"}, // not in the membership list
	}
	spec := &model.ReportSpec{
		Columns: []string{"Warehouse"},
		Partitions: []model.Partition{
			{Name: "HR", Column: "Warehouse", Members: HRClosingStockWarehouses},
		},
	}
	tables := Assemble(rows, spec, time.Now())
	if len(tables[0].Rows) != 2 {
		t.Errorf("expected 2 member rows, got %d", len(tables[0].Rows))
	}
}

func TestAssembleTakeAllPartition(t *testing.T) {
	rows := []model.Record{{"SKU Code": "A"}, {"SKU Code": "B"}}
	spec := &model.ReportSpec{
		Columns:    []string{"SKU Code"},
		Partitions: []model.Partition{{Name: "cleaned_stock"}},
	}
	tables := Assemble(rows, spec, time.Now())
	if len(tables[0].Rows) != 2 {
		t.Errorf("take-all partition dropped rows: %d", len(tables[0].Rows))
	}
}

func TestDateWindowMonthToDate(t *testing.T) {
	now := time.Date(2026, time.September, 15, 13, 45, 0, 0, time.Local)
	rows := []model.Record{
		{"Order Date": "2026-09-01"},
		{"Order Date": "2026-09-01 18:30:00"}, // time of day is normalized away
		{"Order Date": "2026-08-31"},
		{"Order Date": "not a date"}, // unparseable dates fall outside every window
		{},
	}
	out := ApplyDateWindow(rows, &model.DateWindow{Column: "Order Date", MonthToDate: true}, now)
	if len(out) != 2 {
		t.Fatalf("expected 2 rows inside the month-to-date window, got %d", len(out))
	}
}

func TestAssembleProjectsColumns(t *testing.T) {
	rows := []model.Record{
		{"SKU Code": "A", "Quantity": 4.0, "Internal": "x"},
	}
	spec := &model.ReportSpec{
		Columns:    []string{"SKU Code", "Quantity"},
		Partitions: []model.Partition{{Name: "out"}},
	}
	tables := Assemble(rows, spec, time.Now())
	row := tables[0].Rows[0]
	if _, leaked := row["Internal"]; leaked {
		t.Errorf("projection leaked a non-output column")
	}
	if row["SKU Code"] != "A" || row["Quantity"] != 4.0 {
		t.Errorf("projection lost output columns: %v", row)
	}
}
