package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReaderCSV(t *testing.T) {
	csvData := strings.Join([]string{
		`"SKU Code", Quantity ,Stock Value`,
		`A1,5,120.5`,
		`B2,not-a-number,`,
		`C3,7`,
	}, "\n")

	ds, err := LoadReader(strings.NewReader(csvData), "stock.csv")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"SKU Code", "Quantity", "Stock Value"}
	for i, col := range want {
		if ds.Columns[i] != col {
			t.Errorf("column %d = %q, want %q", i, ds.Columns[i], col)
		}
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(ds.Rows))
	}

	if ds.Rows[0]["Quantity"] != 5 {
		t.Errorf("Quantity sniffed as %T %v, want int 5", ds.Rows[0]["Quantity"], ds.Rows[0]["Quantity"])
	}
	if ds.Rows[0]["Stock Value"] != 120.5 {
		t.Errorf("Stock Value sniffed as %v, want 120.5", ds.Rows[0]["Stock Value"])
	}
	if ds.Rows[1]["Quantity"] != "not-a-number" {
		t.Errorf("junk cell = %v, want the raw string", ds.Rows[1]["Quantity"])
	}

	// The short row leaves its missing trailing cell unset.
	if _, ok := ds.Rows[2]["Stock Value"]; ok {
		t.Error("short row grew a Stock Value cell")
	}
}

func TestLoadReaderUnsupportedFormat(t *testing.T) {
	_, err := LoadReader(strings.NewReader("x"), "stock.pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadReaderEmptyCSV(t *testing.T) {
	if _, err := LoadReader(strings.NewReader(""), "empty.csv"); err == nil {
		t.Fatal("expected an error for an empty input")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.csv")
	data := "SKU Code,Invoice Qty\nA1,3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Name != "orders.csv" {
		t.Errorf("dataset name = %q", ds.Name)
	}
	if len(ds.Rows) != 1 || ds.Rows[0]["Invoice Qty"] != 3 {
		t.Errorf("unexpected rows: %v", ds.Rows)
	}

	if err := ds.RequireColumns("SKU Code", "Invoice Qty"); err != nil {
		t.Errorf("RequireColumns failed on present columns: %v", err)
	}
	if err := ds.RequireColumns("Order Date"); err == nil {
		t.Error("RequireColumns accepted a missing column")
	}
}
