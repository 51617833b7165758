package report

import (
	"testing"

	"go-warehouse-reports/internal/model"
)

func returnsDataset(rows ...model.Record) *model.Dataset {
	return &model.Dataset{
		Name:    "Sales_Returns",
		Columns: []string{"Invoice / Challan Number", "SKU Code", "Quantity", "Total Credit Note Amount"},
		Rows:    rows,
	}
}

func orderReconcileSpec() *model.ReconcileSpec {
	return &model.ReconcileSpec{
		PrimaryKey:   []string{"Invoice Number", "SKU Code"},
		SecondaryKey: []string{"Invoice / Challan Number", "SKU Code"},
		Measures: []model.MeasureMap{
			{From: "Quantity", To: "Return Qty"},
			{From: "Total Credit Note Amount", To: "Return Value"},
		},
	}
}

func TestReconcileNetsInvoiceAgainstReturns(t *testing.T) {
	primary := []model.Record{
		{"Invoice Number": "INV001", "SKU Code": "SKU1", "Invoice Qty": 10, "Invoice Amount": 500},
	}
	secondary := returnsDataset(
		model.Record{"Invoice / Challan Number": "INV001", "SKU Code": "SKU1", "Quantity": 2, "Total Credit Note Amount": 100},
		model.Record{"Invoice / Challan Number": "INV001", "SKU Code": "SKU1", "Quantity": 1, "Total Credit Note Amount": 50},
	)

	out := Reconcile(primary, secondary, orderReconcileSpec())
	if len(out) != 1 {
		t.Fatalf("duplicate secondary keys fanned out the primary row: %d rows", len(out))
	}
	if out[0]["Return Qty"] != 3.0 {
		t.Errorf("Return Qty = %v, want 3", out[0]["Return Qty"])
	}
	if out[0]["Return Value"] != 150.0 {
		t.Errorf("Return Value = %v, want 150", out[0]["Return Value"])
	}

	ApplyDerives(out, []model.Derive{
		{Kind: model.DeriveDiff, Out: "Sales Qty", A: "Invoice Qty", B: "Return Qty"},
		{Kind: model.DeriveDiff, Out: "Sales Value", A: "Invoice Amount", B: "Return Value"},
	})
	if out[0]["Sales Qty"] != 7.0 {
		t.Errorf("Sales Qty = %v, want 7", out[0]["Sales Qty"])
	}
	if out[0]["Sales Value"] != 350.0 {
		t.Errorf("Sales Value = %v, want 350", out[0]["Sales Value"])
	}
}

func TestReconcileLeftJoinCompleteness(t *testing.T) {
	primary := []model.Record{
		{"Invoice Number": "INV001", "SKU Code": "SKU1"},
		{"Invoice Number": "INV002", "SKU Code": "SKU2"},
		{"Invoice Number": "INV003", "SKU Code": "SKU3"},
	}
	secondary := returnsDataset(
		model.Record{"Invoice / Challan Number": "INV002", "SKU Code": "SKU2", "Quantity": 4, "Total Credit Note Amount": 80},
	)

	out := Reconcile(primary, secondary, orderReconcileSpec())
	if len(out) != 3 {
		t.Fatalf("left join lost primary rows: got %d, want 3", len(out))
	}
	// Unmatched rows get measure 0, never nil.
	if out[0]["Return Qty"] != 0.0 || out[2]["Return Qty"] != 0.0 {
		t.Errorf("unmatched rows did not get 0: %v / %v", out[0]["Return Qty"], out[2]["Return Qty"])
	}
	if out[1]["Return Qty"] != 4.0 {
		t.Errorf("matched row Return Qty = %v, want 4", out[1]["Return Qty"])
	}
}

func TestReconcileSecondarySideCleanup(t *testing.T) {
	// Secondary SKU codes carry "loose" markers and separators; the
	// join must still find them once both sides are normalized.
	primary := []model.Record{
		{"Invoice Number": "INV009", "SKU Code": "AB123"},
	}
	secondary := returnsDataset(
		model.Record{"Invoice / Challan Number": "INV009", "SKU Code": "AB-Loose_123", "Quantity": 5, "Total Credit Note Amount": 250},
	)

	spec := orderReconcileSpec()
	spec.Normalize = []model.NormalizeRule{{Column: "SKU Code", SKUCode: true}}

	out := Reconcile(primary, secondary, spec)
	if out[0]["Return Qty"] != 5.0 {
		t.Errorf("Return Qty = %v, want 5", out[0]["Return Qty"])
	}
}

func TestReconcileNumericKeySegments(t *testing.T) {
	// Numeric invoice cells must stringify identically on both sides.
	primary := []model.Record{
		{"Invoice Number": 1001, "SKU Code": "SKU1"},
	}
	secondary := returnsDataset(
		model.Record{"Invoice / Challan Number": 1001, "SKU Code": "SKU1", "Quantity": 2, "Total Credit Note Amount": 20},
	)

	out := Reconcile(primary, secondary, orderReconcileSpec())
	if out[0]["Return Qty"] != 2.0 {
		t.Errorf("Return Qty = %v, want 2", out[0]["Return Qty"])
	}
}

func TestReconcileUnparseableMeasureCountsAsZero(t *testing.T) {
	primary := []model.Record{
		{"Invoice Number": "INV001", "SKU Code": "SKU1"},
	}
	secondary := returnsDataset(
		model.Record{"Invoice / Challan Number": "INV001", "SKU Code": "SKU1", "Quantity": "n/a", "Total Credit Note Amount": 30},
	)

	out := Reconcile(primary, secondary, orderReconcileSpec())
	if out[0]["Return Qty"] != 0.0 {
		t.Errorf("unparseable quantity should coerce to 0, got %v", out[0]["Return Qty"])
	}
	if out[0]["Return Value"] != 30.0 {
		t.Errorf("Return Value = %v, want 30", out[0]["Return Value"])
	}
}
