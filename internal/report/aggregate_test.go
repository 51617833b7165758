package report

import (
	"math"
	"testing"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

func TestAggregateSumsByIdentifier(t *testing.T) {
	rows := []model.Record{
		{"SKU Code": "SKU1", "Quantity": 5, "Stock Value": 100.0},
		{"SKU Code": "SKU2", "Quantity": 1, "Stock Value": 10.0},
		{"SKU Code": "SKU1", "Quantity": 3, "Stock Value": 60.5},
	}
	out := Aggregate(rows, &model.AggregateSpec{
		GroupBy: []string{"SKU Code"},
		Sums:    []string{"Quantity", "Stock Value"},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out))
	}
	// Groups come back sorted by key.
	if out[0]["SKU Code"] != "SKU1" || out[1]["SKU Code"] != "SKU2" {
		t.Fatalf("unexpected group order: %v", out)
	}
	if out[0]["Quantity"] != 8.0 {
		t.Errorf("SKU1 quantity = %v, want 8", out[0]["Quantity"])
	}
	if out[0]["Stock Value"] != 160.5 {
		t.Errorf("SKU1 value = %v, want 160.5", out[0]["Stock Value"])
	}
}

func TestAggregateConservation(t *testing.T) {
	rows := []model.Record{
		{"SKU Code": "A", "Quantity": 2.5},
		{"SKU Code": "B", "Quantity": 4},
		{"SKU Code": "A", "Quantity": 1},
		{"SKU Code": "C", "Quantity": "junk"}, // coerces to 0, row still grouped
		{"SKU Code": "B", "Quantity": 7.5},
	}

	var inputSum float64
	for _, row := range rows {
		inputSum += utils.Numeric(row["Quantity"])
	}

	out := Aggregate(rows, &model.AggregateSpec{GroupBy: []string{"SKU Code"}, Sums: []string{"Quantity"}})

	var groupSum float64
	for _, g := range out {
		groupSum += g["Quantity"].(float64)
	}
	if math.Abs(groupSum-inputSum) > 1e-9 {
		t.Errorf("aggregation dropped or double-counted: groups %v, input %v", groupSum, inputSum)
	}
	if len(out) != 3 {
		t.Errorf("expected 3 groups including the junk row's, got %d", len(out))
	}
}

func TestAggregateCarryColumns(t *testing.T) {
	rows := []model.Record{
		{"SKU Code": "A", "SKU Description": "Atta 5kg", "Quantity": 1},
		{"SKU Code": "A", "SKU Description": "Atta 5kg", "Quantity": 2},
	}
	out := Aggregate(rows, &model.AggregateSpec{
		GroupBy: []string{"SKU Code"},
		Carry:   []string{"SKU Description"},
		Sums:    []string{"Quantity"},
	})
	if out[0]["SKU Description"] != "Atta 5kg" {
		t.Errorf("carry column lost: %v", out[0]["SKU Description"])
	}
}
