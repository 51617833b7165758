package model

import "fmt"

// Record is a schema-agnostic row: field name → value (string, number or date).
type Record map[string]interface{}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered sequence of records sharing a column set.
type Dataset struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(col string) bool {
	for _, c := range d.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// RequireColumns verifies every named column is present. A missing column
// is a structural error and aborts the whole invocation.
func (d *Dataset) RequireColumns(cols ...string) error {
	for _, col := range cols {
		if !d.HasColumn(col) {
			return &MissingColumnError{Input: d.Name, Column: col}
		}
	}
	return nil
}

// MissingColumnError reports an input file that lacks a column the
// report variant addresses.
type MissingColumnError struct {
	Input  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("input %s: missing required column %q", e.Input, e.Column)
}
