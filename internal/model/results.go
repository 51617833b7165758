package model

import "time"

// Table is one named output of a report run: the projected columns and
// the surviving rows of a single partition.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

// Result holds every output table of one report invocation.
type Result struct {
	Report string  `json:"report"`
	Tables []Table `json:"tables"`
}

// OutputFile describes one exported table on disk.
type OutputFile struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	ExportedAt  time.Time `json:"exported_at"`
}
