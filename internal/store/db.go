package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-warehouse-reports/internal/model"
)

var db *sql.DB

// InitDB opens the run-history database and creates its tables. The
// history is observability only: the pipeline itself never reads it.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		report TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	outputTable := `
	CREATE TABLE IF NOT EXISTS run_outputs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		name TEXT,
		path TEXT,
		record_count INTEGER,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(runTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}
	if _, err := db.Exec(outputTable); err != nil {
		return err
	}

	return nil
}

// SaveRun stores a new report run
func SaveRun(runID, report string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, report, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, report, "pending", now, now)
	return err
}

// UpdateRunStatus advances a run's lifecycle status
func UpdateRunStatus(runID, status string) error {
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), runID)
	return err
}

// SaveRunError records an error for a run
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// SaveRunOutput records one exported table for a run
func SaveRunOutput(runID string, out model.OutputFile) error {
	_, err := db.Exec(`INSERT INTO run_outputs (run_id, name, path, record_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, out.Name, out.Path, out.RecordCount, out.ExportedAt.UTC())
	return err
}

// ListRuns returns all runs with basic info
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, report, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, report, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &report, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"report":    report,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches one run's report, status and timestamps
func GetRun(runID string) (map[string]interface{}, error) {
	var report, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT report, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&report, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"report":    report,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// GetRunErrors returns the errors recorded for a run
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var message string
		var createdAt time.Time
		if err := rows.Scan(&message, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"message":   message,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}

// GetRunOutputs returns the exported tables recorded for a run
func GetRunOutputs(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT name, path, record_count, created_at FROM run_outputs WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outputs []map[string]interface{}
	for rows.Next() {
		var name, path string
		var recordCount int
		var createdAt time.Time
		if err := rows.Scan(&name, &path, &recordCount, &createdAt); err != nil {
			return nil, err
		}
		outputs = append(outputs, map[string]interface{}{
			"name":        name,
			"path":        path,
			"recordCount": recordCount,
			"createdAt":   createdAt,
		})
	}
	return outputs, rows.Err()
}

// CloseDB closes the run-history database.
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}
