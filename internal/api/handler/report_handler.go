package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/internal/report"
	"go-warehouse-reports/internal/store"
	"go-warehouse-reports/pkg/utils"
)

const maxUploadBytes = 64 << 20

var outputs *utils.OutputManager

// Init wires the output manager used for exported tables.
func Init(om *utils.OutputManager) {
	outputs = om
}

// CreateReport runs a report variant over uploaded input files
// @Summary Run a report
// @Description Upload input tables, run the selected report variant and export its output tables
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param report formData string true "Report variant name"
// @Param primary formData file true "Primary input table (CSV or spreadsheet)"
// @Param secondary formData file false "Secondary input table, when the variant reconciles two datasets"
// @Success 200 {object} map[string]interface{} "Run completed"
// @Failure 400 {object} map[string]interface{} "Invalid variant or input"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports [post]
func CreateReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	spec, err := report.Lookup(r.FormValue("report"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	primary, err := loadUpload(r, "primary")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if primary == nil {
		http.Error(w, "Primary input file is required", http.StatusBadRequest)
		return
	}

	var secondary *model.Dataset
	if spec.Secondary != nil {
		secondary, err = loadUpload(r, "secondary")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if secondary == nil {
			http.Error(w, "Secondary input file is required for this report", http.StatusBadRequest)
			return
		}
	}

	runID := uuid.New().String()
	if err := store.SaveRun(runID, spec.Name); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}
	store.UpdateRunStatus(runID, "running")

	result, err := report.Run(spec, primary, secondary, time.Now())
	if err != nil {
		store.UpdateRunStatus(runID, "failed")
		store.SaveRunError(runID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	runDir, err := outputs.CreateRunOutputDir(runID)
	if err != nil {
		store.UpdateRunStatus(runID, "failed")
		store.SaveRunError(runID, err)
		http.Error(w, "Failed to create output directory", http.StatusInternalServerError)
		return
	}

	files, err := report.ExportTables(runDir, result)
	if err != nil {
		store.UpdateRunStatus(runID, "failed")
		store.SaveRunError(runID, err)
		http.Error(w, "Failed to export output tables", http.StatusInternalServerError)
		return
	}

	tables := make([]map[string]interface{}, 0, len(files))
	for _, f := range files {
		store.SaveRunOutput(runID, f)
		tables = append(tables, map[string]interface{}{
			"name":        f.Name,
			"recordCount": f.RecordCount,
			"downloadUrl": outputs.GetDownloadURL(runID, f.Name+".csv"),
		})
	}
	store.UpdateRunStatus(runID, "completed")

	resp := map[string]interface{}{
		"runID":     runID,
		"report":    spec.Name,
		"status":    "completed",
		"outputs":   tables,
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// loadUpload reads one multipart file field into a dataset. A missing
// field returns nil without error; a structural problem aborts.
func loadUpload(r *http.Request, field string) (*model.Dataset, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	return report.LoadReader(file, header.Filename)
}

// ListReports retrieves all report runs
// @Summary List report runs
// @Description Get every recorded report run with its current status
// @Tags reports
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports [get]
func ListReports(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// ListVariants lists the available report variants
// @Summary List report variants
// @Description Names of every report variant the pipeline can run
// @Tags reports
// @Produce json
// @Success 200 {array} string "Variant names"
// @Router /variants [get]
func ListVariants(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report.VariantNames())
}

// GetReport retrieves one report run
// @Summary Get report run
// @Description Retrieve the status of one report run
// @Tags reports
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /reports/{id} [get]
func GetReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to fetch run", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetReportErrors retrieves the errors recorded for a run
// @Summary Get run errors
// @Description Errors recorded while executing one report run
// @Tags reports
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {array} map[string]interface{} "Recorded errors"
// @Router /reports/{id}/errors [get]
func GetReportErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	errs, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to fetch run errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(errs)
}

// GetReportOutputs retrieves the exported tables of a run
// @Summary Get run outputs
// @Description Output tables exported by one report run
// @Tags reports
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {array} map[string]interface{} "Exported tables"
// @Router /reports/{id}/outputs [get]
func GetReportOutputs(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/outputs")
	if !ok {
		return
	}

	files, err := store.GetRunOutputs(runID)
	if err != nil {
		http.Error(w, "Failed to fetch run outputs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(files)
}

// DownloadOutput serves one exported table
// @Summary Download output file
// @Description Download one exported output table of a run
// @Tags reports
// @Produce text/csv
// @Param id path string true "Run ID"
// @Param file path string true "Output file name"
// @Success 200 {file} file "CSV content"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{file} [get]
func DownloadOutput(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/download/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Run ID and file name are required", http.StatusBadRequest)
		return
	}

	// filepath.Base guards against path traversal in both segments.
	runID := filepath.Base(parts[0])
	fileName := filepath.Base(parts[1])

	path := filepath.Join(outputs.BaseOutputDir, runID, fileName)
	if _, err := outputs.GetFileSize(path); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	http.ServeFile(w, r, path)
}

// runIDFromPath extracts the run ID segment from the request path,
// trimming the trailing suffix when the route has one.
func runIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	const prefix = "/api/v1/reports/"

	path := r.URL.Path
	if !strings.HasPrefix(path, prefix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := strings.TrimSuffix(path[len(prefix):], suffix)
	runID = strings.Trim(runID, "/")
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
