package api

import (
	"go-warehouse-reports/internal/api/handler"
	"go-warehouse-reports/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/reports", handler.CreateReport)
	r.GET("/api/v1/reports", handler.ListReports)
	r.GET("/api/v1/variants", handler.ListVariants)
	r.GET("/api/v1/reports/*/errors", handler.GetReportErrors)
	r.GET("/api/v1/reports/*/outputs", handler.GetReportOutputs)
	r.GET("/api/v1/download/*", handler.DownloadOutput)
	// The generic run route loses to the more specific ones above
	r.GET("/api/v1/reports/*", handler.GetReport)
}
