package main

import (
	"flag"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-warehouse-reports/docs"
	"go-warehouse-reports/internal/api"
	"go-warehouse-reports/internal/api/handler"
	"go-warehouse-reports/internal/config"
	"go-warehouse-reports/internal/store"
	"go-warehouse-reports/pkg/router"
	"go-warehouse-reports/pkg/utils"
)

// @title Warehouse Reports API
// @version 1.0
// @description Runs warehouse report cleaning pipelines over uploaded exports and serves the cleaned output tables.
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	// Init DB
	if err := store.InitDB(cfg.DatabasePath); err != nil {
		panic(err)
	}

	om := utils.NewOutputManager(cfg.OutputDir)
	if err := om.EnsureOutputDirExists(); err != nil {
		panic(err)
	}
	handler.Init(om)

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)
	r.Handle("/swagger/", httpSwagger.WrapHandler)

	// Start server
	r.Start(cfg.Addr)
}
