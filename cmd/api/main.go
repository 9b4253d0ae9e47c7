package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"pennywise/internal/config"
	"pennywise/internal/dashboard"
	"pennywise/internal/export"
	pwHttp "pennywise/internal/http"
	dashboardHandler "pennywise/internal/http/dashboard"
	exportHandler "pennywise/internal/http/export"
	importHandler "pennywise/internal/http/importcsv"
	limitsHandler "pennywise/internal/http/limits"
	txHandler "pennywise/internal/http/transaction"
	"pennywise/internal/importer"
	"pennywise/internal/limit"
	limitStore "pennywise/internal/limit/store"
	"pennywise/internal/transaction"
	txStore "pennywise/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(), nil)
		limitService       = limit.NewService(limitStore.New())
		dashboardService   = dashboard.NewService(transactionService, limitService, nil)
		importService      = importer.NewService()
		exportService      = export.NewService(dashboardService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService, limitService, dashboardService)
		dashboardH   = dashboardHandler.NewHandler(dashboardService, cfg.Dashboard.RecentLimit)
		limitsH      = limitsHandler.NewHandler(limitService)
		importH      = importHandler.NewHandler(importService, transactionService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := pwHttp.New(transactionH, dashboardH, limitsH, importH, exportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
