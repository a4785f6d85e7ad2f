package main

import (
	"fmt"
	"os"

	"github.com/hireline/marketplace-api/internal/auth"
	"github.com/hireline/marketplace-api/internal/config"
	"github.com/hireline/marketplace-api/internal/db"
	"github.com/hireline/marketplace-api/internal/excel"
	httphandler "github.com/hireline/marketplace-api/internal/http"
	"github.com/hireline/marketplace-api/internal/http/middleware"
	"github.com/hireline/marketplace-api/internal/logger"
	"github.com/hireline/marketplace-api/internal/pdf"
	"github.com/hireline/marketplace-api/internal/repository"
	"github.com/hireline/marketplace-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	profileRepo := repository.NewProfileRepository(database)
	contractRepo := repository.NewContractRepository(database)
	jobRepo := repository.NewJobRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	reportRepo := repository.NewReportRepository(database)

	contractService := service.NewContractService(contractRepo)
	jobService := service.NewJobService(contractRepo, jobRepo, paymentRepo)
	reportService := service.NewReportService(reportRepo, excel.NewGenerator(), pdf.NewGenerator(), cfg)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, jobService, reportService, log)
	profileMiddleware := middleware.Profile(tokenParser, profileRepo)
	router := httphandler.NewRouter(handler, profileMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting marketplace api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
