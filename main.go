package main

import (
	"github.com/Aashish23092/e3w-credit-analysis/config"
	"github.com/Aashish23092/e3w-credit-analysis/handler"
	"github.com/Aashish23092/e3w-credit-analysis/repository"
	"github.com/Aashish23092/e3w-credit-analysis/service"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.InitLogging()

	// Load dossier catalog (embedded demo set unless DOSSIERS_FILE is set)
	repo, err := repository.NewDossierRepository(cfg.DossiersFile)
	if err != nil {
		log.Fatalf("Failed to load dossiers: %v", err)
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	analysisService := service.NewAnalysisService(repo, cfg.AnnualInterestRate)
	reportService := service.NewReportService(pdfProcessor, cfg.ReportBrand)

	// Initialize handler layer
	router := handler.NewRouter(
		handler.NewDossierHandler(analysisService),
		handler.NewAnalysisHandler(analysisService),
		handler.NewReportHandler(analysisService, reportService, cfg.MaxUploadSize),
		cfg.MaxUploadSize,
	)

	// Start server
	log.Infof("Starting E3W Credit Analysis Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
