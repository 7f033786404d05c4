package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"fakturo/internal/config"
	"fakturo/internal/handler"
	"fakturo/internal/pdf"
	"fakturo/internal/registry/mf"
	"fakturo/internal/repository/postgres"
	"fakturo/internal/router"
	"fakturo/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Optional .env for local development; env vars win when both are set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)
	ledgerRepo := postgres.NewLedgerRepo(db)

	// Initialize outbound adapters
	registryClient := mf.NewClient(&cfg.Registry)
	renderer := pdf.NewRenderer()

	// Initialize services
	companySvc := service.NewCompanyService(companyRepo)
	clientSvc := service.NewClientService(clientRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	summarySvc := service.NewSummaryService(ledgerRepo, companyRepo)

	// Initialize handlers
	companyH := handler.NewCompanyHandler(companySvc)
	clientH := handler.NewClientHandler(clientSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, companySvc, clientSvc, renderer)
	expenseH := handler.NewExpenseHandler(expenseSvc)
	summaryH := handler.NewSummaryHandler(summarySvc)
	lookupH := handler.NewLookupHandler(registryClient)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, companyH, clientH, invoiceH, expenseH, summaryH, lookupH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
