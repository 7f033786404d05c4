package router

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/handler"
	"fakturo/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	companyH *handler.CompanyHandler,
	clientH *handler.ClientHandler,
	invoiceH *handler.InvoiceHandler,
	expenseH *handler.ExpenseHandler,
	summaryH *handler.SummaryHandler,
	lookupH *handler.LookupHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Company profile and contribution settings
	company := v1.Group("/company")
	company.GET("", companyH.GetProfile)
	company.PUT("", companyH.SaveProfile)
	company.PUT("/zus-settings", companyH.UpdateZUSSettings)
	company.GET("/contributions", companyH.CurrentContributions)

	// Clients
	clients := v1.Group("/clients")
	clients.POST("", clientH.Create)
	clients.GET("", clientH.List)
	clients.GET("/:id", clientH.GetByID)
	clients.PUT("/:id", clientH.Update)
	clients.DELETE("/:id", clientH.Delete)

	// Invoices. Static segments must be registered before the wildcard :id
	// routes so Gin does not treat them as IDs.
	invoices := v1.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.POST("/preview-totals", invoiceH.PreviewTotals)
	invoices.GET("/next-number", invoiceH.NextNumber)
	invoices.GET("/export", invoiceH.ExportRegister)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PATCH("/:id/status", invoiceH.UpdateStatus)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.GET("/:id/pdf", invoiceH.DownloadPDF)

	// Expenses
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseH.Create)
	expenses.GET("", expenseH.List)
	expenses.GET("/:id", expenseH.GetByID)
	expenses.PUT("/:id", expenseH.Update)
	expenses.DELETE("/:id", expenseH.Delete)

	// Monthly financial summary
	v1.GET("/summary", summaryH.Get)

	// National registry lookup
	v1.GET("/lookup/nip/:nip", lookupH.LookupNIP)

	return r
}
