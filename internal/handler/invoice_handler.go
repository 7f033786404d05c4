package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fakturo/internal/domain"
	"fakturo/internal/port"
	"fakturo/internal/service"
	"fakturo/internal/xlsxexport"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	companyService service.CompanyService
	clientService  service.ClientService
	renderer       port.InvoiceRenderer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, companyService service.CompanyService,
	clientService service.ClientService, renderer port.InvoiceRenderer) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		companyService: companyService,
		clientService:  clientService,
		renderer:       renderer,
	}
}

// invoiceResponse bundles an invoice with its line items.
type invoiceResponse struct {
	Invoice *domain.Invoice      `json:"invoice"`
	Items   []domain.InvoiceItem `json:"items"`
}

// Create handles POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, items, err := h.invoiceService.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoiceResponse{Invoice: inv, Items: items})
}

// PreviewTotals handles POST /api/v1/invoices/preview-totals
func (h *InvoiceHandler) PreviewTotals(c *gin.Context) {
	var req struct {
		Items []service.InvoiceItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	totals, err := h.invoiceService.PreviewTotals(req.Items)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, totals)
}

// NextNumber handles GET /api/v1/invoices/next-number
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	number, err := h.invoiceService.NextNumber(c.Request.Context(), time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"invoice_number": number})
}

// List handles GET /api/v1/invoices
// With month and year query parameters it returns only that period.
func (h *InvoiceHandler) List(c *gin.Context) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")

	var (
		invoices []domain.Invoice
		err      error
	)
	if monthStr != "" || yearStr != "" {
		period, perr := parsePeriod(monthStr, yearStr)
		if perr != nil {
			HandleError(c, perr)
			return
		}
		invoices, err = h.invoiceService.ListByPeriod(c.Request.Context(), period)
	} else {
		invoices, err = h.invoiceService.List(c.Request.Context())
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, items, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoiceResponse{Invoice: inv, Items: items})
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var req struct {
		Status domain.InvoiceStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.invoiceService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"id": id, "status": req.Status})
}

// Delete handles DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// DownloadPDF handles GET /api/v1/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, items, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	seller, err := h.companyService.GetProfile(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	buyer, err := h.clientService.GetByID(c.Request.Context(), inv.ClientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	pdfBytes, err := h.renderer.RenderInvoice(c.Request.Context(), inv, items, seller, buyer)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", sanitizeFilename(inv.InvoiceNumber))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ExportRegister handles GET /api/v1/invoices/export
// It streams an XLSX register of the requested month.
func (h *InvoiceHandler) ExportRegister(c *gin.Context) {
	period, err := parsePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		HandleError(c, err)
		return
	}

	invoices, err := h.invoiceService.ListByPeriod(c.Request.Context(), period)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoice-register-%04d-%02d.xlsx", period.Year, period.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsxexport.WriteInvoiceRegister(c.Writer, period, invoices); err != nil {
		// Headers are already sent; nothing left to do but log and abort.
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] xlsx export failed: %v", requestID, err)
		c.Abort()
	}
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parsePeriod(monthStr, yearStr string) (domain.Period, error) {
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return domain.Period{}, domain.NewValidationError("month", "month must be a number between 1 and 12")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return domain.Period{}, domain.NewValidationError("year", "year must be a four-digit number")
	}

	period := domain.Period{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return domain.Period{}, err
	}
	return period, nil
}

func sanitizeFilename(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '/' || r == '\\' {
			out[i] = '-'
		}
	}
	return string(out)
}
