package handler

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/service"
)

// SummaryHandler handles the monthly financial summary endpoint.
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Get handles GET /api/v1/summary?month=M&year=YYYY
func (h *SummaryHandler) Get(c *gin.Context) {
	period, err := parsePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		HandleError(c, err)
		return
	}

	summary, err := h.summaryService.GetFinancialSummary(c.Request.Context(), period.Month, period.Year)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}
