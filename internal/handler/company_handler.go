package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fakturo/internal/domain"
	"fakturo/internal/service"
)

// CompanyHandler handles company profile and ZUS settings endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// GetProfile handles GET /api/v1/company
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	profile, err := h.companyService.GetProfile(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// SaveProfile handles PUT /api/v1/company
func (h *CompanyHandler) SaveProfile(c *gin.Context) {
	var profile domain.CompanyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.companyService.SaveProfile(c.Request.Context(), &profile); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// UpdateZUSSettings handles PUT /api/v1/company/zus-settings
func (h *CompanyHandler) UpdateZUSSettings(c *gin.Context) {
	var settings service.ZUSSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	profile, err := h.companyService.UpdateZUSSettings(c.Request.Context(), &settings)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// CurrentContributions handles GET /api/v1/company/contributions
func (h *CompanyHandler) CurrentContributions(c *gin.Context) {
	breakdown, err := h.companyService.CurrentContributions(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, breakdown)
}
