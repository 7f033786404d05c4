package handler

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/port"
)

// LookupHandler handles the national registry NIP lookup endpoint.
type LookupHandler struct {
	registry port.CompanyRegistry
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(registry port.CompanyRegistry) *LookupHandler {
	return &LookupHandler{registry: registry}
}

// LookupNIP handles GET /api/v1/lookup/nip/:nip
func (h *LookupHandler) LookupNIP(c *gin.Context) {
	entry, err := h.registry.LookupNIP(c.Request.Context(), c.Param("nip"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entry)
}
