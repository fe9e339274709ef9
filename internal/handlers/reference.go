// internal/handlers/reference.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bsfdc/film-portal-backend/internal/services"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		referenceService: referenceService,
	}
}

// GET /districts
func (h *ReferenceHandler) ListDistricts(c *gin.Context) {
	districts, err := h.referenceService.ListDistricts()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"districts": districts})
}

// GET /departments
func (h *ReferenceHandler) ListDepartments(c *gin.Context) {
	departments, err := h.referenceService.ListDepartments()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"departments": departments})
}
