// internal/handlers/noc.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bsfdc/film-portal-backend/internal/i18n"
	"github.com/bsfdc/film-portal-backend/internal/models"
	"github.com/bsfdc/film-portal-backend/internal/services"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

type NOCHandler struct {
	nocService *services.NOCService
}

func NewNOCHandler(nocService *services.NOCService) *NOCHandler {
	return &NOCHandler{
		nocService: nocService,
	}
}

// POST /noc/applications
func (h *NOCHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.SubmitNOCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	application, err := h.nocService.Submit(actor, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyNOCSubmitted),
		"application": application,
	})
}

// GET /noc/applications
func (h *NOCHandler) List(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyAuthRequired))
		return
	}

	params := services.NOCListParams{
		PaginationParams: utils.GetPaginationParams(c),
	}
	if status := c.Query("status"); status != "" {
		s := models.NOCStatus(status)
		params.Status = &s
	}

	applications, total, err := h.nocService.List(actor, params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(applications, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /noc/applications/:id
func (h *NOCHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyAuthRequired))
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.nocService.GetByID(actor, id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, application)
}

// GET /noc/applications/:id/timeline
func (h *NOCHandler) Timeline(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyAuthRequired))
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	steps, err := h.nocService.Timeline(actor, id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"timeline": steps})
}

// PUT /noc/applications/:id/forward
func (h *NOCHandler) Forward(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ForwardNOCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	application, err := h.nocService.Forward(actor, id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyNOCForwarded),
		"application": application,
	})
}

// PUT /noc/applications/:id/decision
func (h *NOCHandler) Decide(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.DistrictDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	application, err := h.nocService.Decide(actor, id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	messageKey := i18n.KeyNOCApproved
	if application.Status == models.NOCStatusRejected {
		messageKey = i18n.KeyNOCRejected
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, messageKey),
		"application": application,
	})
}
