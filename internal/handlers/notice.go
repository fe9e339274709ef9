// internal/handlers/notice.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bsfdc/film-portal-backend/internal/i18n"
	"github.com/bsfdc/film-portal-backend/internal/services"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

type NoticeHandler struct {
	noticeService *services.NoticeService
}

func NewNoticeHandler(noticeService *services.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
	}
}

// GET /notices
func (h *NoticeHandler) ListPublished(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	notices, total, err := h.noticeService.ListPublished(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(notices, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /notices/:id
func (h *NoticeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notice, err := h.noticeService.GetByID(id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, notice)
}

// GET /admin/notices
func (h *NoticeHandler) ListAll(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	notices, total, err := h.noticeService.ListAll(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(notices, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /admin/notices
func (h *NoticeHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	notice, err := h.noticeService.Create(actor, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyNoticeCreated),
		"notice":  notice,
	})
}

// PATCH /admin/notices/:id
func (h *NoticeHandler) Update(c *gin.Context) {
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

	var req services.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	notice, err := h.noticeService.Update(actor, id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyNoticeUpdated),
		"notice":  notice,
	})
}

// DELETE /admin/notices/:id
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.noticeService.Delete(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
