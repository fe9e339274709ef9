// internal/handlers/registration.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bsfdc/film-portal-backend/internal/i18n"
	"github.com/bsfdc/film-portal-backend/internal/models"
	"github.com/bsfdc/film-portal-backend/internal/services"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// POST /artists
func (h *RegistrationHandler) RegisterArtist(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.ArtistRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	profile, err := h.registrationService.RegisterArtist(actor, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRegistrationSubmitted),
		"profile": profile,
	})
}

// POST /producers
func (h *RegistrationHandler) RegisterProducer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.ProducerRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	profile, err := h.registrationService.RegisterProducer(actor, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRegistrationSubmitted),
		"profile": profile,
	})
}

// POST /vendors
func (h *RegistrationHandler) RegisterVendor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.VendorRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	profile, err := h.registrationService.RegisterVendor(actor, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRegistrationSubmitted),
		"profile": profile,
	})
}

// GET /artists
func (h *RegistrationHandler) ListArtists(c *gin.Context) {
	profiles, total, err := h.registrationService.ListArtists(h.listParams(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	h.paginated(c, profiles, total)
}

// GET /producers
func (h *RegistrationHandler) ListProducers(c *gin.Context) {
	profiles, total, err := h.registrationService.ListProducers(h.listParams(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	h.paginated(c, profiles, total)
}

// GET /vendors
func (h *RegistrationHandler) ListVendors(c *gin.Context) {
	profiles, total, err := h.registrationService.ListVendors(h.listParams(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	h.paginated(c, profiles, total)
}

// PUT /artists/:id/review
func (h *RegistrationHandler) ReviewArtist(c *gin.Context) {
	h.review(c, func(actor services.Actor, req *services.ReviewRequest) (interface{}, error) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return nil, nil
		}
		return h.registrationService.ReviewArtist(actor, id, req)
	})
}

// PUT /producers/:id/review
func (h *RegistrationHandler) ReviewProducer(c *gin.Context) {
	h.review(c, func(actor services.Actor, req *services.ReviewRequest) (interface{}, error) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return nil, nil
		}
		return h.registrationService.ReviewProducer(actor, id, req)
	})
}

// PUT /vendors/:id/review
func (h *RegistrationHandler) ReviewVendor(c *gin.Context) {
	h.review(c, func(actor services.Actor, req *services.ReviewRequest) (interface{}, error) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return nil, nil
		}
		return h.registrationService.ReviewVendor(actor, id, req)
	})
}

func (h *RegistrationHandler) review(c *gin.Context, fn func(services.Actor, *services.ReviewRequest) (interface{}, error)) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	profile, err := fn(actor, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	if profile == nil {
		// parseIDParam already responded
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRegistrationReviewed),
		"profile": profile,
	})
}

// GET /admin/registrations
// One combined review queue. Defaults to pending profiles unless a status
// filter is given.
func (h *RegistrationHandler) AdminOverview(c *gin.Context) {
	params := h.listParams(c)
	if params.Status == nil {
		pending := models.RegistrationStatusPending
		params.Status = &pending
	}

	artists, artistTotal, err := h.registrationService.ListArtists(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	producers, producerTotal, err := h.registrationService.ListProducers(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	vendors, vendorTotal, err := h.registrationService.ListVendors(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"artists":   artists,
		"producers": producers,
		"vendors":   vendors,
		"totals": gin.H{
			"artists":   artistTotal,
			"producers": producerTotal,
			"vendors":   vendorTotal,
		},
	})
}

func (h *RegistrationHandler) listParams(c *gin.Context) services.RegistrationListParams {
	params := services.RegistrationListParams{
		PaginationParams: utils.GetPaginationParams(c),
	}
	if status := c.Query("status"); status != "" {
		s := models.RegistrationStatus(status)
		params.Status = &s
	}
	return params
}

func (h *RegistrationHandler) paginated(c *gin.Context, data interface{}, total int64) {
	result := utils.CreatePaginationResult(data, total, utils.GetPaginationParams(c))
	utils.PaginatedResponse(c, result)
}
