// internal/handlers/helpers.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bsfdc/film-portal-backend/internal/models"
	"github.com/bsfdc/film-portal-backend/internal/services"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

// actorFromContext rebuilds the request-scoped identity set by the auth
// middleware. Callers behind AuthRequired can rely on ok being true.
func actorFromContext(c *gin.Context) (services.Actor, bool) {
	idStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return services.Actor{}, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return services.Actor{}, false
	}

	actor := services.Actor{ID: id}

	if name, exists := c.Get("name"); exists {
		if s, ok := name.(string); ok {
			actor.Name = s
		}
	}

	if role, exists := utils.GetRoleFromContext(c); exists {
		actor.Role = models.UserRole(role)
	}

	if districtStr, exists := utils.GetDistrictIDFromContext(c); exists && districtStr != "" {
		if districtID, err := uuid.Parse(districtStr); err == nil {
			actor.DistrictID = &districtID
		}
	}

	return actor, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
