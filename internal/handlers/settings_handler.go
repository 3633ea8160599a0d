package handlers

import (
	"context"

	"media-service/internal/middleware"
	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	Service *service.SettingsService
}

func NewSettingsHandler(s *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: s}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Service.GetSettings(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load site settings", err)
		return
	}
	utils.SuccessResponse(c, "site settings", settings)
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.SaveSettings(context.Background(), &settings, middleware.UserID(c)); err != nil {
		utils.InternalErrorResponse(c, "Failed to save site settings", err)
		return
	}
	utils.SuccessResponse(c, "site settings saved", settings)
}
