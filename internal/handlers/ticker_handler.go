package handlers

import (
	"context"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type TickerHandler struct {
	Service *service.TickerService
}

func NewTickerHandler(s *service.TickerService) *TickerHandler {
	return &TickerHandler{Service: s}
}

func (h *TickerHandler) GetNewsTicker(c *gin.Context) {
	items, err := h.Service.GetActive(context.Background(), models.TickerKindNews)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load news ticker", err)
		return
	}
	utils.SuccessResponse(c, "news ticker", items)
}

func (h *TickerHandler) GetSportsBanner(c *gin.Context) {
	items, err := h.Service.GetActive(context.Background(), models.TickerKindSports)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load sports banner", err)
		return
	}
	utils.SuccessResponse(c, "sports banner", items)
}

func (h *TickerHandler) ListItems(c *gin.Context) {
	items, err := h.Service.ListAll(context.Background(), c.Query("kind"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list ticker items", err)
		return
	}
	utils.SuccessResponse(c, "ticker items", items)
}

func (h *TickerHandler) GetItem(c *gin.Context) {
	item, err := h.Service.GetTicker(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Ticker item not found")
		return
	}
	utils.SuccessResponse(c, "ticker item", item)
}

func (h *TickerHandler) CreateItem(c *gin.Context) {
	var item models.Ticker
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.CreateTicker(context.Background(), &item); err != nil {
		utils.BadRequestResponse(c, "Failed to create ticker item", err)
		return
	}
	utils.CreatedResponse(c, "ticker item created", item)
}

func (h *TickerHandler) UpdateItem(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.UpdateTicker(context.Background(), c.Param("id"), update); err != nil {
		utils.InternalErrorResponse(c, "Failed to update ticker item", err)
		return
	}
	utils.SuccessResponse(c, "ticker item updated", nil)
}

func (h *TickerHandler) DeleteItem(c *gin.Context) {
	if err := h.Service.DeleteTicker(context.Background(), c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete ticker item", err)
		return
	}
	utils.SuccessResponse(c, "ticker item deleted", nil)
}
