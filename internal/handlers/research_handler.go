package handlers

import (
	"context"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type ResearchHandler struct {
	Service *service.ResearchService
}

func NewResearchHandler(s *service.ResearchService) *ResearchHandler {
	return &ResearchHandler{Service: s}
}

func (h *ResearchHandler) ListItems(c *gin.Context) {
	items, err := h.Service.ListPublished(context.Background(), c.Query("department"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list research", err)
		return
	}
	utils.SuccessResponse(c, "research items", items)
}

func (h *ResearchHandler) ListAllItems(c *gin.Context) {
	items, err := h.Service.ListAll(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list research", err)
		return
	}
	utils.SuccessResponse(c, "research items", items)
}

func (h *ResearchHandler) GetItem(c *gin.Context) {
	item, err := h.Service.GetItem(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Research item not found")
		return
	}
	contentViews.WithLabelValues("research", item.Department).Inc()
	_ = h.Service.RecordView(context.Background(), item.ID)
	utils.SuccessResponse(c, "research item", item)
}

func (h *ResearchHandler) CreateItem(c *gin.Context) {
	var item models.ResearchItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.CreateItem(context.Background(), &item); err != nil {
		utils.InternalErrorResponse(c, "Failed to create research item", err)
		return
	}
	contentMutations.WithLabelValues("research", "create").Inc()
	utils.CreatedResponse(c, "research item created", item)
}

func (h *ResearchHandler) UpdateItem(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.UpdateItem(context.Background(), c.Param("id"), update); err != nil {
		utils.InternalErrorResponse(c, "Failed to update research item", err)
		return
	}
	contentMutations.WithLabelValues("research", "update").Inc()
	utils.SuccessResponse(c, "research item updated", nil)
}

func (h *ResearchHandler) DeleteItem(c *gin.Context) {
	if err := h.Service.DeleteItem(context.Background(), c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete research item", err)
		return
	}
	contentMutations.WithLabelValues("research", "delete").Inc()
	utils.SuccessResponse(c, "research item deleted", nil)
}
