package handlers

import (
	"context"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type LegalHandler struct {
	Service *service.LegalService
}

func NewLegalHandler(s *service.LegalService) *LegalHandler {
	return &LegalHandler{Service: s}
}

func (h *LegalHandler) ListPosts(c *gin.Context) {
	posts, err := h.Service.ListPublished(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list legal posts", err)
		return
	}
	utils.SuccessResponse(c, "legal posts", posts)
}

func (h *LegalHandler) ListAllPosts(c *gin.Context) {
	posts, err := h.Service.ListAll(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list legal posts", err)
		return
	}
	utils.SuccessResponse(c, "legal posts", posts)
}

func (h *LegalHandler) GetPost(c *gin.Context) {
	post, err := h.Service.GetPost(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Legal post not found")
		return
	}
	contentViews.WithLabelValues("legal", "commentary").Inc()
	_ = h.Service.RecordView(context.Background(), post.ID)
	utils.SuccessResponse(c, "legal post", post)
}

func (h *LegalHandler) CreatePost(c *gin.Context) {
	var post models.LegalPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.CreatePost(context.Background(), &post); err != nil {
		utils.InternalErrorResponse(c, "Failed to create legal post", err)
		return
	}
	contentMutations.WithLabelValues("legal", "create").Inc()
	utils.CreatedResponse(c, "legal post created", post)
}

func (h *LegalHandler) UpdatePost(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.UpdatePost(context.Background(), c.Param("id"), update); err != nil {
		utils.InternalErrorResponse(c, "Failed to update legal post", err)
		return
	}
	contentMutations.WithLabelValues("legal", "update").Inc()
	utils.SuccessResponse(c, "legal post updated", nil)
}

func (h *LegalHandler) DeletePost(c *gin.Context) {
	if err := h.Service.DeletePost(context.Background(), c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete legal post", err)
		return
	}
	contentMutations.WithLabelValues("legal", "delete").Inc()
	utils.SuccessResponse(c, "legal post deleted", nil)
}
