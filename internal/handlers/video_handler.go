package handlers

import (
	"context"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	Service *service.VideoService
}

func NewVideoHandler(s *service.VideoService) *VideoHandler {
	return &VideoHandler{Service: s}
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.Service.ListPublished(context.Background(), c.Query("section"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list videos", err)
		return
	}
	utils.SuccessResponse(c, "videos", videos)
}

func (h *VideoHandler) ListAllVideos(c *gin.Context) {
	videos, err := h.Service.ListAll(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list videos", err)
		return
	}
	utils.SuccessResponse(c, "videos", videos)
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.Service.GetVideo(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Video not found")
		return
	}
	contentViews.WithLabelValues("video", video.Section).Inc()
	_ = h.Service.RecordView(context.Background(), video.ID)
	utils.SuccessResponse(c, "video", video)
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var video models.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.CreateVideo(context.Background(), &video); err != nil {
		utils.InternalErrorResponse(c, "Failed to create video", err)
		return
	}
	contentMutations.WithLabelValues("video", "create").Inc()
	utils.CreatedResponse(c, "video created", video)
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.UpdateVideo(context.Background(), c.Param("id"), update); err != nil {
		utils.InternalErrorResponse(c, "Failed to update video", err)
		return
	}
	contentMutations.WithLabelValues("video", "update").Inc()
	utils.SuccessResponse(c, "video updated", nil)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.Service.DeleteVideo(context.Background(), c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete video", err)
		return
	}
	contentMutations.WithLabelValues("video", "delete").Inc()
	utils.SuccessResponse(c, "video deleted", nil)
}
