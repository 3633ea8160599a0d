package handlers

import (
	"context"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list users", err)
		return
	}
	utils.SuccessResponse(c, "users", users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Service.GetUser(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	utils.SuccessResponse(c, "user", user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.UserProfile
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.CreateUser(context.Background(), &user); err != nil {
		utils.BadRequestResponse(c, "Failed to create user", err)
		return
	}
	utils.CreatedResponse(c, "user created", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.UpdateUser(context.Background(), c.Param("id"), update); err != nil {
		utils.InternalErrorResponse(c, "Failed to update user", err)
		return
	}
	utils.SuccessResponse(c, "user updated", nil)
}

func (h *UserHandler) SetRole(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.SetRole(context.Background(), c.Param("id"), body.Role); err != nil {
		utils.BadRequestResponse(c, "Failed to set role", err)
		return
	}
	utils.SuccessResponse(c, "role updated", nil)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Service.DeleteUser(context.Background(), c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete user", err)
		return
	}
	utils.SuccessResponse(c, "user deleted", nil)
}
