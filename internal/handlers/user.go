package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mgarrido/project-tracker-api/internal/dto"
	apierrors "github.com/mgarrido/project-tracker-api/internal/errors"
	"github.com/mgarrido/project-tracker-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	views, err := h.userService.List()
	if err != nil {
		if errors.Is(err, services.ErrNoUsers) {
			apierrors.NotFound(c, "No users found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreateUser creates a new user. created_at is set by the server.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "name and email are required")
		return
	}

	view, err := h.userService.Create(req.Name, req.Email)
	if err != nil {
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, view)
}

// DeleteUser removes a user by the id query parameter. Projects owned by the
// user are not cascaded.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		apierrors.MissingField(c, "id query parameter is required")
		return
	}
	id, err := dto.ParseID(idStr)
	if err != nil {
		apierrors.BadRequest(c, "id must be a valid identifier")
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
