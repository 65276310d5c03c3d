package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mgarrido/project-tracker-api/internal/dto"
	apierrors "github.com/mgarrido/project-tracker-api/internal/errors"
	"github.com/mgarrido/project-tracker-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns every project joined with its owning user. A project
// whose owner no longer exists is a server-side integrity fault, not a reason
// to return a partial list.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	views, err := h.projectService.List()
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoProjects):
			apierrors.NotFound(c, "No projects found")
		case errors.Is(err, services.ErrNoUsers):
			apierrors.NotFound(c, "No users found")
		default:
			var dangling *dto.DanglingReferenceError
			if errors.As(err, &dangling) {
				apierrors.IntegrityFault(c, dangling.Error())
				return
			}
			apierrors.InternalError(c, "Failed to fetch projects")
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

// ListProjectsByUser returns the projects owned by the user named in the
// user_id query parameter.
func (h *ProjectHandler) ListProjectsByUser(c *gin.Context) {
	idStr := c.Query("user_id")
	if idStr == "" {
		apierrors.MissingField(c, "user_id query parameter is required")
		return
	}
	userID, err := dto.ParseID(idStr)
	if err != nil {
		apierrors.BadRequest(c, "user_id must be a valid identifier")
		return
	}

	views, err := h.projectService.ListByUser(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrNoProjects):
			apierrors.NotFound(c, "No projects found for this user")
		default:
			apierrors.InternalError(c, "Failed to fetch projects")
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreateProject creates a new project after verifying the owning user exists.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string     `json:"name" binding:"required"`
		Description *string    `json:"description"`
		StartDate   *time.Time `json:"start_date" binding:"required"`
		EndDate     *time.Time `json:"end_date"`
		UserID      string     `json:"user_id" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "name, start_date and user_id are required")
		return
	}
	userID, err := dto.ParseID(req.UserID)
	if err != nil {
		apierrors.BadRequest(c, "user_id must be a valid identifier")
		return
	}

	view, err := h.projectService.Create(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   *req.StartDate,
		EndDate:     req.EndDate,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, view)
}

// DeleteProject removes a project by the id query parameter. Tasks in the
// project are not cascaded.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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

	if err := h.projectService.Delete(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}
