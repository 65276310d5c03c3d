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

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns every task joined with its owning project.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	views, err := h.taskService.List()
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoTasks):
			apierrors.NotFound(c, "No tasks found")
		case errors.Is(err, services.ErrNoProjects):
			apierrors.NotFound(c, "No projects found")
		default:
			var dangling *dto.DanglingReferenceError
			if errors.As(err, &dangling) {
				apierrors.IntegrityFault(c, dangling.Error())
				return
			}
			apierrors.InternalError(c, "Failed to fetch tasks")
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

// ListTasksByProject returns the tasks of the project named in the project_id
// query parameter.
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	idStr := c.Query("project_id")
	if idStr == "" {
		apierrors.MissingField(c, "project_id query parameter is required")
		return
	}
	projectID, err := dto.ParseID(idStr)
	if err != nil {
		apierrors.BadRequest(c, "project_id must be a valid identifier")
		return
	}

	views, err := h.taskService.ListByProject(projectID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrNoTasks):
			apierrors.NotFound(c, "No tasks found for this project")
		default:
			apierrors.InternalError(c, "Failed to fetch tasks")
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreateTask creates a new task after verifying the owning project exists.
// Status always starts as pending; a status field in the body is ignored.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description *string    `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		ProjectID   string     `json:"project_id" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "title and project_id are required")
		return
	}
	projectID, err := dto.ParseID(req.ProjectID)
	if err != nil {
		apierrors.BadRequest(c, "project_id must be a valid identifier")
		return
	}

	view, err := h.taskService.Create(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ProjectID:   projectID,
	})
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, view)
}

// MoveTask reassigns a task to another project. An update that affects zero
// records after both existence checks passed is a server fault, not a client
// error.
func (h *TaskHandler) MoveTask(c *gin.Context) {
	type MoveTaskRequest struct {
		TaskID               string `json:"task_id" binding:"required"`
		DestinationProjectID string `json:"destination_project_id" binding:"required"`
	}

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "task_id and destination_project_id are required")
		return
	}
	taskID, err := dto.ParseID(req.TaskID)
	if err != nil {
		apierrors.BadRequest(c, "task_id must be a valid identifier")
		return
	}
	destProjectID, err := dto.ParseID(req.DestinationProjectID)
	if err != nil {
		apierrors.BadRequest(c, "destination_project_id must be a valid identifier")
		return
	}

	result, err := h.taskService.Move(taskID, destProjectID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Destination project not found")
		case errors.Is(err, services.ErrNothingUpdated):
			apierrors.InternalError(c, "Task move affected no records")
		default:
			apierrors.InternalError(c, "Failed to move task")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Task moved successfully",
		"task_id":    result.TaskID,
		"title":      result.Title,
		"project_id": result.ProjectID,
	})
}

// DeleteTask removes a task by the id query parameter.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
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

	if err := h.taskService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
