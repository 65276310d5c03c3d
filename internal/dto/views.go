package dto

import (
	"errors"
	"strconv"
	"time"

	"github.com/mgarrido/project-tracker-api/internal/models"
)

// ErrMissingID reports a document without a generated identifier. Documents
// read back from the store always carry one; hitting this means the row is
// corrupt.
var ErrMissingID = errors.New("document has no identifier")

// UserView represents a user in API responses
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectView represents a project in API responses
type ProjectView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	UserID      string     `json:"user_id"`
}

// TaskView represents a task in API responses
type TaskView struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	ProjectID   string            `json:"project_id"`
}

// FormatID renders a stored identifier in its external string form.
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// ParseID parses an identifier received from a client.
func ParseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Conversion functions

// ToUserView converts a User model to UserView
func ToUserView(user models.User) (UserView, error) {
	if user.ID == 0 {
		return UserView{}, ErrMissingID
	}
	return UserView{
		ID:        FormatID(user.ID),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ToProjectView converts a Project model to ProjectView. The denormalized
// user_id comes from the resolved owner, not from the project's stored
// foreign key.
func ToProjectView(project models.Project, owner models.User) (ProjectView, error) {
	if project.ID == 0 || owner.ID == 0 {
		return ProjectView{}, ErrMissingID
	}
	return ProjectView{
		ID:          FormatID(project.ID),
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		UserID:      FormatID(owner.ID),
	}, nil
}

// ToTaskView converts a Task model to TaskView, taking the denormalized
// project_id from the resolved owning project.
func ToTaskView(task models.Task, owner models.Project) (TaskView, error) {
	if task.ID == 0 || owner.ID == 0 {
		return TaskView{}, ErrMissingID
	}
	return TaskView{
		ID:          FormatID(task.ID),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		ProjectID:   FormatID(owner.ID),
	}, nil
}
