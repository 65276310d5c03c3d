package repository

import (
	"github.com/mgarrido/project-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindAll returns every user
	FindAll() ([]models.User, error)

	// Delete removes a user and reports how many records were affected
	Delete(id uint64) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindAll returns every project
	FindAll() ([]models.Project, error)

	// FindByUserID returns the projects owned by a user
	FindByUserID(userID uint64) ([]models.Project, error)

	// Delete removes a project and reports how many records were affected
	Delete(id uint64) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindAll returns every task
	FindAll() ([]models.Task, error)

	// FindByProjectID returns the tasks belonging to a project
	FindByProjectID(projectID uint64) ([]models.Task, error)

	// Reassign moves a task to another project and reports how many records
	// were affected
	Reassign(taskID, projectID uint64) (int64, error)

	// Delete removes a task and reports how many records were affected
	Delete(id uint64) (int64, error)
}
