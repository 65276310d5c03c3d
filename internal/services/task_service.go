package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mgarrido/project-tracker-api/internal/dto"
	"github.com/mgarrido/project-tracker-api/internal/models"
	"github.com/mgarrido/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrNoTasks        = errors.New("no tasks found")
	ErrNothingUpdated = errors.New("update affected no records")
)

// TaskService provides business logic for task operations.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents parameters to create a new task. Status is not
// accepted: every task starts as pending, whatever the client sent.
type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	ProjectID   uint64
}

// Create verifies the owning project exists, then stores the task.
func (s *TaskService) Create(input CreateTaskInput) (dto.TaskView, error) {
	owner, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TaskView{}, ErrProjectNotFound
		}
		return dto.TaskView{}, fmt.Errorf("failed to find project: %w", err)
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TaskStatusPending,
		DueDate:     input.DueDate,
		ProjectID:   owner.ID,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return dto.TaskView{}, fmt.Errorf("failed to create task: %w", err)
	}

	view, err := dto.ToTaskView(*task, *owner)
	if err != nil {
		return dto.TaskView{}, fmt.Errorf("failed to map task: %w", err)
	}
	return view, nil
}

// List returns the joined view of every task with its owning project. A task
// whose project is missing fails the whole listing with a
// *dto.DanglingReferenceError.
func (s *TaskService) List() ([]dto.TaskView, error) {
	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	return dto.ResolveOwned(tasks, projects, "project_id",
		func(p models.Project) uint64 { return p.ID },
		func(t models.Task) uint64 { return t.ProjectID },
		dto.ToTaskView,
	)
}

// ListByProject returns the tasks of one project, not joined.
func (s *TaskService) ListByProject(projectID uint64) ([]dto.TaskView, error) {
	owner, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	tasks, err := s.taskRepo.FindByProjectID(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	views := make([]dto.TaskView, 0, len(tasks))
	for _, task := range tasks {
		view, err := dto.ToTaskView(task, *owner)
		if err != nil {
			return nil, fmt.Errorf("failed to map task: %w", err)
		}
		views = append(views, view)
	}
	return views, nil
}

// MoveResult confirms a completed move.
type MoveResult struct {
	TaskID    string
	Title     string
	ProjectID string
}

// Move reassigns a task to another project. Only the project reference
// changes; status and every other field are left as stored. Both existence
// checks and the update are separate store calls, so the race between them is
// accepted, but an update that then affects zero records is a server fault.
func (s *TaskService) Move(taskID, destProjectID uint64) (MoveResult, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MoveResult{}, ErrTaskNotFound
		}
		return MoveResult{}, fmt.Errorf("failed to find task: %w", err)
	}

	dest, err := s.projectRepo.FindByID(destProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MoveResult{}, ErrProjectNotFound
		}
		return MoveResult{}, fmt.Errorf("failed to find destination project: %w", err)
	}

	affected, err := s.taskRepo.Reassign(task.ID, dest.ID)
	if err != nil {
		return MoveResult{}, fmt.Errorf("failed to move task: %w", err)
	}
	if affected == 0 {
		return MoveResult{}, ErrNothingUpdated
	}

	return MoveResult{
		TaskID:    dto.FormatID(task.ID),
		Title:     task.Title,
		ProjectID: dto.FormatID(dest.ID),
	}, nil
}

// Delete removes a task.
func (s *TaskService) Delete(id uint64) error {
	affected, err := s.taskRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
