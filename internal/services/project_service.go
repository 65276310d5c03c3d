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
	ErrProjectNotFound = errors.New("project not found")
	ErrNoProjects      = errors.New("no projects found")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	UserID      uint64
}

// Create verifies the owning user exists, then stores the project. The
// check-then-insert pair is not atomic; a concurrent deletion of the user in
// between is an accepted race.
func (s *ProjectService) Create(input CreateProjectInput) (dto.ProjectView, error) {
	owner, err := s.userRepo.FindByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectView{}, ErrUserNotFound
		}
		return dto.ProjectView{}, fmt.Errorf("failed to find user: %w", err)
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		UserID:      owner.ID,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return dto.ProjectView{}, fmt.Errorf("failed to create project: %w", err)
	}

	view, err := dto.ToProjectView(*project, *owner)
	if err != nil {
		return dto.ProjectView{}, fmt.Errorf("failed to map project: %w", err)
	}
	return view, nil
}

// List returns the joined view of every project with its owner. A project
// whose owner is missing from the users collection fails the whole listing
// with a *dto.DanglingReferenceError.
func (s *ProjectService) List() ([]dto.ProjectView, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	return dto.ResolveOwned(projects, users, "user_id",
		func(u models.User) uint64 { return u.ID },
		func(p models.Project) uint64 { return p.UserID },
		dto.ToProjectView,
	)
}

// ListByUser returns the projects owned by one user, not joined.
func (s *ProjectService) ListByUser(userID uint64) ([]dto.ProjectView, error) {
	owner, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	projects, err := s.projectRepo.FindByUserID(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	views := make([]dto.ProjectView, 0, len(projects))
	for _, project := range projects {
		view, err := dto.ToProjectView(project, *owner)
		if err != nil {
			return nil, fmt.Errorf("failed to map project: %w", err)
		}
		views = append(views, view)
	}
	return views, nil
}

// Delete removes a project. Tasks in the project are left in place
// (orphan-on-delete, same policy as users).
func (s *ProjectService) Delete(id uint64) error {
	affected, err := s.projectRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
