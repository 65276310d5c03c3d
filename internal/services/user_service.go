package services

import (
	"errors"
	"fmt"

	"github.com/mgarrido/project-tracker-api/internal/dto"
	"github.com/mgarrido/project-tracker-api/internal/models"
	"github.com/mgarrido/project-tracker-api/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoUsers      = errors.New("no users found")
)

// UserService provides business logic for user operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List returns every user in external view form.
func (s *UserService) List() ([]dto.UserView, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	views := make([]dto.UserView, 0, len(users))
	for _, user := range users {
		view, err := dto.ToUserView(user)
		if err != nil {
			return nil, fmt.Errorf("failed to map user: %w", err)
		}
		views = append(views, view)
	}
	return views, nil
}

// Create stores a new user. The creation timestamp is set by the store, never
// taken from the client.
func (s *UserService) Create(name, email string) (dto.UserView, error) {
	user := &models.User{
		Name:  name,
		Email: email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return dto.UserView{}, fmt.Errorf("failed to create user: %w", err)
	}

	view, err := dto.ToUserView(*user)
	if err != nil {
		return dto.UserView{}, fmt.Errorf("failed to map user: %w", err)
	}
	return view, nil
}

// Delete removes a user. Projects owned by the user are left in place; a
// dangling owner surfaces as an integrity fault on the next joined listing.
func (s *UserService) Delete(id uint64) error {
	affected, err := s.userRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
