package dto

import (
	"testing"
	"time"

	"github.com/mgarrido/project-tracker-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUserView(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	user := models.User{
		ID:        42,
		Name:      "Ann",
		Email:     "a@x.com",
		CreatedAt: createdAt,
	}

	view, err := ToUserView(user)
	require.NoError(t, err)
	assert.Equal(t, "42", view.ID)
	assert.Equal(t, "Ann", view.Name)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, createdAt, view.CreatedAt)
}

func TestToUserView_MissingID(t *testing.T) {
	_, err := ToUserView(models.User{Name: "Ann", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestToProjectView_UsesResolvedOwnerID(t *testing.T) {
	desc := "internal tooling"
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	project := models.Project{
		ID:          3,
		Name:        "Tracker",
		Description: &desc,
		StartDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		// Stored foreign key deliberately disagrees with the resolved owner;
		// the owner wins.
		UserID: 999,
	}
	owner := models.User{ID: 7, Name: "Ann", Email: "a@x.com"}

	view, err := ToProjectView(project, owner)
	require.NoError(t, err)
	assert.Equal(t, "3", view.ID)
	assert.Equal(t, "7", view.UserID)
	assert.Equal(t, "Tracker", view.Name)
	require.NotNil(t, view.Description)
	assert.Equal(t, desc, *view.Description)
	assert.Equal(t, project.StartDate, view.StartDate)
	require.NotNil(t, view.EndDate)
	assert.Equal(t, end, *view.EndDate)
}

func TestToProjectView_MissingIDs(t *testing.T) {
	_, err := ToProjectView(models.Project{}, models.User{ID: 1})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = ToProjectView(models.Project{ID: 1}, models.User{})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestToTaskView(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:        11,
		Title:     "Write report",
		Status:    models.TaskStatusInProgress,
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		DueDate:   &due,
		ProjectID: 999,
	}
	owner := models.Project{ID: 5, Name: "Tracker", UserID: 1}

	view, err := ToTaskView(task, owner)
	require.NoError(t, err)
	assert.Equal(t, "11", view.ID)
	assert.Equal(t, "5", view.ProjectID)
	assert.Equal(t, models.TaskStatusInProgress, view.Status)
	assert.Nil(t, view.Description)
	require.NotNil(t, view.DueDate)
	assert.Equal(t, due, *view.DueDate)
}

func TestToTaskView_MissingIDs(t *testing.T) {
	_, err := ToTaskView(models.Task{}, models.Project{ID: 1})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = ToTaskView(models.Task{ID: 1}, models.Project{})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	_, err = ParseID("not-an-id")
	assert.Error(t, err)

	_, err = ParseID("")
	assert.Error(t, err)
}
