package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mgarrido/project-tracker-api/internal/errors"
	"github.com/mgarrido/project-tracker-api/internal/models"
	"github.com/mgarrido/project-tracker-api/internal/repository"
	"github.com/mgarrido/project-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory SQLite database with the full schema.
func openTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	return db, err
}

// newTestRouter wires the same route table as cmd/server against db.
func newTestRouter(db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userHandler := NewUserHandler(services.NewUserService(userRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, userRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, projectRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/users", userHandler.ListUsers)
	r.POST("/users", userHandler.CreateUser)
	r.DELETE("/users", userHandler.DeleteUser)

	r.GET("/projects", projectHandler.ListProjects)
	r.GET("/projects/by-user", projectHandler.ListProjectsByUser)
	r.POST("/projects", projectHandler.CreateProject)
	r.DELETE("/projects", projectHandler.DeleteProject)

	r.GET("/tasks", taskHandler.ListTasks)
	r.GET("/tasks/by-project", taskHandler.ListTasksByProject)
	r.POST("/tasks", taskHandler.CreateTask)
	r.POST("/tasks/move", taskHandler.MoveTask)
	r.DELETE("/tasks", taskHandler.DeleteTask)

	r.NoRoute(apierrors.EndpointNotFound)

	return r
}

// performRequest replays one request through the router.
func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(w *httptest.ResponseRecorder) (map[string]any, error) {
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	return body, err
}

// decodeList unmarshals a JSON array response body.
func decodeList(w *httptest.ResponseRecorder) ([]map[string]any, error) {
	var body []map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	return body, err
}

// Seed helpers

func seedUser(db *gorm.DB, name, email string) *models.User {
	user := &models.User{Name: name, Email: email}
	db.Create(user)
	return user
}

func seedProject(db *gorm.DB, name string, userID uint64) *models.Project {
	project := &models.Project{
		Name:      name,
		StartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		UserID:    userID,
	}
	db.Create(project)
	return project
}

func seedTask(db *gorm.DB, title string, projectID uint64) *models.Task {
	task := &models.Task{
		Title:     title,
		Status:    models.TaskStatusPending,
		ProjectID: projectID,
	}
	db.Create(task)
	return task
}
