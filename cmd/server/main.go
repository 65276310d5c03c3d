package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mgarrido/project-tracker-api/internal/config"
	"github.com/mgarrido/project-tracker-api/internal/database"
	apierrors "github.com/mgarrido/project-tracker-api/internal/errors"
	"github.com/mgarrido/project-tracker-api/internal/handlers"
	"github.com/mgarrido/project-tracker-api/internal/repository"
	"github.com/mgarrido/project-tracker-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire repositories, services and handlers
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Tracker API is running",
		})
	})

	// User routes
	r.GET("/users", userHandler.ListUsers)
	r.POST("/users", userHandler.CreateUser)
	r.DELETE("/users", userHandler.DeleteUser)

	// Project routes
	r.GET("/projects", projectHandler.ListProjects)
	r.GET("/projects/by-user", projectHandler.ListProjectsByUser)
	r.POST("/projects", projectHandler.CreateProject)
	r.DELETE("/projects", projectHandler.DeleteProject)

	// Task routes
	r.GET("/tasks", taskHandler.ListTasks)
	r.GET("/tasks/by-project", taskHandler.ListTasksByProject)
	r.POST("/tasks", taskHandler.CreateTask)
	r.POST("/tasks/move", taskHandler.MoveTask)
	r.DELETE("/tasks", taskHandler.DeleteTask)

	// Catch-all for unmatched method+path combinations
	r.NoRoute(apierrors.EndpointNotFound)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
