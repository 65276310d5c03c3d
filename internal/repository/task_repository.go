package repository

import (
	"github.com/mgarrido/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByProjectID(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Reassign updates only the project reference; every other field is left as
// stored.
func (r *GormTaskRepository) Reassign(taskID, projectID uint64) (int64, error) {
	res := r.db.Model(&models.Task{}).Where("id = ?", taskID).Update("project_id", projectID)
	return res.RowsAffected, res.Error
}

func (r *GormTaskRepository) Delete(id uint64) (int64, error) {
	res := r.db.Delete(&models.Task{}, id)
	return res.RowsAffected, res.Error
}
