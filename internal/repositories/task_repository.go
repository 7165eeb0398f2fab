package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"luminous/internal/models/db_models"
)

type TaskRepository interface {
	FindByProject(ctx context.Context, userID string, projectID uint) ([]db_models.Task, error)
	FindByUser(ctx context.Context, userID string) ([]db_models.Task, error)
	FindByID(ctx context.Context, userID string, id uint) (*db_models.Task, error)
	Create(ctx context.Context, task *db_models.Task) error
	Update(ctx context.Context, userID string, id uint, changes map[string]interface{}) (*db_models.Task, error)
	Delete(ctx context.Context, userID string, id uint) (bool, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{
		db: db,
	}
}

func (t *taskRepository) FindByProject(ctx context.Context, userID string, projectID uint) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	return tasks, err
}

func (t *taskRepository) FindByUser(ctx context.Context, userID string) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	return tasks, err
}

func (t *taskRepository) FindByID(ctx context.Context, userID string, id uint) (*db_models.Task, error) {
	var task db_models.Task
	err := t.db.WithContext(ctx).First(&task, "id = ? AND user_id = ?", id, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (t *taskRepository) Create(ctx context.Context, task *db_models.Task) error {
	return t.db.WithContext(ctx).Create(task).Error
}

func (t *taskRepository) Update(ctx context.Context, userID string, id uint, changes map[string]interface{}) (*db_models.Task, error) {
	res := t.db.WithContext(ctx).Model(&db_models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(withUpdatedAt(t.db, changes))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return t.FindByID(ctx, userID, id)
}

func (t *taskRepository) Delete(ctx context.Context, userID string, id uint) (bool, error) {
	res := t.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&db_models.Task{})
	return res.RowsAffected > 0, res.Error
}
