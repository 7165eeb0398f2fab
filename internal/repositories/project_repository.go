package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"luminous/internal/models/db_models"
)

type ProjectRepository interface {
	FindByUser(ctx context.Context, userID string) ([]db_models.Project, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.Project, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	FindByID(ctx context.Context, userID string, id uint) (*db_models.Project, error)
	Create(ctx context.Context, project *db_models.Project) error
	Update(ctx context.Context, userID string, id uint, changes map[string]interface{}) (*db_models.Project, error)
	Delete(ctx context.Context, userID string, id uint) (bool, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

func (p *projectRepository) FindByUser(ctx context.Context, userID string) ([]db_models.Project, error) {
	return p.FindRecentByUser(ctx, userID, -1)
}

// FindRecentByUser orders by last update; a negative limit means no limit.
func (p *projectRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.Project, error) {
	var projects []db_models.Project
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (p *projectRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&db_models.Project{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (p *projectRepository) FindByID(ctx context.Context, userID string, id uint) (*db_models.Project, error) {
	var project db_models.Project
	err := p.db.WithContext(ctx).First(&project, "id = ? AND user_id = ?", id, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (p *projectRepository) Create(ctx context.Context, project *db_models.Project) error {
	return p.db.WithContext(ctx).Create(project).Error
}

// Update merges only the supplied columns and always bumps updated_at.
// Returns (nil, nil) when the project does not exist for userID.
func (p *projectRepository) Update(ctx context.Context, userID string, id uint, changes map[string]interface{}) (*db_models.Project, error) {
	values := withUpdatedAt(p.db, changes)

	res := p.db.WithContext(ctx).Model(&db_models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return p.FindByID(ctx, userID, id)
}

// Delete removes the project and its tasks in one transaction.
func (p *projectRepository) Delete(ctx context.Context, userID string, id uint) (bool, error) {
	deleted := false
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&db_models.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("project_id = ? AND user_id = ?", id, userID).Delete(&db_models.Task{}).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func withUpdatedAt(db *gorm.DB, changes map[string]interface{}) map[string]interface{} {
	values := make(map[string]interface{}, len(changes)+1)
	for k, v := range changes {
		values[k] = v
	}
	values["updated_at"] = db.NowFunc()
	return values
}
