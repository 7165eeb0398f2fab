package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"luminous/internal/models/db_models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	Upsert(ctx context.Context, user *db_models.User) (*db_models.User, error)
	FindAll(ctx context.Context) ([]db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// Upsert inserts the user or overwrites its profile fields, keyed by id.
// created_at of an existing row is kept.
func (u *userRepository) Upsert(ctx context.Context, user *db_models.User) (*db_models.User, error) {
	row := *user
	err := u.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, user.ID)
}

func (u *userRepository) FindAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}
