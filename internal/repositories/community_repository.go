package repositories

import (
	"context"

	"gorm.io/gorm"
	"luminous/internal/models/db_models"
)

type CommunityRepository interface {
	FindRecent(ctx context.Context, limit int) ([]db_models.CommunityPost, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.CommunityPost, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, post *db_models.CommunityPost) error
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{
		db: db,
	}
}

func (c *communityRepository) FindRecent(ctx context.Context, limit int) ([]db_models.CommunityPost, error) {
	var posts []db_models.CommunityPost
	err := c.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (c *communityRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.CommunityPost, error) {
	var posts []db_models.CommunityPost
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (c *communityRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&db_models.CommunityPost{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (c *communityRepository) Create(ctx context.Context, post *db_models.CommunityPost) error {
	post.LikesCount = 0
	return c.db.WithContext(ctx).Create(post).Error
}
