package services

import (
	"context"
	"strconv"

	"luminous/internal/models/db_models"
	"luminous/internal/models/request_models"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

const (
	DefaultPostLimit = 20
	MaxPostLimit     = 100
)

type CommunityServiceInterface interface {
	// GetCommunityPosts returns the newest posts. An empty limit means 20.
	GetCommunityPosts(ctx context.Context, limit string) ([]db_models.CommunityPost, error)
	GetUserPosts(ctx context.Context, userID string) ([]db_models.CommunityPost, error)
	CreatePost(ctx context.Context, userID string, req request_models.CreateCommunityPostRequest) (*db_models.CommunityPost, error)
}

type CommunityService struct {
	communityRepo repositories.CommunityRepository
}

func NewCommunityService(communityRepo repositories.CommunityRepository) CommunityServiceInterface {
	return &CommunityService{
		communityRepo: communityRepo,
	}
}

func (c *CommunityService) GetCommunityPosts(ctx context.Context, limit string) ([]db_models.CommunityPost, error) {
	n := DefaultPostLimit
	if limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 || parsed > MaxPostLimit {
			return nil, utils.NewValidationError("limit", "must be an integer between 1 and "+strconv.Itoa(MaxPostLimit))
		}
		n = parsed
	}

	posts, err := c.communityRepo.FindRecent(ctx, n)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return posts, nil
}

func (c *CommunityService) GetUserPosts(ctx context.Context, userID string) ([]db_models.CommunityPost, error) {
	posts, err := c.communityRepo.FindRecentByUser(ctx, userID, -1)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return posts, nil
}

func (c *CommunityService) CreatePost(ctx context.Context, userID string, req request_models.CreateCommunityPostRequest) (*db_models.CommunityPost, error) {
	post := &db_models.CommunityPost{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := c.communityRepo.Create(ctx, post); err != nil {
		return nil, utils.DatabaseError(err)
	}
	return post, nil
}
