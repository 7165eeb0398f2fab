package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"luminous/internal/config"
	"luminous/internal/models/db_models"
	"luminous/internal/models/response_models"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

const recentActivityLimit = 5

type AdminServiceInterface interface {
	IsAdmin(user *db_models.User) bool
	GetAllUsers(ctx context.Context) ([]db_models.User, error)
	GetUserProfile(ctx context.Context, userID string) (*response_models.UserProfileResponse, error)
}

type AdminService struct {
	cfg           *config.Config
	userRepo      repositories.UserRepository
	projectRepo   repositories.ProjectRepository
	habitRepo     repositories.HabitRepository
	communityRepo repositories.CommunityRepository
}

func NewAdminService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	habitRepo repositories.HabitRepository,
	communityRepo repositories.CommunityRepository,
) AdminServiceInterface {
	return &AdminService{
		cfg:           cfg,
		userRepo:      userRepo,
		projectRepo:   projectRepo,
		habitRepo:     habitRepo,
		communityRepo: communityRepo,
	}
}

func (a *AdminService) IsAdmin(user *db_models.User) bool {
	if user == nil {
		return false
	}
	return a.cfg.IsAdmin(user.ID, user.Email)
}

func (a *AdminService) GetAllUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := a.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return users, nil
}

// GetUserProfile loads the user, per-entity counts and the latest few rows of
// each kind. The six reads are independent and run concurrently.
func (a *AdminService) GetUserProfile(ctx context.Context, userID string) (*response_models.UserProfileResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	profile := &response_models.UserProfileResponse{User: *user}
	var projects, habits, posts int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = a.projectRepo.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		habits, err = a.habitRepo.CountActiveByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		posts, err = a.communityRepo.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.RecentActivity.Projects, err = a.projectRepo.FindRecentByUser(gctx, userID, recentActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		profile.RecentActivity.Habits, err = a.habitRepo.FindRecentByUser(gctx, userID, recentActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		profile.RecentActivity.Posts, err = a.communityRepo.FindRecentByUser(gctx, userID, recentActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.DatabaseError(err)
	}

	profile.Stats = response_models.UserStats{
		Projects: int(projects),
		Habits:   int(habits),
		Posts:    int(posts),
	}
	return profile, nil
}
