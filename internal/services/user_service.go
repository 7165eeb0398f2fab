package services

import (
	"context"

	"go.uber.org/zap"
	"luminous/internal/models/db_models"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

type UserServiceInterface interface {
	GetUser(ctx context.Context, id string) (*db_models.User, error)
	UpsertFromClaims(ctx context.Context, claims *utils.IdentityClaims) (*db_models.User, error)
	// ResolveFromClaims returns the stored user and writes only when the user
	// is new or the claimed profile differs from the stored one.
	ResolveFromClaims(ctx context.Context, claims *utils.IdentityClaims) (*db_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (u *UserService) GetUser(ctx context.Context, id string) (*db_models.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// UpsertFromClaims creates the user on first authentication and refreshes
// the profile fields on every later one.
func (u *UserService) UpsertFromClaims(ctx context.Context, claims *utils.IdentityClaims) (*db_models.User, error) {
	user, err := u.userRepo.Upsert(ctx, &db_models.User{
		ID:              claims.Subject,
		Email:           optional(claims.Email),
		FirstName:       optional(claims.FirstName),
		LastName:        optional(claims.LastName),
		ProfileImageURL: optional(claims.ProfileImageURL),
	})
	if err != nil {
		u.logger.Error("upsert user failed", zap.String("user_id", claims.Subject), zap.Error(err))
		return nil, utils.DatabaseError(err)
	}
	return user, nil
}

func (u *UserService) ResolveFromClaims(ctx context.Context, claims *utils.IdentityClaims) (*db_models.User, error) {
	user, err := u.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if user != nil && matchesClaims(user, claims) {
		return user, nil
	}
	return u.UpsertFromClaims(ctx, claims)
}

func matchesClaims(user *db_models.User, claims *utils.IdentityClaims) bool {
	return sameOptional(user.Email, claims.Email) &&
		sameOptional(user.FirstName, claims.FirstName) &&
		sameOptional(user.LastName, claims.LastName) &&
		sameOptional(user.ProfileImageURL, claims.ProfileImageURL)
}

func sameOptional(stored *string, claimed string) bool {
	if stored == nil {
		return claimed == ""
	}
	return *stored == claimed
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
