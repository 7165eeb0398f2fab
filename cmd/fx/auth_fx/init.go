package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"luminous/internal/config"
	"luminous/internal/repositories"
	"luminous/internal/services"
	"luminous/pkg/metrics"
	"luminous/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideSessionRepo,
	provideUserService, provideSessionService, provideAdminService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideUserService(userRepo repositories.UserRepository, log *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, log)
}

func provideSessionService(
	cfg *config.Config,
	clock utils.Clock,
	sessionRepo repositories.SessionRepository,
	userService services.UserServiceInterface,
	m *metrics.Metrics,
	log *zap.Logger,
) services.SessionServiceInterface {
	return services.NewSessionService(cfg, clock, sessionRepo, userService, m, log)
}

func provideAdminService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	habitRepo repositories.HabitRepository,
	communityRepo repositories.CommunityRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(cfg, userRepo, projectRepo, habitRepo, communityRepo)
}
