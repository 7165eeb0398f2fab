package community_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"luminous/internal/repositories"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

var Module = fx.Provide(
	provideCommunityRepo, provideChallengeRepo,
	provideCommunityService, provideChallengeService)

func provideCommunityRepo(db *gorm.DB) repositories.CommunityRepository {
	return repositories.NewCommunityRepository(db)
}

func provideChallengeRepo(db *gorm.DB) repositories.ChallengeRepository {
	return repositories.NewChallengeRepository(db)
}

func provideCommunityService(communityRepo repositories.CommunityRepository) services.CommunityServiceInterface {
	return services.NewCommunityService(communityRepo)
}

func provideChallengeService(clock utils.Clock, challengeRepo repositories.ChallengeRepository, log *zap.Logger) services.ChallengeServiceInterface {
	return services.NewChallengeService(clock, challengeRepo, log)
}
