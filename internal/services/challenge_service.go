package services

import (
	"context"

	"go.uber.org/zap"
	"luminous/internal/models/db_models"
	"luminous/internal/models/request_models"
	"luminous/internal/models/response_models"
	"luminous/internal/progress"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

type ChallengeServiceInterface interface {
	GetActiveChallenges(ctx context.Context) ([]db_models.Challenge, error)
	GetChallenge(ctx context.Context, id uint) (*db_models.Challenge, error)
	CreateChallenge(ctx context.Context, req request_models.CreateChallengeRequest) (*db_models.Challenge, error)

	// JoinChallenge is idempotent: joining twice returns the first
	// participation and created=false.
	JoinChallenge(ctx context.Context, userID string, challengeID uint) (participation *db_models.ChallengeParticipation, created bool, err error)
	GetUserParticipations(ctx context.Context, userID string) ([]db_models.ChallengeParticipation, error)
	GetChallengeStatus(ctx context.Context, userID string, challengeID uint) (*response_models.ChallengeStatusResponse, error)
	UpdateProgress(ctx context.Context, userID string, participationID uint, req request_models.UpdateChallengeProgressRequest) (*db_models.ChallengeParticipation, error)
}

type ChallengeService struct {
	clock         utils.Clock
	challengeRepo repositories.ChallengeRepository
	logger        *zap.Logger
}

func NewChallengeService(clock utils.Clock, challengeRepo repositories.ChallengeRepository, logger *zap.Logger) ChallengeServiceInterface {
	return &ChallengeService{
		clock:         clock,
		challengeRepo: challengeRepo,
		logger:        logger,
	}
}

func (c *ChallengeService) GetActiveChallenges(ctx context.Context) ([]db_models.Challenge, error) {
	challenges, err := c.challengeRepo.FindActive(ctx, c.clock.Now())
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return challenges, nil
}

func (c *ChallengeService) GetChallenge(ctx context.Context, id uint) (*db_models.Challenge, error) {
	challenge, err := c.challengeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if challenge == nil {
		return nil, utils.ErrChallengeNotFound
	}
	return challenge, nil
}

func (c *ChallengeService) CreateChallenge(ctx context.Context, req request_models.CreateChallengeRequest) (*db_models.Challenge, error) {
	challenge := &db_models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		challenge.IsActive = *req.IsActive
	}

	if err := c.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, utils.DatabaseError(err)
	}
	c.logger.Info("challenge created", zap.Uint("challenge_id", challenge.ID), zap.String("title", challenge.Title))
	return challenge, nil
}

func (c *ChallengeService) JoinChallenge(ctx context.Context, userID string, challengeID uint) (*db_models.ChallengeParticipation, bool, error) {
	challenge, err := c.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, false, err
	}

	existing, err := c.challengeRepo.FindParticipation(ctx, userID, challengeID)
	if err != nil {
		return nil, false, utils.DatabaseError(err)
	}
	if existing != nil {
		return existing, false, nil
	}

	if !isOpen(challenge, c.clock) {
		return nil, false, utils.NewValidationError("challenge", "is not open for joining")
	}

	participation, created, err := c.challengeRepo.Join(ctx, userID, challengeID)
	if err != nil {
		return nil, false, utils.DatabaseError(err)
	}
	return participation, created, nil
}

func (c *ChallengeService) GetUserParticipations(ctx context.Context, userID string) ([]db_models.ChallengeParticipation, error) {
	participations, err := c.challengeRepo.FindParticipationsByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return participations, nil
}

func (c *ChallengeService) GetChallengeStatus(ctx context.Context, userID string, challengeID uint) (*response_models.ChallengeStatusResponse, error) {
	if _, err := c.GetChallenge(ctx, challengeID); err != nil {
		return nil, err
	}

	participations, err := c.challengeRepo.FindParticipationsByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return &response_models.ChallengeStatusResponse{
		ChallengeID:         challengeID,
		ParticipationStatus: progress.ForChallenge(participations, challengeID),
	}, nil
}

// UpdateProgress sets progress; completed follows progress == 100 unless the
// request says otherwise.
func (c *ChallengeService) UpdateProgress(ctx context.Context, userID string, participationID uint, req request_models.UpdateChallengeProgressRequest) (*db_models.ChallengeParticipation, error) {
	if req.Progress == nil {
		return nil, utils.NewValidationError("progress", "is required")
	}
	completed := *req.Progress == 100
	if req.Completed != nil {
		completed = *req.Completed
	}

	participation, err := c.challengeRepo.UpdateProgress(ctx, userID, participationID, *req.Progress, completed)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if participation == nil {
		return nil, utils.ErrParticipationNotFound
	}
	return participation, nil
}

func isOpen(challenge *db_models.Challenge, clock utils.Clock) bool {
	now := clock.Now()
	return challenge.IsActive && !now.Before(challenge.StartDate) && !now.After(challenge.EndDate)
}
