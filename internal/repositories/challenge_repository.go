package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"luminous/internal/models/db_models"
)

type ChallengeRepository interface {
	FindActive(ctx context.Context, now time.Time) ([]db_models.Challenge, error)
	FindByID(ctx context.Context, id uint) (*db_models.Challenge, error)
	Create(ctx context.Context, challenge *db_models.Challenge) error

	// Join inserts the participation unless (userID, challengeID) already
	// exists. created reports whether this call inserted the row.
	Join(ctx context.Context, userID string, challengeID uint) (participation *db_models.ChallengeParticipation, created bool, err error)
	FindParticipationsByUser(ctx context.Context, userID string) ([]db_models.ChallengeParticipation, error)
	FindParticipation(ctx context.Context, userID string, challengeID uint) (*db_models.ChallengeParticipation, error)
	FindParticipationByID(ctx context.Context, userID string, id uint) (*db_models.ChallengeParticipation, error)
	UpdateProgress(ctx context.Context, userID string, id uint, progress int, completed bool) (*db_models.ChallengeParticipation, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{
		db: db,
	}
}

// FindActive returns flagged-active challenges whose window contains now,
// soonest ending first.
func (c *challengeRepository) FindActive(ctx context.Context, now time.Time) ([]db_models.Challenge, error) {
	var challenges []db_models.Challenge
	now = now.UTC()
	err := c.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("end_date ASC, id ASC").
		Find(&challenges).Error
	return challenges, err
}

func (c *challengeRepository) FindByID(ctx context.Context, id uint) (*db_models.Challenge, error) {
	var challenge db_models.Challenge
	err := c.db.WithContext(ctx).First(&challenge, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &challenge, nil
}

func (c *challengeRepository) Create(ctx context.Context, challenge *db_models.Challenge) error {
	challenge.StartDate = challenge.StartDate.UTC()
	challenge.EndDate = challenge.EndDate.UTC()
	return c.db.WithContext(ctx).Create(challenge).Error
}

func (c *challengeRepository) Join(ctx context.Context, userID string, challengeID uint) (*db_models.ChallengeParticipation, bool, error) {
	participation := db_models.ChallengeParticipation{
		ChallengeID: challengeID,
		UserID:      userID,
	}

	// The unique index settles concurrent joins; the loser inserts nothing.
	res := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoNothing: true,
	}).Create(&participation)
	if res.Error != nil {
		return nil, false, res.Error
	}

	existing, err := c.FindParticipation(ctx, userID, challengeID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return existing, res.RowsAffected > 0, nil
}

func (c *challengeRepository) FindParticipationsByUser(ctx context.Context, userID string) ([]db_models.ChallengeParticipation, error) {
	var participations []db_models.ChallengeParticipation
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at DESC, id DESC").
		Find(&participations).Error
	return participations, err
}

func (c *challengeRepository) FindParticipation(ctx context.Context, userID string, challengeID uint) (*db_models.ChallengeParticipation, error) {
	return c.findParticipation(ctx, "user_id = ? AND challenge_id = ?", userID, challengeID)
}

func (c *challengeRepository) FindParticipationByID(ctx context.Context, userID string, id uint) (*db_models.ChallengeParticipation, error) {
	return c.findParticipation(ctx, "user_id = ? AND id = ?", userID, id)
}

func (c *challengeRepository) findParticipation(ctx context.Context, query string, args ...interface{}) (*db_models.ChallengeParticipation, error) {
	var participation db_models.ChallengeParticipation
	err := c.db.WithContext(ctx).Where(query, args...).First(&participation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &participation, nil
}

func (c *challengeRepository) UpdateProgress(ctx context.Context, userID string, id uint, progress int, completed bool) (*db_models.ChallengeParticipation, error) {
	res := c.db.WithContext(ctx).Model(&db_models.ChallengeParticipation{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"progress": progress, "completed": completed})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return c.FindParticipationByID(ctx, userID, id)
}
