package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"luminous/internal/models/db_models"
)

type SessionRepository interface {
	Create(ctx context.Context, session *db_models.Session) error
	FindByID(ctx context.Context, sid string) (*db_models.Session, error)
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

func (s *sessionRepository) Create(ctx context.Context, session *db_models.Session) error {
	session.Expire = session.Expire.UTC()
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *sessionRepository) FindByID(ctx context.Context, sid string) (*db_models.Session, error) {
	var session db_models.Session
	err := s.db.WithContext(ctx).First(&session, "sid = ?", sid).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (s *sessionRepository) Delete(ctx context.Context, sid string) error {
	return s.db.WithContext(ctx).Where("sid = ?", sid).Delete(&db_models.Session{}).Error
}

func (s *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expire <= ?", now.UTC()).Delete(&db_models.Session{})
	return res.RowsAffected, res.Error
}
