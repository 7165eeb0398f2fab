package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"luminous/internal/config"
	"luminous/internal/models/db_models"
	"luminous/internal/repositories"
	"luminous/pkg/metrics"
	"luminous/pkg/utils"
)

type SessionServiceInterface interface {
	// Login exchanges an identity token for a new session.
	Login(ctx context.Context, token string) (*LoginResult, error)
	// Authenticate resolves a session id, or failing that a bearer identity
	// token, to the calling user.
	Authenticate(ctx context.Context, sessionID, bearerToken string) (*db_models.User, error)
	Logout(ctx context.Context, sessionID string) error
	SweepExpired(ctx context.Context) (int64, error)
}

type LoginResult struct {
	SessionID string
	ExpiresAt time.Time
	User      *db_models.User
}

// sessionData is what sessions.sess holds.
type sessionData struct {
	UserID   string    `json:"userId"`
	Email    string    `json:"email,omitempty"`
	LoggedIn time.Time `json:"loggedInAt"`
}

type SessionService struct {
	cfg         *config.Config
	clock       utils.Clock
	sessionRepo repositories.SessionRepository
	userService UserServiceInterface
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewSessionService(
	cfg *config.Config,
	clock utils.Clock,
	sessionRepo repositories.SessionRepository,
	userService UserServiceInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) SessionServiceInterface {
	return &SessionService{
		cfg:         cfg,
		clock:       clock,
		sessionRepo: sessionRepo,
		userService: userService,
		metrics:     m,
		logger:      logger,
	}
}

func (s *SessionService) Login(ctx context.Context, token string) (*LoginResult, error) {
	now := s.clock.Now()
	claims, err := utils.ValidateIdentityToken(s.cfg.SessionSecret, token, now)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.UpsertFromClaims(ctx, claims)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(sessionData{UserID: user.ID, Email: claims.Email, LoggedIn: now})
	if err != nil {
		return nil, err
	}

	session := &db_models.Session{
		SID:    uuid.NewString(),
		Sess:   datatypes.JSON(payload),
		Expire: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, utils.DatabaseError(err)
	}

	s.logger.Info("session opened", zap.String("user_id", user.ID))
	return &LoginResult{SessionID: session.SID, ExpiresAt: session.Expire, User: user}, nil
}

func (s *SessionService) Authenticate(ctx context.Context, sessionID, bearerToken string) (*db_models.User, error) {
	if sessionID != "" {
		user, err := s.fromSession(ctx, sessionID)
		if err == nil || bearerToken == "" {
			return user, err
		}
	}
	if bearerToken == "" {
		return nil, utils.ErrUnauthenticated
	}

	claims, err := utils.ValidateIdentityToken(s.cfg.SessionSecret, bearerToken, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.userService.ResolveFromClaims(ctx, claims)
}

func (s *SessionService) fromSession(ctx context.Context, sessionID string) (*db_models.User, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if session == nil {
		return nil, utils.ErrInvalidSession
	}

	if !s.clock.Now().Before(session.Expire) {
		if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("delete expired session failed", zap.Error(err))
		}
		return nil, utils.ErrInvalidSession
	}

	var data sessionData
	if err := json.Unmarshal(session.Sess, &data); err != nil || data.UserID == "" {
		return nil, utils.ErrInvalidSession
	}

	user, err := s.userService.GetUser(ctx, data.UserID)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, utils.ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return utils.DatabaseError(err)
	}
	return nil
}

func (s *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.sessionRepo.DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, utils.DatabaseError(err)
	}
	s.metrics.RecordSessionsSwept(n)
	return n, nil
}
