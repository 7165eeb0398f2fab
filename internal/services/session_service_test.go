package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"luminous/internal/repositories"
	"luminous/pkg/metrics"
	"luminous/pkg/utils"
)

func (e *testEnv) sessionService() SessionServiceInterface {
	return NewSessionService(e.cfg, e.clock, repositories.NewSessionRepository(e.db), e.userService(), metrics.New(), zap.NewNop())
}

func (e *testEnv) identityToken(t *testing.T, sub, email string) string {
	t.Helper()
	token, err := utils.CreateIdentityToken(e.cfg.SessionSecret, utils.IdentityClaims{
		Email:            email,
		FirstName:        "Ada",
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub},
	}, e.clock.Now(), 10*time.Minute)
	require.NoError(t, err)
	return token
}

func TestSessionService_LoginAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	ctx := context.Background()

	result, err := svc.Login(ctx, env.identityToken(t, "alice", "alice@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "alice", result.User.ID)
	assert.Equal(t, "alice@example.com", *result.User.Email)
	assert.True(t, result.ExpiresAt.Equal(testNow.Add(time.Hour)))

	user, err := svc.Authenticate(ctx, result.SessionID, "")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)

	require.NoError(t, svc.Logout(ctx, result.SessionID))
	_, err = svc.Authenticate(ctx, result.SessionID, "")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestSessionService_ExpiredSessionIsRemoved(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	ctx := context.Background()

	result, err := svc.Login(ctx, env.identityToken(t, "alice", ""))
	require.NoError(t, err)

	env.clock.Advance(time.Hour)
	_, err = svc.Authenticate(ctx, result.SessionID, "")
	assert.ErrorIs(t, err, utils.ErrInvalidSession)

	session, err := repositories.NewSessionRepository(env.db).FindByID(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_BearerUpsertsUser(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "", env.identityToken(t, "bob", "bob@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "bob", user.ID)

	stored, err := env.userService().GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Ada", *stored.FirstName)

	// a stale cookie does not block a valid bearer token
	user, err = svc.Authenticate(ctx, "no-such-session", env.identityToken(t, "bob", ""))
	require.NoError(t, err)
	assert.Equal(t, "bob", user.ID)
}

func TestSessionService_RejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.Login(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	forged, err := utils.CreateIdentityToken([]byte("other-secret"), utils.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "mallory"},
	}, env.clock.Now(), time.Minute)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "", forged)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	expired := env.identityToken(t, "alice", "")
	env.clock.Advance(11 * time.Minute)
	_, err = svc.Login(ctx, expired)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestSessionService_SweepExpired(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	ctx := context.Background()

	_, err := svc.Login(ctx, env.identityToken(t, "alice", ""))
	require.NoError(t, err)
	env.clock.Advance(30 * time.Minute)
	_, err = svc.Login(ctx, env.identityToken(t, "bob", ""))
	require.NoError(t, err)

	env.clock.Advance(45 * time.Minute)
	removed, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestSessionService_BearerWritesOnlyOnProfileChange(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "", env.identityToken(t, "bob", "bob@example.com"))
	require.NoError(t, err)
	first, err := env.userService().GetUser(ctx, "bob")
	require.NoError(t, err)

	env.clock.Advance(time.Minute)
	_, err = svc.Authenticate(ctx, "", env.identityToken(t, "bob", "bob@example.com"))
	require.NoError(t, err)
	same, err := env.userService().GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, first.UpdatedAt.Equal(same.UpdatedAt), "unchanged claims must not touch the row")

	env.clock.Advance(time.Minute)
	user, err := svc.Authenticate(ctx, "", env.identityToken(t, "bob", "robert@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", *user.Email)
	changed, err := env.userService().GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, changed.UpdatedAt.After(first.UpdatedAt))
}
