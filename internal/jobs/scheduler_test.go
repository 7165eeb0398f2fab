package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"luminous/internal/config"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type stubSessions struct {
	services.SessionServiceInterface
	swept atomic.Int32
	n     int64
	err   error
}

func (s *stubSessions) SweepExpired(ctx context.Context) (int64, error) {
	s.swept.Add(1)
	return s.n, s.err
}

type stubLimiter struct {
	seen time.Time
}

func (l *stubLimiter) Cleanup(now time.Time) int {
	l.seen = now
	return 2
}

func testConfig(spec string) *config.Config {
	return &config.Config{Location: time.UTC, SessionSweepSpec: spec}
}

func TestNewSchedulerRegistersJobs(t *testing.T) {
	clock := utils.NewManualClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))

	s, err := NewScheduler(testConfig("@every 1h"), clock, &stubSessions{}, &stubLimiter{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Jobs())

	s, err = NewScheduler(testConfig("@every 1h"), clock, &stubSessions{}, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Jobs())
}

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	clock := utils.NewManualClock(time.Now())
	_, err := NewScheduler(testConfig("every now and then"), clock, &stubSessions{}, nil, zap.NewNop())
	assert.ErrorContains(t, err, "SESSION_SWEEP_SPEC")
}

func TestSweepSessionsLogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	clock := utils.NewManualClock(time.Now())

	sessions := &stubSessions{n: 3}
	s, err := NewScheduler(testConfig("@every 1h"), clock, sessions, nil, zap.New(core))
	require.NoError(t, err)

	s.SweepSessions()
	assert.Equal(t, int32(1), sessions.swept.Load())
	assert.Equal(t, 1, logs.FilterMessage("expired sessions removed").Len())

	sessions.err = errors.New("db down")
	s.SweepSessions()
	assert.Equal(t, 1, logs.FilterMessage("session sweep failed").Len())
}

func TestPruneLimiterUsesClock(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter := &stubLimiter{}

	s, err := NewScheduler(testConfig("@every 1h"), utils.NewManualClock(now), &stubSessions{}, limiter, zap.NewNop())
	require.NoError(t, err)

	s.PruneLimiter()
	assert.Equal(t, now, limiter.seen)
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(testConfig("@every 1h"), utils.NewManualClock(time.Now()), &stubSessions{}, nil, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	require.NoError(t, s.Stop(context.Background()))
}
