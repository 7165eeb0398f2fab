package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"luminous/internal/config"
	"luminous/internal/infra"
	"luminous/internal/models/db_models"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	db    *gorm.DB
	clock *utils.ManualClock
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := utils.NewManualClock(testNow)
	db, err := infra.OpenGorm(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), clock)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &testEnv{
		db:    db,
		clock: clock,
		cfg: &config.Config{
			Location:        time.UTC,
			SessionSecret:   []byte("test-secret"),
			SessionTTL:      time.Hour,
			UpstreamTimeout: 200 * time.Millisecond,
			PinDailyQuote:   true,
			AdminUserIDs:    []string{"admin"},
		},
	}
}

func (e *testEnv) seedUser(t *testing.T, id string) {
	t.Helper()
	_, err := repositories.NewUserRepository(e.db).Upsert(context.Background(), &db_models.User{ID: id})
	require.NoError(t, err)
}

func (e *testEnv) projectService() ProjectServiceInterface {
	return NewProjectService(repositories.NewProjectRepository(e.db), repositories.NewTaskRepository(e.db))
}

func (e *testEnv) taskService() TaskServiceInterface {
	return NewTaskService(repositories.NewTaskRepository(e.db), repositories.NewProjectRepository(e.db))
}

func (e *testEnv) habitService() HabitServiceInterface {
	return NewHabitService(e.clock, repositories.NewHabitRepository(e.db), repositories.NewHabitEntryRepository(e.db))
}

func (e *testEnv) challengeService() ChallengeServiceInterface {
	return NewChallengeService(e.clock, repositories.NewChallengeRepository(e.db), zap.NewNop())
}

func (e *testEnv) userService() UserServiceInterface {
	return NewUserService(repositories.NewUserRepository(e.db), zap.NewNop())
}

func ptr[T any](v T) *T { return &v }
