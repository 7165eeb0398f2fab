package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"luminous/internal/infra"
	"luminous/internal/models/db_models"
	"luminous/pkg/utils"
)

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*gorm.DB, *utils.ManualClock) {
	t.Helper()
	clock := utils.NewManualClock(testNow)
	db, err := infra.OpenGorm(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), clock)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db, clock
}

func seedUser(t *testing.T, db *gorm.DB, id string) *db_models.User {
	t.Helper()
	email := id + "@example.com"
	user := &db_models.User{ID: id, Email: &email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }
