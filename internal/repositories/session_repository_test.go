package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"luminous/internal/models/db_models"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	live := &db_models.Session{SID: "live", Sess: datatypes.JSON(`{"sub":"alice"}`), Expire: testNow.Add(time.Hour)}
	stale := &db_models.Session{SID: "stale", Sess: datatypes.JSON(`{"sub":"bob"}`), Expire: testNow.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, stale))

	got, err := repo.FindByID(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"sub":"alice"}`, string(got.Sess))

	removed, err := repo.DeleteExpired(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	gone, err := repo.FindByID(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, repo.Delete(ctx, "live"))
	gone, err = repo.FindByID(ctx, "live")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
