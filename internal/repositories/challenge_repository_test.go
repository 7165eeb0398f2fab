package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luminous/internal/models/db_models"
)

func seedChallenge(t *testing.T, repo ChallengeRepository, title string, start, end time.Time, active bool) *db_models.Challenge {
	t.Helper()
	challenge := &db_models.Challenge{
		Title: title, Description: "d", Category: "mindfulness",
		StartDate: start, EndDate: end, IsActive: active,
	}
	require.NoError(t, repo.Create(context.Background(), challenge))
	return challenge
}

func TestChallengeRepository_FindActive(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewChallengeRepository(db)
	day := 24 * time.Hour

	current := seedChallenge(t, repo, "current", testNow.Add(-day), testNow.Add(day), true)
	seedChallenge(t, repo, "ended", testNow.Add(-3*day), testNow.Add(-day), true)
	seedChallenge(t, repo, "future", testNow.Add(day), testNow.Add(3*day), true)
	seedChallenge(t, repo, "disabled", testNow.Add(-day), testNow.Add(day), false)
	edge := seedChallenge(t, repo, "ends now", testNow.Add(-day), testNow, true)

	active, err := repo.FindActive(context.Background(), testNow)
	require.NoError(t, err)

	var titles []string
	for _, c := range active {
		titles = append(titles, c.Title)
	}
	assert.ElementsMatch(t, []string{current.Title, edge.Title}, titles)
	assert.Equal(t, edge.Title, active[0].Title)
}

func TestChallengeRepository_JoinIsIdempotent(t *testing.T) {
	db, _ := setupTestDB(t)
	seedUser(t, db, "alice")
	repo := NewChallengeRepository(db)
	ctx := context.Background()
	challenge := seedChallenge(t, repo, "c", testNow.Add(-time.Hour), testNow.Add(time.Hour), true)

	first, created, err := repo.Join(ctx, "alice", challenge.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Zero(t, first.Progress)
	assert.False(t, first.Completed)

	second, created, err := repo.Join(ctx, "alice", challenge.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	list, err := repo.FindParticipationsByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChallengeRepository_ConcurrentJoinsKeepOneRow(t *testing.T) {
	db, _ := setupTestDB(t)
	seedUser(t, db, "alice")
	repo := NewChallengeRepository(db)
	challenge := seedChallenge(t, repo, "c", testNow.Add(-time.Hour), testNow.Add(time.Hour), true)

	// sqlite serializes writers; one connection avoids "database is locked"
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repo.Join(context.Background(), "alice", challenge.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int64
	db.Model(&db_models.ChallengeParticipation{}).Where("user_id = ?", "alice").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestChallengeRepository_UpdateProgress(t *testing.T) {
	db, _ := setupTestDB(t)
	seedUser(t, db, "alice")
	repo := NewChallengeRepository(db)
	ctx := context.Background()
	challenge := seedChallenge(t, repo, "c", testNow.Add(-time.Hour), testNow.Add(time.Hour), true)

	p, _, err := repo.Join(ctx, "alice", challenge.ID)
	require.NoError(t, err)

	updated, err := repo.UpdateProgress(ctx, "alice", p.ID, 100, true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 100, updated.Progress)
	assert.True(t, updated.Completed)

	other, err := repo.UpdateProgress(ctx, "bob", p.ID, 5, false)
	require.NoError(t, err)
	assert.Nil(t, other)

	byChallenge, err := repo.FindParticipation(ctx, "alice", challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, byChallenge.Progress)
}
