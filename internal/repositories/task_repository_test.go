package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luminous/internal/models/db_models"
)

func TestTaskRepository_CRUD(t *testing.T) {
	db, clock := setupTestDB(t)
	seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	project := &db_models.Project{UserID: "alice", Name: "p"}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), project))

	repo := NewTaskRepository(db)
	ctx := context.Background()

	older := &db_models.Task{ProjectID: project.ID, UserID: "alice", Title: "older"}
	require.NoError(t, repo.Create(ctx, older))
	assert.Equal(t, db_models.PriorityMedium, older.Priority)
	assert.False(t, older.Completed)

	clock.Advance(time.Minute)
	newer := &db_models.Task{ProjectID: project.ID, UserID: "alice", Title: "newer", Priority: db_models.PriorityHigh}
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.FindByProject(ctx, "alice", project.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Title)

	none, err := repo.FindByProject(ctx, "bob", project.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	done, err := repo.Update(ctx, "alice", older.ID, map[string]interface{}{"completed": true})
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.True(t, done.Completed)
	assert.Equal(t, "older", done.Title)

	missing, err := repo.Update(ctx, "bob", older.ID, map[string]interface{}{"completed": false})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, "bob", newer.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, "alice", newer.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.FindByID(ctx, "alice", newer.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
