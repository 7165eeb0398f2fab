package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luminous/internal/models/db_models"
	"luminous/internal/models/request_models"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

func (e *testEnv) adminService() AdminServiceInterface {
	return NewAdminService(e.cfg,
		repositories.NewUserRepository(e.db),
		repositories.NewProjectRepository(e.db),
		repositories.NewHabitRepository(e.db),
		repositories.NewCommunityRepository(e.db))
}

func TestAdminService_IsAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.AdminEmails = []string{"boss@example.com"}
	svc := env.adminService()

	assert.True(t, svc.IsAdmin(&db_models.User{ID: "admin"}))
	assert.True(t, svc.IsAdmin(&db_models.User{ID: "x", Email: ptr("Boss@example.com")}))
	assert.False(t, svc.IsAdmin(&db_models.User{ID: "x"}))
	assert.False(t, svc.IsAdmin(nil))
}

func TestAdminService_UserProfile(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice")
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		_, err := env.projectService().CreateProject(ctx, "alice", request_models.CreateProjectRequest{Name: name})
		require.NoError(t, err)
	}
	habit, err := env.habitService().CreateHabit(ctx, "alice", request_models.CreateHabitRequest{Name: "Sit", Category: "meditation"})
	require.NoError(t, err)
	_, err = env.habitService().CreateHabit(ctx, "alice", request_models.CreateHabitRequest{Name: "Run", Category: "exercise"})
	require.NoError(t, err)
	require.NoError(t, env.habitService().DeleteHabit(ctx, "alice", habit.ID))

	profile, err := env.adminService().GetUserProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.ID)
	assert.Equal(t, 2, profile.Stats.Projects)
	assert.Equal(t, 1, profile.Stats.Habits)
	assert.Equal(t, 0, profile.Stats.Posts)
	assert.Len(t, profile.RecentActivity.Projects, 2)
	assert.Len(t, profile.RecentActivity.Habits, 1)

	_, err = env.adminService().GetUserProfile(ctx, "ghost")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	users, err := env.adminService().GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
