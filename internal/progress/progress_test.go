package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"luminous/internal/models/db_models"
)

var today = time.Date(2026, time.October, 15, 14, 30, 0, 0, time.UTC)

func entryOn(habitID uint, t time.Time) db_models.HabitEntry {
	return db_models.HabitEntry{HabitID: habitID, UserID: "u1", CompletedAt: t}
}

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestForProject(t *testing.T) {
	tests := []struct {
		name  string
		tasks []db_models.Task
		want  ProjectProgress
	}{
		{"no tasks", nil, ProjectProgress{Completed: 0, Total: 0, Percent: 0}},
		{"none done", []db_models.Task{{}, {}}, ProjectProgress{Completed: 0, Total: 2, Percent: 0}},
		{"two of three", []db_models.Task{{Completed: true}, {Completed: true}, {}}, ProjectProgress{Completed: 2, Total: 3, Percent: 66.67}},
		{"all done", []db_models.Task{{Completed: true}}, ProjectProgress{Completed: 1, Total: 1, Percent: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForProject(tt.tasks)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Percent, 0.0)
			assert.LessOrEqual(t, got.Percent, 100.0)
		})
	}
}

func TestIsHabitCompletedOn_DayBoundaries(t *testing.T) {
	dayStart := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	lastInstant := time.Date(2026, time.October, 15, 23, 59, 59, 999_000_000, time.UTC)
	nextMidnight := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	justBefore := dayStart.Add(-time.Millisecond)

	assert.True(t, IsHabitCompletedOn([]db_models.HabitEntry{entryOn(1, dayStart)}, 1, today))
	assert.True(t, IsHabitCompletedOn([]db_models.HabitEntry{entryOn(1, lastInstant)}, 1, today))
	assert.False(t, IsHabitCompletedOn([]db_models.HabitEntry{entryOn(1, nextMidnight)}, 1, today))
	assert.False(t, IsHabitCompletedOn([]db_models.HabitEntry{entryOn(1, justBefore)}, 1, today))
}

func TestIsHabitCompletedOn_OtherHabitIgnored(t *testing.T) {
	entries := []db_models.HabitEntry{entryOn(2, today)}
	assert.False(t, IsHabitCompletedOn(entries, 1, today))
	assert.True(t, IsHabitCompletedOn(entries, 2, today))
}

func TestIsHabitCompletedOn_UsesLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	localDay := time.Date(2026, time.October, 15, 9, 0, 0, 0, loc)
	// 18:30 UTC on the 14th is 01:30 on the 15th at UTC+7.
	entry := entryOn(1, time.Date(2026, time.October, 14, 18, 30, 0, 0, time.UTC))

	assert.True(t, IsHabitCompletedOn([]db_models.HabitEntry{entry}, 1, localDay))
	assert.False(t, IsHabitCompletedOn([]db_models.HabitEntry{entry}, 1, localDay.In(time.UTC)))
}

func TestHabitStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []db_models.HabitEntry
		want    int
	}{
		{"empty", nil, 0},
		{"today and two days back", []db_models.HabitEntry{
			entryOn(1, daysAgo(0)), entryOn(1, daysAgo(1)), entryOn(1, daysAgo(2)),
		}, 3},
		{"today not done yet", []db_models.HabitEntry{
			entryOn(1, daysAgo(1)), entryOn(1, daysAgo(2)),
		}, 2},
		{"gap yesterday", []db_models.HabitEntry{
			entryOn(1, daysAgo(0)), entryOn(1, daysAgo(2)),
		}, 1},
		{"nothing since two days", []db_models.HabitEntry{
			entryOn(1, daysAgo(2)), entryOn(1, daysAgo(3)),
		}, 0},
		{"several entries a day count once", []db_models.HabitEntry{
			entryOn(1, daysAgo(0)), entryOn(1, daysAgo(0).Add(-time.Hour)), entryOn(1, daysAgo(1)),
		}, 2},
		{"unordered input", []db_models.HabitEntry{
			entryOn(1, daysAgo(2)), entryOn(1, daysAgo(0)), entryOn(1, daysAgo(1)),
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HabitStreak(tt.entries, today))
		})
	}
}

func TestHabitStreak_AcrossMonthBoundary(t *testing.T) {
	first := time.Date(2026, time.November, 1, 8, 0, 0, 0, time.UTC)
	entries := []db_models.HabitEntry{
		entryOn(1, first),
		entryOn(1, time.Date(2026, time.October, 31, 22, 0, 0, 0, time.UTC)),
		entryOn(1, time.Date(2026, time.October, 30, 7, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, 3, HabitStreak(entries, first))
}

func TestEntriesForHabit(t *testing.T) {
	entries := []db_models.HabitEntry{entryOn(1, today), entryOn(2, today), entryOn(1, daysAgo(1))}
	assert.Len(t, EntriesForHabit(entries, 1), 2)
	assert.Len(t, EntriesForHabit(entries, 3), 0)
}

func TestForChallenge(t *testing.T) {
	parts := []db_models.ChallengeParticipation{
		{ChallengeID: 42, Progress: 30},
		{ChallengeID: 7, Progress: 100, Completed: true},
	}

	assert.Equal(t, ParticipationStatus{Joined: true, Progress: 30, Completed: false}, ForChallenge(parts, 42))
	assert.Equal(t, ParticipationStatus{Joined: true, Progress: 100, Completed: true}, ForChallenge(parts, 7))
	assert.Equal(t, ParticipationStatus{}, ForChallenge(parts, 1))
}
