// Package progress derives completion state, streaks and percentages from
// already loaded rows. Nothing here touches the database or the clock; the
// caller passes "today" in the location that defines a local day.
package progress

import (
	"math"
	"time"

	"luminous/internal/models/db_models"
	"luminous/internal/models/response_models"
	"luminous/pkg/utils"
)

type (
	ProjectProgress     = response_models.ProjectProgress
	ParticipationStatus = response_models.ParticipationStatus
)

// ForProject counts completed tasks. Percent is rounded to two decimals and
// is 0 for a project without tasks.
func ForProject(tasks []db_models.Task) ProjectProgress {
	p := ProjectProgress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = math.Round(10000*float64(p.Completed)/float64(p.Total)) / 100
	}
	return p
}

// IsHabitCompletedOn reports whether habitID has at least one entry inside
// the local calendar day containing day.
func IsHabitCompletedOn(entries []db_models.HabitEntry, habitID uint, day time.Time) bool {
	start, end := utils.DayBounds(day)
	for _, e := range entries {
		if e.HabitID != habitID {
			continue
		}
		if !e.CompletedAt.Before(start) && e.CompletedAt.Before(end) {
			return true
		}
	}
	return false
}

// HabitStreak counts consecutive local days with at least one entry, walking
// back from today. A today without entries does not break the streak; the
// walk then starts at yesterday.
func HabitStreak(entries []db_models.HabitEntry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	loc := today.Location()

	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.CompletedAt.In(loc).Format(utils.DayLayout)] = struct{}{}
	}

	cursor := utils.StartOfDay(today)
	if _, ok := days[cursor.Format(utils.DayLayout)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[cursor.Format(utils.DayLayout)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// EntriesForHabit filters entries down to one habit.
func EntriesForHabit(entries []db_models.HabitEntry, habitID uint) []db_models.HabitEntry {
	out := make([]db_models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if e.HabitID == habitID {
			out = append(out, e)
		}
	}
	return out
}

// ForChallenge reports the caller's participation in challengeID. With
// several rows for the same challenge the furthest progress wins.
func ForChallenge(participations []db_models.ChallengeParticipation, challengeID uint) ParticipationStatus {
	var status ParticipationStatus
	for _, p := range participations {
		if p.ChallengeID != challengeID {
			continue
		}
		if !status.Joined || p.Progress > status.Progress {
			status.Progress = p.Progress
		}
		status.Joined = true
		status.Completed = status.Completed || p.Completed
	}
	return status
}
