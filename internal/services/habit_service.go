package services

import (
	"context"
	"time"

	"luminous/internal/models/db_models"
	"luminous/internal/models/request_models"
	"luminous/internal/models/response_models"
	"luminous/internal/progress"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

type HabitServiceInterface interface {
	GetUserHabits(ctx context.Context, userID string) ([]db_models.Habit, error)
	GetHabit(ctx context.Context, userID string, id uint) (*db_models.Habit, error)
	CreateHabit(ctx context.Context, userID string, req request_models.CreateHabitRequest) (*db_models.Habit, error)
	UpdateHabit(ctx context.Context, userID string, id uint, req request_models.UpdateHabitRequest) (*db_models.Habit, error)
	DeleteHabit(ctx context.Context, userID string, id uint) error

	// GetHabitEntries returns the caller's entries, newest first. A non-empty
	// date (YYYY-MM-DD) narrows them to that local day.
	GetHabitEntries(ctx context.Context, userID, date string) ([]db_models.HabitEntry, error)
	// GetEntriesForHabit takes inclusive from/to days; either may be empty.
	GetEntriesForHabit(ctx context.Context, userID string, habitID uint, from, to string) ([]db_models.HabitEntry, error)
	CreateHabitEntry(ctx context.Context, userID string, req request_models.CreateHabitEntryRequest) (*db_models.HabitEntry, error)
	GetHabitStats(ctx context.Context, userID string) ([]response_models.HabitStats, error)
}

type HabitService struct {
	clock     utils.Clock
	habitRepo repositories.HabitRepository
	entryRepo repositories.HabitEntryRepository
}

func NewHabitService(clock utils.Clock, habitRepo repositories.HabitRepository, entryRepo repositories.HabitEntryRepository) HabitServiceInterface {
	return &HabitService{
		clock:     clock,
		habitRepo: habitRepo,
		entryRepo: entryRepo,
	}
}

func (h *HabitService) GetUserHabits(ctx context.Context, userID string) ([]db_models.Habit, error) {
	habits, err := h.habitRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return habits, nil
}

func (h *HabitService) GetHabit(ctx context.Context, userID string, id uint) (*db_models.Habit, error) {
	habit, err := h.habitRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if habit == nil {
		return nil, utils.ErrHabitNotFound
	}
	return habit, nil
}

func (h *HabitService) CreateHabit(ctx context.Context, userID string, req request_models.CreateHabitRequest) (*db_models.Habit, error) {
	habit := &db_models.Habit{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		TargetFrequency: req.TargetFrequency,
		IsActive:        true,
	}
	if habit.TargetFrequency == "" {
		habit.TargetFrequency = db_models.FrequencyDaily
	}

	if err := h.habitRepo.Create(ctx, habit); err != nil {
		return nil, utils.DatabaseError(err)
	}
	return habit, nil
}

func (h *HabitService) UpdateHabit(ctx context.Context, userID string, id uint, req request_models.UpdateHabitRequest) (*db_models.Habit, error) {
	habit, err := h.habitRepo.Update(ctx, userID, id, req.Changes())
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if habit == nil {
		return nil, utils.ErrHabitNotFound
	}
	return habit, nil
}

func (h *HabitService) DeleteHabit(ctx context.Context, userID string, id uint) error {
	ok, err := h.habitRepo.Deactivate(ctx, userID, id)
	if err != nil {
		return utils.DatabaseError(err)
	}
	if !ok {
		return utils.ErrHabitNotFound
	}
	return nil
}

func (h *HabitService) GetHabitEntries(ctx context.Context, userID, date string) ([]db_models.HabitEntry, error) {
	var from, to *time.Time
	if date != "" {
		day, err := h.parseDay("date", date)
		if err != nil {
			return nil, err
		}
		start, end := utils.DayBounds(day)
		from, to = &start, &end
	}

	entries, err := h.entryRepo.FindByUser(ctx, userID, from, to)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return entries, nil
}

func (h *HabitService) GetEntriesForHabit(ctx context.Context, userID string, habitID uint, from, to string) ([]db_models.HabitEntry, error) {
	if _, err := h.GetHabit(ctx, userID, habitID); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if from != "" {
		day, err := h.parseDay("from", from)
		if err != nil {
			return nil, err
		}
		s, _ := utils.DayBounds(day)
		start = &s
	}
	if to != "" {
		day, err := h.parseDay("to", to)
		if err != nil {
			return nil, err
		}
		_, e := utils.DayBounds(day)
		end = &e
	}
	if start != nil && end != nil && !start.Before(*end) {
		return nil, utils.NewValidationError("to", "must not be before from")
	}

	entries, err := h.entryRepo.FindByHabit(ctx, userID, habitID, start, end)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return entries, nil
}

// CreateHabitEntry appends a completion for one of the caller's active habits.
func (h *HabitService) CreateHabitEntry(ctx context.Context, userID string, req request_models.CreateHabitEntryRequest) (*db_models.HabitEntry, error) {
	habit, err := h.habitRepo.FindByID(ctx, userID, req.HabitID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if habit == nil {
		return nil, utils.ErrHabitReference
	}

	entry := &db_models.HabitEntry{
		HabitID:     habit.ID,
		UserID:      userID,
		CompletedAt: h.clock.Now(),
		Notes:       req.Notes,
	}
	if req.CompletedAt != nil {
		entry.CompletedAt = *req.CompletedAt
	}

	if err := h.entryRepo.Create(ctx, entry); err != nil {
		return nil, utils.DatabaseError(err)
	}
	return entry, nil
}

func (h *HabitService) GetHabitStats(ctx context.Context, userID string) ([]response_models.HabitStats, error) {
	habits, err := h.habitRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	entries, err := h.entryRepo.FindByUser(ctx, userID, nil, nil)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	today := h.clock.Now()
	stats := make([]response_models.HabitStats, 0, len(habits))
	for _, habit := range habits {
		own := progress.EntriesForHabit(entries, habit.ID)
		stats = append(stats, response_models.HabitStats{
			HabitID:        habit.ID,
			Name:           habit.Name,
			CompletedToday: progress.IsHabitCompletedOn(own, habit.ID, today),
			Streak:         progress.HabitStreak(own, today),
			TotalEntries:   len(own),
		})
	}
	return stats, nil
}

func (h *HabitService) parseDay(field, value string) (time.Time, error) {
	day, err := utils.ParseDay(value, h.clock.Now().Location())
	if err != nil {
		return time.Time{}, utils.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return day, nil
}
