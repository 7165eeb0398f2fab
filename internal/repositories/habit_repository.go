package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"luminous/internal/models/db_models"
)

type HabitRepository interface {
	FindActiveByUser(ctx context.Context, userID string) ([]db_models.Habit, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.Habit, error)
	CountActiveByUser(ctx context.Context, userID string) (int64, error)
	FindByID(ctx context.Context, userID string, id uint) (*db_models.Habit, error)
	Create(ctx context.Context, habit *db_models.Habit) error
	Update(ctx context.Context, userID string, id uint, changes map[string]interface{}) (*db_models.Habit, error)
	Deactivate(ctx context.Context, userID string, id uint) (bool, error)
}

type habitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{
		db: db,
	}
}

func (h *habitRepository) FindActiveByUser(ctx context.Context, userID string) ([]db_models.Habit, error) {
	return h.FindRecentByUser(ctx, userID, -1)
}

func (h *habitRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]db_models.Habit, error) {
	var habits []db_models.Habit
	err := h.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&habits).Error
	return habits, err
}

func (h *habitRepository) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := h.db.WithContext(ctx).Model(&db_models.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}

// FindByID only sees active habits; a deactivated habit reads as missing.
func (h *habitRepository) FindByID(ctx context.Context, userID string, id uint) (*db_models.Habit, error) {
	var habit db_models.Habit
	err := h.db.WithContext(ctx).
		First(&habit, "id = ? AND user_id = ? AND is_active = ?", id, userID, true).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &habit, nil
}

func (h *habitRepository) Create(ctx context.Context, habit *db_models.Habit) error {
	return h.db.WithContext(ctx).Create(habit).Error
}

func (h *habitRepository) Update(ctx context.Context, userID string, id uint, changes map[string]interface{}) (*db_models.Habit, error) {
	res := h.db.WithContext(ctx).Model(&db_models.Habit{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(withUpdatedAt(h.db, changes))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return h.FindByID(ctx, userID, id)
}

// Deactivate is the logical delete: the row and its entries stay.
func (h *habitRepository) Deactivate(ctx context.Context, userID string, id uint) (bool, error) {
	res := h.db.WithContext(ctx).Model(&db_models.Habit{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": h.db.NowFunc()})
	return res.RowsAffected > 0, res.Error
}

type HabitEntryRepository interface {
	Create(ctx context.Context, entry *db_models.HabitEntry) error
	// FindByUser returns entries newest first. A nil bound is open.
	FindByUser(ctx context.Context, userID string, from, to *time.Time) ([]db_models.HabitEntry, error)
	FindByHabit(ctx context.Context, userID string, habitID uint, from, to *time.Time) ([]db_models.HabitEntry, error)
}

type habitEntryRepository struct {
	db *gorm.DB
}

func NewHabitEntryRepository(db *gorm.DB) HabitEntryRepository {
	return &habitEntryRepository{
		db: db,
	}
}

func (h *habitEntryRepository) Create(ctx context.Context, entry *db_models.HabitEntry) error {
	entry.CompletedAt = entry.CompletedAt.UTC()
	return h.db.WithContext(ctx).Create(entry).Error
}

func (h *habitEntryRepository) FindByUser(ctx context.Context, userID string, from, to *time.Time) ([]db_models.HabitEntry, error) {
	var entries []db_models.HabitEntry
	err := completedWithin(h.db.WithContext(ctx).Where("user_id = ?", userID), from, to).
		Order("completed_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

func (h *habitEntryRepository) FindByHabit(ctx context.Context, userID string, habitID uint, from, to *time.Time) ([]db_models.HabitEntry, error) {
	var entries []db_models.HabitEntry
	err := completedWithin(h.db.WithContext(ctx).Where("user_id = ? AND habit_id = ?", userID, habitID), from, to).
		Order("completed_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// completedWithin applies the half-open window [from, to).
func completedWithin(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("completed_at >= ?", from.UTC())
	}
	if to != nil {
		q = q.Where("completed_at < ?", to.UTC())
	}
	return q
}
