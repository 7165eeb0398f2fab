package habit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"luminous/internal/repositories"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

var Module = fx.Provide(provideHabitRepo, provideHabitEntryRepo, provideHabitService)

func provideHabitRepo(db *gorm.DB) repositories.HabitRepository {
	return repositories.NewHabitRepository(db)
}

func provideHabitEntryRepo(db *gorm.DB) repositories.HabitEntryRepository {
	return repositories.NewHabitEntryRepository(db)
}

func provideHabitService(clock utils.Clock, habitRepo repositories.HabitRepository, entryRepo repositories.HabitEntryRepository) services.HabitServiceInterface {
	return services.NewHabitService(clock, habitRepo, entryRepo)
}
