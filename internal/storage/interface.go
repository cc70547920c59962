package storage

import "github.com/stride-cli/stride/internal/models"

// Provider is the persistence contract the rest of the application is
// written against. All deletes below are soft deletes; deleted rows are
// excluded from reads unless an operation says otherwise.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	AddUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByName(name string) (models.User, error)
	GetAllUsers() ([]models.User, error)
	DeleteUser(id string) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(userID, name string) (models.Habit, error)
	GetAllHabits(userID string, includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	// DeleteHabit soft-deletes a habit and all of its entries.
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Entries. UpsertEntry is keyed by (habit_id, day): marking a day that
	// already has an entry updates it in place, so the one-entry-per-day
	// invariant the streak calculator relies on holds by construction.
	UpsertEntry(models.Entry) error
	GetEntry(habitID, day string) (models.Entry, error)
	GetEntriesForHabit(habitID string) ([]models.Entry, error)
	GetEntriesForRange(habitID, startDay, endDay string) ([]models.Entry, error)
	GetEntriesForDay(userID, day string) ([]models.Entry, error)
	DeleteEntry(habitID, day string) error

	// Utils
	GetConfigPath() string
}
