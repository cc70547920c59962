package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "stride.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store *Store) models.User {
	t.Helper()
	user := models.User{
		ID:        uuid.New().String(),
		Name:      "local",
		CreatedAt: time.Now(),
	}
	if err := store.AddUser(user); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	return user
}

func seedHabit(t *testing.T, store *Store, userID string) models.Habit {
	t.Helper()
	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      "Morning run",
		Rule:      models.Rule{Kind: constants.RuleWeekdays},
		StartDate: "2024-01-01",
		CreatedAt: time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	return habit
}

func TestStore_UserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)

	got, err := store.GetUser(user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Name != "local" {
		t.Errorf("Expected name 'local', got %q", got.Name)
	}

	byName, err := store.GetUserByName("local")
	if err != nil {
		t.Fatalf("GetUserByName failed: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("Expected id %s, got %s", user.ID, byName.ID)
	}

	if err := store.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := store.GetUser(user.ID); err == nil {
		t.Error("Expected deleted user to be invisible")
	}
}

func TestStore_HabitRoundTrip(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)
	habit := models.Habit{
		ID:     uuid.New().String(),
		UserID: user.ID,
		Name:   "Write",
		Rule: models.Rule{
			Kind: constants.RuleCustom,
			Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		StartDate: "2024-02-01",
		CreatedAt: time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Rule.Kind != constants.RuleCustom {
		t.Errorf("Expected custom rule, got %s", got.Rule.Kind)
	}
	if len(got.Rule.Days) != 3 || got.Rule.Days[1] != time.Wednesday {
		t.Errorf("Rule day set did not round-trip: %v", got.Rule.Days)
	}
	if got.StartDate != "2024-02-01" {
		t.Errorf("Expected start date 2024-02-01, got %s", got.StartDate)
	}

	got.Name = "Write daily"
	got.Rule = models.Rule{Kind: constants.RuleEveryday}
	if err := store.UpdateHabit(got); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	updated, err := store.GetHabitByName(user.ID, "Write daily")
	if err != nil {
		t.Fatalf("GetHabitByName failed: %v", err)
	}
	if updated.Rule.Kind != constants.RuleEveryday {
		t.Errorf("Expected everyday rule after update, got %s", updated.Rule.Kind)
	}
	if len(updated.Rule.Days) != 0 {
		t.Errorf("Expected empty day set after update, got %v", updated.Rule.Days)
	}
}

func TestStore_ArchiveHabit(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)
	habit := seedHabit(t, store, user.ID)

	if err := store.ArchiveHabit(habit.ID); err != nil {
		t.Fatalf("ArchiveHabit failed: %v", err)
	}

	active, err := store.GetAllHabits(user.ID, false, false)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Expected no active habits, got %d", len(active))
	}

	all, err := store.GetAllHabits(user.ID, true, false)
	if err != nil {
		t.Fatalf("GetAllHabits(archived) failed: %v", err)
	}
	if len(all) != 1 || all[0].ArchivedAt == nil {
		t.Error("Expected one archived habit with archived_at set")
	}

	if err := store.UnarchiveHabit(habit.ID); err != nil {
		t.Fatalf("UnarchiveHabit failed: %v", err)
	}
	active, _ = store.GetAllHabits(user.ID, false, false)
	if len(active) != 1 {
		t.Errorf("Expected habit back after unarchive, got %d", len(active))
	}
}

func TestStore_DeleteHabitCascadesToEntries(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)
	habit := seedHabit(t, store, user.ID)

	entry := models.Entry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		UserID:    user.ID,
		Day:       "2024-01-02",
		Completed: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := store.UpsertEntry(entry); err != nil {
		t.Fatalf("UpsertEntry failed: %v", err)
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	if _, err := store.GetHabit(habit.ID); err == nil {
		t.Error("Expected deleted habit to be invisible")
	}
	entries, err := store.GetEntriesForHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetEntriesForHabit failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected entries soft-deleted with habit, got %d", len(entries))
	}

	if err := store.RestoreHabit(habit.ID); err != nil {
		t.Fatalf("RestoreHabit failed: %v", err)
	}
	entries, _ = store.GetEntriesForHabit(habit.ID)
	if len(entries) != 1 {
		t.Errorf("Expected entries restored with habit, got %d", len(entries))
	}
}

func TestStore_UpsertEntryIsIdempotentPerDay(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)
	habit := seedHabit(t, store, user.ID)

	first := models.Entry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		UserID:    user.ID,
		Day:       "2024-01-03",
		Completed: true,
		Note:      "5k",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := store.UpsertEntry(first); err != nil {
		t.Fatalf("first UpsertEntry failed: %v", err)
	}

	// Re-marking the same day flips the flag in place instead of adding a row.
	second := first
	second.ID = uuid.New().String()
	second.Completed = false
	second.Note = "skipped"
	if err := store.UpsertEntry(second); err != nil {
		t.Fatalf("second UpsertEntry failed: %v", err)
	}

	entries, err := store.GetEntriesForHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetEntriesForHabit failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one entry per (habit, day), got %d", len(entries))
	}
	if entries[0].Completed {
		t.Error("Expected upsert to overwrite completion flag")
	}
	if entries[0].Note != "skipped" {
		t.Errorf("Expected upsert to overwrite note, got %q", entries[0].Note)
	}
	if entries[0].ID != first.ID {
		t.Errorf("Expected original row id to survive the upsert")
	}
}

func TestStore_EntryRangeAndDayQueries(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)
	habit := seedHabit(t, store, user.ID)

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-05", "2024-01-10"} {
		entry := models.Entry{
			ID:        uuid.New().String(),
			HabitID:   habit.ID,
			UserID:    user.ID,
			Day:       day,
			Completed: true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := store.UpsertEntry(entry); err != nil {
			t.Fatalf("UpsertEntry(%s) failed: %v", day, err)
		}
	}

	ranged, err := store.GetEntriesForRange(habit.ID, "2024-01-02", "2024-01-05")
	if err != nil {
		t.Fatalf("GetEntriesForRange failed: %v", err)
	}
	if len(ranged) != 2 {
		t.Errorf("Expected 2 entries in range, got %d", len(ranged))
	}
	if len(ranged) == 2 && (ranged[0].Day != "2024-01-02" || ranged[1].Day != "2024-01-05") {
		t.Errorf("Expected range sorted by day, got %s, %s", ranged[0].Day, ranged[1].Day)
	}

	forDay, err := store.GetEntriesForDay(user.ID, "2024-01-05")
	if err != nil {
		t.Fatalf("GetEntriesForDay failed: %v", err)
	}
	if len(forDay) != 1 {
		t.Errorf("Expected 1 entry for day, got %d", len(forDay))
	}

	if err := store.DeleteEntry(habit.ID, "2024-01-05"); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if _, err := store.GetEntry(habit.ID, "2024-01-05"); err == nil {
		t.Error("Expected deleted entry to be invisible")
	}

	// A fresh upsert for the same day revives the soft-deleted row.
	revived := models.Entry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		UserID:    user.ID,
		Day:       "2024-01-05",
		Completed: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := store.UpsertEntry(revived); err != nil {
		t.Fatalf("revival UpsertEntry failed: %v", err)
	}
	if _, err := store.GetEntry(habit.ID, "2024-01-05"); err != nil {
		t.Errorf("Expected revived entry to be visible: %v", err)
	}
}

func TestStore_LoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Expected Load to fail before Init")
	}
}

func TestStore_MalformedRuleDaysDecodeEmpty(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)
	habit := seedHabit(t, store, user.ID)

	// Corrupt the stored day set directly.
	if _, err := store.db.Exec(`UPDATE habits SET rule_kind = 'custom', rule_days = 'not json' WHERE id = ?`, habit.ID); err != nil {
		t.Fatalf("corrupting rule_days failed: %v", err)
	}

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed on corrupt rule_days: %v", err)
	}
	if len(got.Rule.Days) != 0 {
		t.Errorf("Expected corrupt day set to decode empty, got %v", got.Rule.Days)
	}
}
