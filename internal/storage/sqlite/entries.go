package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

// UpsertEntry writes an entry keyed by (habit_id, day). The UNIQUE index on
// that pair makes marking a day idempotent: a second mark updates the
// existing row instead of creating a duplicate, including reviving a
// soft-deleted one.
func (s *Store) UpsertEntry(entry models.Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (id, habit_id, user_id, day, completed, note, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			note = excluded.note,
			updated_at = excluded.updated_at,
			deleted_at = NULL`,
		entry.ID, entry.HabitID, entry.UserID, entry.Day,
		boolToInt(entry.Completed), entry.Note,
		formatTime(entry.CreatedAt), formatTime(entry.UpdatedAt))
	return err
}

func (s *Store) GetEntry(habitID, day string) (models.Entry, error) {
	row := s.db.QueryRow(entrySelect+` WHERE habit_id = ? AND day = ? AND deleted_at IS NULL`, habitID, day)
	return scanEntry(row)
}

func (s *Store) GetEntriesForHabit(habitID string) ([]models.Entry, error) {
	rows, err := s.db.Query(entrySelect+` WHERE habit_id = ? AND deleted_at IS NULL ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) GetEntriesForRange(habitID, startDay, endDay string) ([]models.Entry, error) {
	rows, err := s.db.Query(entrySelect+`
		WHERE habit_id = ? AND day >= ? AND day <= ? AND deleted_at IS NULL
		ORDER BY day`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) GetEntriesForDay(userID, day string) ([]models.Entry, error) {
	rows, err := s.db.Query(entrySelect+` WHERE user_id = ? AND day = ? AND deleted_at IS NULL`, userID, day)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) DeleteEntry(habitID, day string) error {
	res, err := s.db.Exec(`
		UPDATE entries SET deleted_at = ?
		WHERE habit_id = ? AND day = ? AND deleted_at IS NULL`,
		formatTime(time.Now()), habitID, day)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no entry for %s on %s", habitID, day)
	}
	return nil
}

const entrySelect = `
	SELECT id, habit_id, user_id, day, completed, note, created_at, updated_at, deleted_at
	FROM entries`

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	var completed int
	var createdAt, updatedAt string
	var deletedAt sql.NullString

	err := row.Scan(&e.ID, &e.HabitID, &e.UserID, &e.Day, &completed, &e.Note, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return models.Entry{}, err
	}
	e.Completed = completed != 0

	e.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
	}
	e.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse updated_at for entry %s: %w", e.ID, err)
	}
	e.DeletedAt, err = parseTimePtr(deletedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse deleted_at for entry %s: %w", e.ID, err)
	}

	return e, nil
}

func collectEntries(rows *sql.Rows) ([]models.Entry, error) {
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
