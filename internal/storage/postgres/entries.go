package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

// UpsertEntry mirrors the SQLite implementation: the (habit_id, day)
// uniqueness constraint resolves conflicts in place.
func (s *Store) UpsertEntry(entry models.Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (id, habit_id, user_id, day, completed, note, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			completed = EXCLUDED.completed,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL`,
		entry.ID, entry.HabitID, entry.UserID, entry.Day,
		entry.Completed, entry.Note, entry.CreatedAt, entry.UpdatedAt)
	return err
}

func (s *Store) GetEntry(habitID, day string) (models.Entry, error) {
	row := s.db.QueryRow(entrySelect+` WHERE habit_id = $1 AND day = $2 AND deleted_at IS NULL`, habitID, day)
	return scanEntry(row)
}

func (s *Store) GetEntriesForHabit(habitID string) ([]models.Entry, error) {
	rows, err := s.db.Query(entrySelect+` WHERE habit_id = $1 AND deleted_at IS NULL ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) GetEntriesForRange(habitID, startDay, endDay string) ([]models.Entry, error) {
	rows, err := s.db.Query(entrySelect+`
		WHERE habit_id = $1 AND day >= $2 AND day <= $3 AND deleted_at IS NULL
		ORDER BY day`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) GetEntriesForDay(userID, day string) ([]models.Entry, error) {
	rows, err := s.db.Query(entrySelect+` WHERE user_id = $1 AND day = $2 AND deleted_at IS NULL`, userID, day)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) DeleteEntry(habitID, day string) error {
	res, err := s.db.Exec(`
		UPDATE entries SET deleted_at = $1
		WHERE habit_id = $2 AND day = $3 AND deleted_at IS NULL`, time.Now(), habitID, day)
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
	var deletedAt sql.NullTime

	err := row.Scan(&e.ID, &e.HabitID, &e.UserID, &e.Day, &e.Completed, &e.Note, &e.CreatedAt, &e.UpdatedAt, &deletedAt)
	if err != nil {
		return models.Entry{}, err
	}
	e.DeletedAt = timePtr(deletedAt)
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
