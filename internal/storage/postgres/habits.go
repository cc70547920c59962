package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, rule_kind, rule_days, start_date, created_at, archived_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		habit.ID, habit.UserID, habit.Name,
		string(habit.Rule.Kind), encodeRuleDays(habit.Rule.Days), habit.StartDate,
		habit.CreatedAt, nullTime(habit.ArchivedAt), nullTime(habit.DeletedAt))
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(habitSelect+` WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(userID, name string) (models.Habit, error) {
	row := s.db.QueryRow(habitSelect+` WHERE user_id = $1 AND name = $2 AND deleted_at IS NULL`, userID, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(userID string, includeArchived, includeDeleted bool) ([]models.Habit, error) {
	query := habitSelect + ` WHERE user_id = $1`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	res, err := s.db.Exec(`
		UPDATE habits
		SET name = $1, rule_kind = $2, rule_days = $3, start_date = $4, archived_at = $5, deleted_at = $6
		WHERE id = $7`,
		habit.Name, string(habit.Rule.Kind), encodeRuleDays(habit.Rule.Days), habit.StartDate,
		nullTime(habit.ArchivedAt), nullTime(habit.DeletedAt), habit.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, habit.ID)
}

func (s *Store) ArchiveHabit(id string) error {
	res, err := s.db.Exec(`
		UPDATE habits SET archived_at = $1 WHERE id = $2 AND deleted_at IS NULL`, time.Now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (s *Store) UnarchiveHabit(id string) error {
	res, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	now := time.Now()
	res, err := tx.Exec(`UPDATE habits SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`, now, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := requireAffected(res, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`UPDATE entries SET deleted_at = $1 WHERE habit_id = $2 AND deleted_at IS NULL`, now, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *Store) RestoreHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(`UPDATE habits SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := requireAffected(res, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`UPDATE entries SET deleted_at = NULL WHERE habit_id = $1`, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

const habitSelect = `
	SELECT id, user_id, name, rule_kind, rule_days, start_date, created_at, archived_at, deleted_at
	FROM habits`

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var ruleKind, ruleDays string
	var archivedAt, deletedAt sql.NullTime

	err := row.Scan(&h.ID, &h.UserID, &h.Name, &ruleKind, &ruleDays, &h.StartDate, &h.CreatedAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Rule = models.Rule{
		Kind: constants.RuleKind(ruleKind),
		Days: decodeRuleDays(ruleDays),
	}
	h.ArchivedAt = timePtr(archivedAt)
	h.DeletedAt = timePtr(deletedAt)

	return h, nil
}

func requireAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit %s not found", id)
	}
	return nil
}
