package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

func (s *Store) AddUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, created_at, deleted_at)
		VALUES (?, ?, ?, ?)`,
		user.ID, user.Name, formatTime(user.CreatedAt), formatTimePtr(user.DeletedAt))
	return err
}

func (s *Store) GetUser(id string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, deleted_at
		FROM users WHERE id = ? AND deleted_at IS NULL`, id)
	return scanUser(row)
}

func (s *Store) GetUserByName(name string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, deleted_at
		FROM users WHERE name = ? AND deleted_at IS NULL`, name)
	return scanUser(row)
}

func (s *Store) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query(`
		SELECT id, name, created_at, deleted_at
		FROM users WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) DeleteUser(id string) error {
	now := formatTime(time.Now())
	res, err := s.db.Exec(`UPDATE users SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&u.ID, &u.Name, &createdAt, &deletedAt); err != nil {
		return models.User{}, err
	}

	var err error
	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	u.DeletedAt, err = parseTimePtr(deletedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse deleted_at: %w", err)
	}
	return u, nil
}
