package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/models"
)

func (s *Store) AddUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, created_at, deleted_at)
		VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.CreatedAt, nullTime(user.DeletedAt))
	return err
}

func (s *Store) GetUser(id string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, deleted_at
		FROM users WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanUser(row)
}

func (s *Store) GetUserByName(name string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, deleted_at
		FROM users WHERE name = $1 AND deleted_at IS NULL`, name)
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
	res, err := s.db.Exec(`UPDATE users SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`, time.Now(), id)
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
	var deletedAt sql.NullTime

	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &deletedAt); err != nil {
		return models.User{}, err
	}
	u.DeletedAt = timePtr(deletedAt)
	return u, nil
}
