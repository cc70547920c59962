package models

import (
	"time"

	"github.com/stride-cli/stride/internal/constants"
)

// Rule describes when a habit is due. Kind selects the schedule; Days is
// only consulted for custom rules. A custom rule with an empty day set is
// treated as never scheduled rather than as an error.
type Rule struct {
	Kind constants.RuleKind `json:"kind"`
	Days []time.Weekday     `json:"days,omitempty"`
}

// Habit represents a recurring practice to track
type Habit struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Rule       Rule       `json:"rule"`
	StartDate  string     `json:"start_date"` // YYYY-MM-DD format
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// Entry represents a single day's record of a habit. Completed false means
// the day was explicitly marked missed; an absent entry means unmarked,
// which is a distinct state.
type Entry struct {
	ID        string     `json:"id"`
	HabitID   string     `json:"habit_id"`
	UserID    string     `json:"user_id"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Completed bool       `json:"completed"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// User owns habits and entries. The CLI provisions a single local user at
// init; the schema keeps the owner column so a shared PostgreSQL database
// can hold more than one.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
