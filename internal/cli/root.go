package cli

import (
	"fmt"
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/storage"
)

// Context carries the shared dependencies into every command's Run method.
type Context struct {
	Store storage.Provider
	Debug bool
}

// Today returns the current calendar date. Commands resolve it once at the
// top of Run and hand the string down, so everything below the CLI boundary
// gets "today" as an explicit parameter.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DefaultUser fetches the user provisioned by 'stride init'.
func (c *Context) DefaultUser() (models.User, error) {
	user, err := c.Store.GetUserByName(constants.DefaultUserName)
	if err != nil {
		return models.User{}, fmt.Errorf("no local user found, run 'stride init' first")
	}
	return user, nil
}

// ResolveHabit looks up a habit by name for the default user.
func (c *Context) ResolveHabit(name string) (models.Habit, error) {
	user, err := c.DefaultUser()
	if err != nil {
		return models.Habit{}, err
	}
	habit, err := c.Store.GetHabitByName(user.ID, name)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return habit, nil
}
