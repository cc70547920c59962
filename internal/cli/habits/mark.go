package habits

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/validation"
)

type MarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note string `help:"Optional note for this entry." default:""`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	return writeEntry(ctx, c.Name, c.Date, c.Note, true)
}

type MissCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note string `help:"Optional note for this entry." default:""`
}

func (c *MissCmd) Run(ctx *cli.Context) error {
	return writeEntry(ctx, c.Name, c.Date, c.Note, false)
}

type UnmarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *UnmarkCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteEntry(habit.ID, day); err != nil {
		return fmt.Errorf("nothing recorded for %q on %s", c.Name, day)
	}

	fmt.Printf("Cleared %q for %s\n", c.Name, day)
	return nil
}

// writeEntry upserts the (habit, day) entry; marking a day twice just
// rewrites the flag, retroactive edits included.
func writeEntry(ctx *cli.Context, name, date, note string, completed bool) error {
	habit, err := ctx.ResolveHabit(name)
	if err != nil {
		return err
	}

	day, err := resolveDay(date)
	if err != nil {
		return err
	}

	if day > cli.Today() {
		return fmt.Errorf("cannot record the future (%s)", day)
	}
	if habit.StartDate != "" && day < habit.StartDate {
		return fmt.Errorf("%s is before the habit's start date (%s)", day, habit.StartDate)
	}

	now := time.Now()
	entry := models.Entry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		UserID:    habit.UserID,
		Day:       day,
		Completed: completed,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ctx.Store.UpsertEntry(entry); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked %q done for %s\n", name, day)
	} else {
		fmt.Printf("Marked %q missed for %s\n", name, day)
	}
	return nil
}

func resolveDay(date string) (string, error) {
	if date == "" {
		return cli.Today(), nil
	}
	if err := validation.ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}
