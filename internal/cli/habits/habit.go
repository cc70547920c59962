package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/logger"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit a habit's name, rule, or start date."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete, removes its entries)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Rule        string `help:"Schedule: everyday, weekdays, weekends, or a weekday list (mon,wed,fri)." default:"everyday"`
	Start       string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
	Interactive bool   `short:"i" help:"Fill in the habit with an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	if err := validation.ValidateHabitName(c.Name); err != nil {
		return err
	}

	rule, err := validation.ParseRuleSpec(c.Rule)
	if err != nil {
		return err
	}

	start := c.Start
	if start == "" {
		start = cli.Today()
	}
	if err := validation.ValidateDate(start); err != nil {
		return err
	}

	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(user.ID, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      strings.TrimSpace(c.Name),
		Rule:      rule,
		StartDate: start,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	logger.Debug("Added habit", "id", habit.ID, "rule", validation.FormatRule(rule))
	fmt.Printf("Added habit %q (%s, starting %s)\n", habit.Name, validation.FormatRule(rule), start)
	return nil
}

func (c *HabitAddCmd) promptForm() error {
	ruleChoice := c.Rule
	var customDays []time.Weekday

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name),
			huh.NewSelect[string]().
				Title("Schedule").
				Options(
					huh.NewOption("Every day", string(constants.RuleEveryday)),
					huh.NewOption("Weekdays (Mon-Fri)", string(constants.RuleWeekdays)),
					huh.NewOption("Weekends (Sat-Sun)", string(constants.RuleWeekends)),
					huh.NewOption("Custom days", string(constants.RuleCustom)),
				).
				Value(&ruleChoice),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD, empty for today)").
				Value(&c.Start),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if ruleChoice != string(constants.RuleCustom) {
		c.Rule = ruleChoice
		return nil
	}

	dayForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[time.Weekday]().
				Title("Days").
				Options(
					huh.NewOption("Monday", time.Monday),
					huh.NewOption("Tuesday", time.Tuesday),
					huh.NewOption("Wednesday", time.Wednesday),
					huh.NewOption("Thursday", time.Thursday),
					huh.NewOption("Friday", time.Friday),
					huh.NewOption("Saturday", time.Saturday),
					huh.NewOption("Sunday", time.Sunday),
				).
				Value(&customDays),
		),
	)
	if err := dayForm.Run(); err != nil {
		return err
	}

	names := make([]string, len(customDays))
	for i, wd := range customDays {
		names[i] = strings.ToLower(wd.String()[:3])
	}
	c.Rule = strings.Join(names, ",")
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		fmt.Printf("%-24s %-16s since %s%s\n", habit.Name, validation.FormatRule(habit.Rule), habit.StartDate, status)
	}

	return nil
}

type HabitEditCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Rename string `help:"New habit name."`
	Rule   string `help:"New schedule rule."`
	Start  string `help:"New start date (YYYY-MM-DD)."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	changed := false
	if c.Rename != "" {
		if err := validation.ValidateHabitName(c.Rename); err != nil {
			return err
		}
		habit.Name = strings.TrimSpace(c.Rename)
		changed = true
	}
	if c.Rule != "" {
		rule, err := validation.ParseRuleSpec(c.Rule)
		if err != nil {
			return err
		}
		habit.Rule = rule
		changed = true
	}
	if c.Start != "" {
		if err := validation.ValidateDate(c.Start); err != nil {
			return err
		}
		habit.StartDate = c.Start
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to change, pass --rename, --rule, or --start")
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit %q\n", habit.Name)
	return nil
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", c.Name)
		return nil
	}

	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its entries (restore with 'stride habit restore %s')\n", c.Name, c.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, true, true)
	if err != nil {
		return err
	}

	for _, habit := range habits {
		if habit.Name == c.Name && habit.DeletedAt != nil {
			if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Restored habit: %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("no deleted habit named %q", c.Name)
}
