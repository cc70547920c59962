package habits

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/streak"
	"github.com/stride-cli/stride/internal/validation"
)

var (
	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type StatsCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (default: all active habits)."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	today := cli.Today()

	var habits []models.Habit
	if c.Name != "" {
		habit, err := ctx.ResolveHabit(c.Name)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	} else {
		user, err := ctx.DefaultUser()
		if err != nil {
			return err
		}
		habits, err = ctx.Store.GetAllHabits(user.ID, false, false)
		if err != nil {
			return err
		}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		entries, err := ctx.Store.GetEntriesForHabit(habit.ID)
		if err != nil {
			return err
		}
		stats := streak.ComputeStats(habit, entries, today)

		fmt.Printf("%s  %s\n", habit.Name, dimStyle.Render("("+validation.FormatRule(habit.Rule)+")"))
		fmt.Printf("  current streak: %s\n", streakStyle.Render(fmt.Sprintf("%d", stats.CurrentStreak)))
		fmt.Printf("  longest streak: %s\n", streakStyle.Render(fmt.Sprintf("%d", stats.LongestStreak)))
		if stats.LastCompletedDate != "" {
			fmt.Printf("  last completed: %s\n", stats.LastCompletedDate)
		}
		if stats.CompletedToday {
			fmt.Printf("  %s\n", doneStyle.Render("done today"))
		}
		fmt.Println()
	}

	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, false, false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := cli.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	due := 0
	for _, habit := range habits {
		entries, err := ctx.Store.GetEntriesForRange(habit.ID, today, today)
		if err != nil {
			return err
		}

		switch streak.ClassifyDate(habit, today, entries, today) {
		case streak.StatusCompleted:
			fmt.Printf("%s %s\n", doneStyle.Render("[x]"), habit.Name)
			done++
			due++
		case streak.StatusMissed:
			fmt.Printf("%s %s\n", missStyle.Render("[!]"), habit.Name)
			due++
		case streak.StatusPendingToday:
			fmt.Printf("[ ] %s\n", habit.Name)
			due++
		case streak.StatusNotScheduled:
			fmt.Println(dimStyle.Render(" ·  " + habit.Name + " (off day)"))
		case streak.StatusBeforeStart:
			fmt.Println(dimStyle.Render(" ·  " + habit.Name + " (not started)"))
		}
	}

	fmt.Printf("\nDone: %d/%d\n", done, due)
	return nil
}
