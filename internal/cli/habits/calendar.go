package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/streak"
)

var (
	cellDone = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("■")
	cellMiss = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("■")
	cellOff  = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("·")
	cellWait = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("□")
)

type CalendarCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Weeks int    `help:"Number of trailing weeks to render." default:"12"`
}

// Run renders a heatmap with one row per weekday and one column per week,
// most recent week last.
func (c *CalendarCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	weeks := c.Weeks
	if weeks < 1 {
		weeks = constants.DefaultCalendarWeeks
	}

	today := cli.Today()
	todayDate, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return err
	}

	// Align the window to whole weeks ending with today's week (Monday first).
	daysSinceMonday := (int(todayDate.Weekday()) + 6) % 7
	weekStart := todayDate.AddDate(0, 0, -daysSinceMonday-(weeks-1)*7)

	entries, err := ctx.Store.GetEntriesForRange(
		habit.ID,
		weekStart.Format(constants.DateFormat),
		today,
	)
	if err != nil {
		return err
	}

	fmt.Printf("%s — last %d weeks\n\n", habit.Name, weeks)

	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for row := 0; row < 7; row++ {
		var b strings.Builder
		b.WriteString(labels[row] + " ")
		for col := 0; col < weeks; col++ {
			day := weekStart.AddDate(0, 0, col*7+row)
			b.WriteString(renderCell(habit, day.Format(constants.DateFormat), entries, today))
			b.WriteString(" ")
		}
		fmt.Println(b.String())
	}

	fmt.Printf("\n%s done  %s missed  %s pending  %s off/other\n", cellDone, cellMiss, cellWait, cellOff)
	return nil
}

func renderCell(habit models.Habit, day string, entries []models.Entry, today string) string {
	switch streak.ClassifyDate(habit, day, entries, today) {
	case streak.StatusCompleted:
		return cellDone
	case streak.StatusMissed:
		return cellMiss
	case streak.StatusPendingToday:
		return cellWait
	default:
		// future, before-start, and off days all render dim
		return cellOff
	}
}
