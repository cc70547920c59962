package streak

import (
	"testing"
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

func weekdayHabit(start string) models.Habit {
	return models.Habit{
		ID:        "habit-1",
		UserID:    "user-1",
		Name:      "Morning run",
		Rule:      models.Rule{Kind: constants.RuleWeekdays},
		StartDate: start,
	}
}

func completed(days ...string) []models.Entry {
	var entries []models.Entry
	for _, d := range days {
		entries = append(entries, models.Entry{
			ID:        "entry-" + d,
			HabitID:   "habit-1",
			UserID:    "user-1",
			Day:       d,
			Completed: true,
		})
	}
	return entries
}

func missed(day string) models.Entry {
	return models.Entry{
		ID:      "entry-" + day,
		HabitID: "habit-1",
		UserID:  "user-1",
		Day:     day,
	}
}

func TestComputeStats_EverydayUnbrokenRun(t *testing.T) {
	habit := models.Habit{
		ID:        "habit-1",
		Rule:      models.Rule{Kind: constants.RuleEveryday},
		StartDate: "2024-01-01",
	}
	entries := completed("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")

	stats := ComputeStats(habit, entries, "2024-01-05")

	if stats.CurrentStreak != 5 {
		t.Errorf("Expected current streak 5, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 5 {
		t.Errorf("Expected longest streak 5, got %d", stats.LongestStreak)
	}
	if !stats.CompletedToday {
		t.Error("Expected completed today")
	}
	if stats.LastCompletedDate != "2024-01-05" {
		t.Errorf("Expected last completed 2024-01-05, got %s", stats.LastCompletedDate)
	}
}

func TestComputeStats_WeekendGapDoesNotBreakWeekdayHabit(t *testing.T) {
	// Mon-Fri completed, weekend unmarked (not scheduled), Monday completed.
	habit := weekdayHabit("2024-01-01")
	entries := completed(
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-08",
	)

	stats := ComputeStats(habit, entries, "2024-01-08")

	if stats.LongestStreak != 6 {
		t.Errorf("Expected longest streak 6 across weekend gap, got %d", stats.LongestStreak)
	}
	if stats.CurrentStreak != 6 {
		t.Errorf("Expected current streak 6 across weekend gap, got %d", stats.CurrentStreak)
	}
}

func TestComputeStats_ExplicitMissTodayBreaksStreak(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	entries := completed("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")
	entries = append(entries, missed("2024-01-08"))

	stats := ComputeStats(habit, entries, "2024-01-08")

	if stats.CurrentStreak != 0 {
		t.Errorf("Expected current streak 0 after today's recorded miss, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 5 {
		t.Errorf("Expected longest streak 5 (the Jan 1-5 run), got %d", stats.LongestStreak)
	}
	if stats.CompletedToday {
		t.Error("Expected completed today to be false for a miss")
	}
}

func TestComputeStats_CustomRuleThreeWeeks(t *testing.T) {
	habit := models.Habit{
		ID: "habit-1",
		Rule: models.Rule{
			Kind: constants.RuleCustom,
			Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		StartDate: "2024-01-01",
	}
	entries := completed(
		"2024-01-01", "2024-01-03", "2024-01-05",
		"2024-01-08", "2024-01-10", "2024-01-12",
		"2024-01-15", "2024-01-17", "2024-01-19",
	)

	stats := ComputeStats(habit, entries, "2024-01-19")

	if stats.LongestStreak != 9 {
		t.Errorf("Expected longest streak 9 (3 days/week x 3 weeks), got %d", stats.LongestStreak)
	}
	if stats.CurrentStreak != stats.LongestStreak {
		t.Errorf("Expected current streak %d to equal longest, got %d", stats.LongestStreak, stats.CurrentStreak)
	}
}

func TestComputeStats_PendingTodayDoesNotCountYet(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	entries := completed("2024-01-01", "2024-01-02")

	// Wednesday the 3rd is scheduled but unmarked.
	stats := ComputeStats(habit, entries, "2024-01-03")

	if stats.CurrentStreak != 0 {
		t.Errorf("Expected current streak 0 while today is pending, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("Expected longest streak 2, got %d", stats.LongestStreak)
	}
}

func TestComputeStats_UnscheduledTodayIsSkipped(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	entries := completed("2024-01-04", "2024-01-05")

	// Saturday the 6th is not scheduled; the walk proceeds to Friday.
	stats := ComputeStats(habit, entries, "2024-01-06")

	if stats.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2 on an off day, got %d", stats.CurrentStreak)
	}
}

func TestComputeStats_MissedScheduledDayStopsBackwardWalk(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	entries := completed("2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05")
	entries = append(entries, missed("2024-01-03"))

	stats := ComputeStats(habit, entries, "2024-01-05")

	if stats.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2 (stopped at the Jan 3 miss), got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("Expected longest streak 2, got %d", stats.LongestStreak)
	}
}

func TestComputeStats_UnmarkedScheduledDayStopsBackwardWalk(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	// Wednesday the 3rd has no entry at all.
	entries := completed("2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05")

	stats := ComputeStats(habit, entries, "2024-01-05")

	if stats.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2 (stopped at the unmarked Jan 3), got %d", stats.CurrentStreak)
	}
}

func TestComputeStats_EntriesOnOffDaysAreInert(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	base := completed("2024-01-04", "2024-01-05", "2024-01-08")

	withOffDay := append(completed("2024-01-06"), base...) // Saturday completion
	baseStats := ComputeStats(habit, base, "2024-01-08")
	offStats := ComputeStats(habit, withOffDay, "2024-01-08")

	if baseStats.CurrentStreak != offStats.CurrentStreak {
		t.Errorf("Off-day entry changed current streak: %d vs %d", baseStats.CurrentStreak, offStats.CurrentStreak)
	}
	if baseStats.LongestStreak != offStats.LongestStreak {
		t.Errorf("Off-day entry changed longest streak: %d vs %d", baseStats.LongestStreak, offStats.LongestStreak)
	}
}

func TestComputeStats_WalkStopsAtStartDate(t *testing.T) {
	// Entries exist before the start date; they must not count.
	habit := models.Habit{
		ID:        "habit-1",
		Rule:      models.Rule{Kind: constants.RuleEveryday},
		StartDate: "2024-01-03",
	}
	entries := completed("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04")

	stats := ComputeStats(habit, entries, "2024-01-04")

	if stats.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2 bounded by start date, got %d", stats.CurrentStreak)
	}
}

func TestComputeStats_NoEntries(t *testing.T) {
	habit := weekdayHabit("2024-01-01")

	stats := ComputeStats(habit, nil, "2024-01-10")

	if stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Errorf("Expected zero streaks with no entries, got %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.CompletedToday {
		t.Error("Expected completed today false with no entries")
	}
	if stats.LastCompletedDate != "" {
		t.Errorf("Expected empty last completed date, got %s", stats.LastCompletedDate)
	}
}

func TestComputeStats_LongestNeverBelowCurrent(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	datasets := [][]models.Entry{
		nil,
		completed("2024-01-08"),
		completed("2024-01-01", "2024-01-02", "2024-01-05", "2024-01-08"),
		append(completed("2024-01-05", "2024-01-08"), missed("2024-01-04")),
	}

	for i, entries := range datasets {
		stats := ComputeStats(habit, entries, "2024-01-08")
		if stats.LongestStreak < stats.CurrentStreak {
			t.Errorf("dataset %d: longest streak %d below current %d", i, stats.LongestStreak, stats.CurrentStreak)
		}
	}
}

func TestComputeStats_MalformedRuleProducesZeroStreaks(t *testing.T) {
	habit := models.Habit{
		ID:        "habit-1",
		Rule:      models.Rule{Kind: constants.RuleCustom}, // no day set
		StartDate: "2024-01-01",
	}
	entries := completed("2024-01-01", "2024-01-02", "2024-01-03")

	stats := ComputeStats(habit, entries, "2024-01-03")

	if stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Errorf("Expected malformed rule to yield zero streaks, got %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
}

func TestClassifyDate(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	entries := append(completed("2024-01-02"), missed("2024-01-03"))
	today := "2024-01-05"

	tests := []struct {
		name string
		day  string
		want DayStatus
	}{
		{"future date", "2024-01-09", StatusFuture},
		{"before start", "2023-12-29", StatusBeforeStart},
		{"weekend not scheduled", "2024-01-06", StatusNotScheduled},
		{"completed entry", "2024-01-02", StatusCompleted},
		{"explicit miss", "2024-01-03", StatusMissed},
		{"past scheduled unmarked", "2024-01-04", StatusMissed},
		{"today unmarked", "2024-01-05", StatusPendingToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDate(habit, tt.day, entries, today)
			if got != tt.want {
				t.Errorf("ClassifyDate(%s) = %s, want %s", tt.day, got, tt.want)
			}
			// Classification is pure; a repeat call must agree.
			if again := ClassifyDate(habit, tt.day, entries, today); again != got {
				t.Errorf("ClassifyDate(%s) not idempotent: %s then %s", tt.day, got, again)
			}
		})
	}
}

func TestClassifyDate_NotScheduledWinsOverWeekendEntry(t *testing.T) {
	habit := weekdayHabit("2024-01-01")
	entries := completed("2024-01-06") // Saturday

	got := ClassifyDate(habit, "2024-01-06", entries, "2024-01-08")
	if got != StatusNotScheduled {
		t.Errorf("Expected not_scheduled for a weekend entry on a weekday habit, got %s", got)
	}
}
