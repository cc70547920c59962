package streak

import (
	"sort"
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

// DayStatus classifies a single calendar date of a habit's history for
// display (calendar grids, the TUI list, the today view).
type DayStatus string

const (
	StatusCompleted    DayStatus = "completed"
	StatusMissed       DayStatus = "missed"
	StatusNotScheduled DayStatus = "not_scheduled"
	StatusPendingToday DayStatus = "pending_today"
	StatusFuture       DayStatus = "future"
	StatusBeforeStart  DayStatus = "before_start"
)

// Stats holds the derived statistics for one habit. Nothing here is ever
// persisted; it is recomputed from the raw entry set on every read.
type Stats struct {
	CurrentStreak     int    `json:"current_streak"`
	LongestStreak     int    `json:"longest_streak"`
	CompletedToday    bool   `json:"completed_today"`
	LastCompletedDate string `json:"last_completed_date,omitempty"` // YYYY-MM-DD
}

// ComputeStats derives streak statistics for a habit from its entries.
// Entries may arrive in any order. The today parameter (YYYY-MM-DD) is
// injected rather than read from the clock so callers and tests control it.
func ComputeStats(habit models.Habit, entries []models.Entry, today string) Stats {
	todayDate, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return Stats{}
	}

	byDay := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		byDay[e.Day] = e
	}

	stats := Stats{
		CurrentStreak: currentStreak(habit, byDay, todayDate),
		LongestStreak: longestStreak(habit, entries),
	}

	if e, ok := byDay[today]; ok && e.Completed {
		stats.CompletedToday = true
	}
	for _, e := range entries {
		if e.Completed && e.Day > stats.LastCompletedDate {
			stats.LastCompletedDate = e.Day
		}
	}

	return stats
}

// currentStreak walks backward from today one calendar day at a time.
// Non-scheduled days are skipped without affecting the count. A scheduled
// day extends the count on a completed entry; a missed or absent entry
// terminates the walk, as does crossing the habit's start date. Today
// itself follows the same rules, which means a scheduled today with no
// entry yields 0: a pending day does not count yet.
func currentStreak(habit models.Habit, byDay map[string]models.Entry, today time.Time) int {
	start, err := time.Parse(constants.DateFormat, habit.StartDate)
	if err != nil {
		// Unparseable start date bounds the walk at today.
		start = today
	}

	streak := 0
	for day := today; !day.Before(start); day = day.AddDate(0, 0, -1) {
		if !IsScheduled(habit.Rule, day) {
			continue
		}
		e, ok := byDay[day.Format(constants.DateFormat)]
		if !ok || !e.Completed {
			break
		}
		streak++
	}
	return streak
}

// longestStreak scans completed entries oldest to newest. Completions one
// day apart extend the run; a wider gap still extends it when every skipped
// day is non-scheduled, and resets it to 1 when any skipped day was a day
// the habit should have been done. Completions falling on non-scheduled
// days are ignored entirely so that entries on off days can never change
// either streak value.
func longestStreak(habit models.Habit, entries []models.Entry) int {
	var days []time.Time
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		d, err := time.Parse(constants.DateFormat, e.Day)
		if err != nil || !IsScheduled(habit.Rule, d) {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 0
	run := 0
	var prev time.Time
	for i, d := range days {
		if i == 0 {
			run = 1
		} else if gapBreaksRun(habit.Rule, prev, d) {
			run = 1
		} else {
			run++
		}
		if run > longest {
			longest = run
		}
		prev = d
	}
	return longest
}

// gapBreaksRun reports whether any day strictly between two completions was
// a scheduled day. A one-day gap has nothing in between and never breaks.
func gapBreaksRun(rule models.Rule, prev, next time.Time) bool {
	for day := prev.AddDate(0, 0, 1); day.Before(next); day = day.AddDate(0, 0, 1) {
		if IsScheduled(rule, day) {
			return true
		}
	}
	return false
}

// ClassifyDate returns the display status of one (habit, date) pair. It is
// a pure function of its inputs: future and before-start take precedence,
// then the schedule, then the entry's presence and flag. A past scheduled
// day with no entry renders as missed; only today renders as pending.
func ClassifyDate(habit models.Habit, day string, entries []models.Entry, today string) DayStatus {
	date, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return StatusNotScheduled
	}
	if _, err := time.Parse(constants.DateFormat, today); err != nil {
		return StatusNotScheduled
	}

	if day > today {
		return StatusFuture
	}
	if habit.StartDate != "" && day < habit.StartDate {
		return StatusBeforeStart
	}
	if !IsScheduled(habit.Rule, date) {
		return StatusNotScheduled
	}

	for _, e := range entries {
		if e.Day != day {
			continue
		}
		if e.Completed {
			return StatusCompleted
		}
		return StatusMissed
	}

	if day == today {
		return StatusPendingToday
	}
	return StatusMissed
}
