package system

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable and schema current (Load validates both)
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		fmt.Println()
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Printf("✓ Storage reachable, schema current: OK\n")

	// Check 2: default user present
	user, err := ctx.Store.GetUserByName(constants.DefaultUserName)
	if err != nil {
		fmt.Printf("❌ Default user: FAIL (run 'stride init')\n")
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Printf("✓ Default user: OK\n")

	habits, err := ctx.Store.GetAllHabits(user.ID, true, true)
	if err != nil {
		return err
	}

	// Check 3: every habit has a parseable rule. A malformed rule renders
	// as zero streaks rather than an error, so surface it here.
	badRules := 0
	for _, habit := range habits {
		if !ruleLooksValid(habit.Rule) {
			fmt.Printf("   ⚠ habit %q has an unusable rule (%s)\n", habit.Name, habit.Rule.Kind)
			badRules++
		}
	}
	if badRules == 0 {
		fmt.Printf("✓ Habit rules: OK (%d habits)\n", len(habits))
	} else {
		fmt.Printf("⚠ Habit rules: %d habit(s) will always show zero streaks\n", badRules)
	}

	// Check 4: one entry per (habit, day). The unique index should make
	// duplicates impossible; report them if a hand-edited database has any.
	duplicates := 0
	for _, habit := range habits {
		entries, err := ctx.Store.GetEntriesForHabit(habit.ID)
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			if seen[e.Day] {
				fmt.Printf("   ❌ habit %q has duplicate entries for %s\n", habit.Name, e.Day)
				duplicates++
			}
			seen[e.Day] = true
		}
		for _, e := range entries {
			if validation.ValidateDate(e.Day) != nil {
				fmt.Printf("   ❌ habit %q has an entry with invalid day %q\n", habit.Name, e.Day)
				hasError = true
			}
		}
	}
	if duplicates == 0 {
		fmt.Printf("✓ Entry uniqueness: OK\n")
	} else {
		fmt.Printf("❌ Entry uniqueness: %d duplicate (habit, day) pair(s)\n", duplicates)
		hasError = true
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func ruleLooksValid(rule models.Rule) bool {
	switch rule.Kind {
	case constants.RuleEveryday, constants.RuleWeekdays, constants.RuleWeekends:
		return true
	case constants.RuleCustom:
		return len(rule.Days) > 0
	default:
		return false
	}
}
