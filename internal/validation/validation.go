package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseRuleSpec parses the CLI rule syntax into a Rule. Accepted forms are
// the named rules (everyday, weekdays, weekends) and a comma-separated
// weekday list which becomes a custom rule. Unlike the streak predicate,
// parsing at the boundary reports errors so the user can fix the input.
func ParseRuleSpec(spec string) (models.Rule, error) {
	switch strings.TrimSpace(strings.ToLower(spec)) {
	case "":
		return models.Rule{}, fmt.Errorf("rule cannot be empty")
	case string(constants.RuleEveryday), "daily":
		return models.Rule{Kind: constants.RuleEveryday}, nil
	case string(constants.RuleWeekdays):
		return models.Rule{Kind: constants.RuleWeekdays}, nil
	case string(constants.RuleWeekends):
		return models.Rule{Kind: constants.RuleWeekends}, nil
	}

	days, err := ParseWeekdays(spec)
	if err != nil {
		return models.Rule{}, err
	}
	return models.Rule{Kind: constants.RuleCustom, Days: days}, nil
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday, 6=Saturday). Duplicates are collapsed; order is preserved.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday
	seen := make(map[time.Weekday]bool)

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := weekdayNames[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = time.Weekday(num)
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}

	return weekdays, nil
}

// FormatRule renders a rule for listing output.
func FormatRule(rule models.Rule) string {
	switch rule.Kind {
	case constants.RuleEveryday:
		return "everyday"
	case constants.RuleWeekdays:
		return "weekdays"
	case constants.RuleWeekends:
		return "weekends"
	case constants.RuleCustom:
		if len(rule.Days) == 0 {
			return "custom (invalid)"
		}
		var days []string
		for _, wd := range rule.Days {
			days = append(days, strings.ToLower(wd.String()[:3]))
		}
		return strings.Join(days, ",")
	default:
		return "unknown"
	}
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(day string) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	return nil
}

// ValidateHabitName checks a habit name for storage.
func ValidateHabitName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if len(trimmed) > 120 {
		return fmt.Errorf("habit name too long (max 120 characters)")
	}
	return nil
}
