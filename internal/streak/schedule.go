package streak

import (
	"time"

	"github.com/stride-cli/stride/internal/constants"
	"github.com/stride-cli/stride/internal/models"
)

// IsScheduled determines if a habit is due on the given date based on its
// recurrence rule. A malformed rule (unknown kind, or a custom rule with an
// empty day set) is treated as never scheduled so a bad row degrades stats
// instead of breaking them.
func IsScheduled(rule models.Rule, date time.Time) bool {
	switch rule.Kind {
	case constants.RuleEveryday:
		return true
	case constants.RuleWeekdays:
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case constants.RuleWeekends:
		wd := date.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case constants.RuleCustom:
		if len(rule.Days) == 0 {
			return false
		}
		for _, wd := range rule.Days {
			if date.Weekday() == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IsScheduledDay is IsScheduled for a YYYY-MM-DD date string. An unparseable
// day is never scheduled.
func IsScheduledDay(rule models.Rule, day string) bool {
	date, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return false
	}
	return IsScheduled(rule, date)
}
