package constants

// RuleKind represents the kind of recurrence rule attached to a habit
type RuleKind string

const (
	AppName            = "stride"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/stride/stride.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Rule kinds
	RuleEveryday RuleKind = "everyday"
	RuleWeekdays RuleKind = "weekdays"
	RuleWeekends RuleKind = "weekends"
	RuleCustom   RuleKind = "custom"

	// DefaultUserName is the user provisioned by 'stride init' for local use
	DefaultUserName = "local"

	// DefaultCalendarWeeks is the window rendered by 'stride calendar'
	DefaultCalendarWeeks = 12
)
