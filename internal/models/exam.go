package models

// Exam is one upcoming exam as submitted by the client. Immutable once
// scheduling begins.
type Exam struct {
	Name     string   `bson:"name" json:"name"`
	Date     string   `bson:"date" json:"date"` // YYYY-MM-DD
	Type     string   `bson:"type,omitempty" json:"type,omitempty"`
	Subjects []string `bson:"subjects" json:"subjects"`
}

// Preferences are the user-configurable scheduling knobs for one run.
type Preferences struct {
	MaxDailyHours int `bson:"max_daily_hours,omitempty" json:"max_daily_hours,omitempty"`
	// BreakInterval is accepted for compatibility but break pacing is
	// driven by session length, not by this interval.
	BreakInterval int `bson:"break_interval,omitempty" json:"break_interval,omitempty"`
}

const (
	DefaultMaxDailyHours = 6
	DefaultBreakInterval = 90
)

// WithDefaults fills in the default knobs for any unset field.
func (p Preferences) WithDefaults() Preferences {
	if p.MaxDailyHours <= 0 {
		p.MaxDailyHours = DefaultMaxDailyHours
	}
	if p.BreakInterval <= 0 {
		p.BreakInterval = DefaultBreakInterval
	}
	return p
}
