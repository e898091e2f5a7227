package catalog

import "strings"

// ExamTypeConfig defines scheduling behavior for one exam category.
type ExamTypeConfig struct {
	DifficultyMultiplier float64 `json:"difficulty_multiplier"`
	RecommendedHours     int     `json:"recommended_hours"`
	RevisionDays         int     `json:"revision_days"`
}

// SubjectProfile describes how demanding a subject is to prepare for.
type SubjectProfile struct {
	Difficulty    string  `json:"difficulty"` // high | medium | low
	HoursPerTopic float64 `json:"hours_per_topic"`
	PracticeRatio float64 `json:"practice_ratio"`
}

// Helpline is a crisis support contact surfaced in crisis responses.
type Helpline struct {
	Number    string `json:"number"`
	Name      string `json:"name"`
	Available string `json:"available"`
}

// Catalog holds every fixed lookup table the service needs. It is built once
// at startup and passed explicitly to the components that read it.
type Catalog struct {
	ExamTypes map[string]ExamTypeConfig
	Subjects  map[string]SubjectProfile

	// Break activities, split by how long the preceding session ran.
	LongSessionBreaks  []string
	ShortSessionBreaks []string

	MotivationTips []string
	Helplines      []Helpline
}

const (
	DefaultExamType    = "semester"
	DefaultSubjectName = "mathematics"
)

// Default returns the catalog the service ships with.
func Default() *Catalog {
	return &Catalog{
		ExamTypes: map[string]ExamTypeConfig{
			"entrance":    {DifficultyMultiplier: 1.5, RecommendedHours: 100, RevisionDays: 7},
			"semester":    {DifficultyMultiplier: 1.2, RecommendedHours: 40, RevisionDays: 5},
			"competitive": {DifficultyMultiplier: 1.8, RecommendedHours: 150, RevisionDays: 10},
			"board":       {DifficultyMultiplier: 1.3, RecommendedHours: 60, RevisionDays: 7},
			"unit_test":   {DifficultyMultiplier: 0.8, RecommendedHours: 20, RevisionDays: 3},
		},
		Subjects: map[string]SubjectProfile{
			"mathematics":      {Difficulty: "high", HoursPerTopic: 3, PracticeRatio: 0.6},
			"physics":          {Difficulty: "high", HoursPerTopic: 2.5, PracticeRatio: 0.5},
			"chemistry":        {Difficulty: "medium", HoursPerTopic: 2, PracticeRatio: 0.4},
			"biology":          {Difficulty: "medium", HoursPerTopic: 2, PracticeRatio: 0.3},
			"english":          {Difficulty: "low", HoursPerTopic: 1.5, PracticeRatio: 0.2},
			"history":          {Difficulty: "low", HoursPerTopic: 1.5, PracticeRatio: 0.1},
			"computer_science": {Difficulty: "high", HoursPerTopic: 3, PracticeRatio: 0.7},
		},
		LongSessionBreaks:  []string{"stretching_session", "quick_walk", "mindful_breathing"},
		ShortSessionBreaks: []string{"hydration_break", "gratitude_moment", "eye_rest"},
		MotivationTips: []string{
			"Remember to take breaks! Your brain needs rest to consolidate learning.",
			"Stay hydrated and eat brain-healthy foods during study sessions.",
			"Practice active recall - test yourself without looking at notes!",
			"Get enough sleep. A well-rested mind learns much better.",
			"Use the Pomodoro technique: 25 minutes study, 5 minutes break.",
		},
		Helplines: []Helpline{
			{Number: "9152987821", Name: "AASRA", Available: "24/7"},
			{Number: "08046110007", Name: "Vandrevala Foundation", Available: "24/7"},
			{Number: "1800-599-0019", Name: "KIRAN Mental Health", Available: "24/7"},
			{Number: "112", Name: "Emergency Services", Available: "24/7"},
		},
	}
}

// ExamType resolves an exam type name, falling back to the semester config
// for unknown or empty names. Returns the resolved name alongside the config.
func (c *Catalog) ExamType(name string) (string, ExamTypeConfig) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cfg, ok := c.ExamTypes[key]; ok {
		return key, cfg
	}
	return DefaultExamType, c.ExamTypes[DefaultExamType]
}

// Subject resolves a subject name case-insensitively. Unknown subjects use
// the mathematics profile.
func (c *Catalog) Subject(name string) SubjectProfile {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := c.Subjects[key]; ok {
		return p
	}
	return c.Subjects[DefaultSubjectName]
}
