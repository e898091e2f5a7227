package models

// StudySession is a contiguous block of focused study for one subject.
type StudySession struct {
	Subject    string   `bson:"subject" json:"subject"`
	StartTime  string   `bson:"start_time" json:"start_time"` // HH:MM
	EndTime    string   `bson:"end_time" json:"end_time"`
	Duration   int      `bson:"duration" json:"duration"` // hours, 1-3
	Type       string   `bson:"type" json:"type"`
	Techniques []string `bson:"techniques" json:"techniques"`
}

// BreakActivity is a short wellness interruption between sessions.
type BreakActivity struct {
	StartTime string `bson:"start_time" json:"start_time"`
	Duration  int    `bson:"duration" json:"duration"` // minutes, 15 or 30
	Activity  string `bson:"activity" json:"activity"`
	Type      string `bson:"type" json:"type"`
}

// DayPlan is one calendar day of the study schedule. Produced once, never
// mutated afterwards.
type DayPlan struct {
	Date            string          `bson:"date" json:"date"`
	DayOfWeek       string          `bson:"day_of_week" json:"day_of_week"`
	StudySessions   []StudySession  `bson:"study_sessions" json:"study_sessions"`
	TotalStudyHours int             `bson:"total_study_hours" json:"total_study_hours"`
	BreakActivities []BreakActivity `bson:"break_activities" json:"break_activities"`
	WellnessScore   float64         `bson:"wellness_score" json:"wellness_score"`
	StressLevel     string          `bson:"stress_level" json:"stress_level"`
	MotivationTip   string          `bson:"motivation_tip" json:"motivation_tip"`
}

// RevisionDay is one day of the reserved review window before an exam.
type RevisionDay struct {
	Date     string   `bson:"date" json:"date"`
	Focus    string   `bson:"focus" json:"focus"`
	Subjects []string `bson:"subjects" json:"subjects"`
}

// WellnessBreakSummary aggregates the breaks woven into a plan.
type WellnessBreakSummary struct {
	TotalBreaks  int `bson:"total_breaks" json:"total_breaks"`
	TotalMinutes int `bson:"total_minutes" json:"total_minutes"`
}

// ExamSchedule is the full plan for a single exam.
type ExamSchedule struct {
	ExamID                string               `bson:"exam_id" json:"exam_id"`
	ExamName              string               `bson:"exam_name" json:"exam_name"`
	ExamDate              string               `bson:"exam_date" json:"exam_date"`
	ExamType              string               `bson:"exam_type" json:"exam_type"`
	Subjects              []string             `bson:"subjects" json:"subjects"`
	TotalStudyHours       int                  `bson:"total_study_hours" json:"total_study_hours"`
	DaysAvailable         int                  `bson:"days_available" json:"days_available"`
	DailyPlan             []DayPlan            `bson:"daily_plan" json:"daily_plan"`
	RevisionSchedule      []RevisionDay        `bson:"revision_schedule" json:"revision_schedule"`
	WellnessBreaks        WellnessBreakSummary `bson:"wellness_breaks" json:"wellness_breaks"`
	StressLevelPrediction string               `bson:"stress_level_prediction" json:"stress_level_prediction"`
	SuccessProbability    float64              `bson:"success_probability" json:"success_probability"`
}

// Schedule is the result of one scheduling request: one ExamSchedule per
// exam, in ascending date order.
type Schedule struct {
	UserID            string         `bson:"user_id" json:"user_id,omitempty"`
	Schedule          []ExamSchedule `bson:"schedule" json:"schedule"`
	CreatedAt         string         `bson:"created_at" json:"created_at"`
	TotalExams        int            `bson:"total_exams" json:"total_exams"`
	StudyStartDate    string         `bson:"study_start_date" json:"study_start_date"`
	LastExamDate      string         `bson:"last_exam_date" json:"last_exam_date"`
	OptimizationNotes []string       `bson:"optimization_notes" json:"optimization_notes,omitempty"`
}
