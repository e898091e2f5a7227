package models

import "time"

// DayActivity records what a user did on one calendar day.
type DayActivity struct {
	Actions    []string `bson:"actions" json:"actions"`
	Points     int      `bson:"points" json:"points"`
	Challenges []string `bson:"challenges" json:"challenges"`
}

// UserStats is the per-user gamification document. Last write wins.
type UserStats struct {
	UserID              string                 `bson:"user_id" json:"user_id"`
	TotalPoints         int                    `bson:"total_points" json:"total_points"`
	Level               int                    `bson:"level" json:"level"`
	ProgressToNextLevel int                    `bson:"progress_to_next_level" json:"progress_to_next_level"`
	CurrentStreak       int                    `bson:"current_streak" json:"current_streak"`
	LongestStreak       int                    `bson:"longest_streak" json:"longest_streak"`
	LastActivity        string                 `bson:"last_activity,omitempty" json:"last_activity,omitempty"` // YYYY-MM-DD
	LastNotifiedLevel   int                    `bson:"last_notified_level" json:"last_notified_level"`
	Achievements        []string               `bson:"achievements" json:"achievements"`
	DailyActivities     map[string]DayActivity `bson:"daily_activities" json:"daily_activities"`
	StudySessions       int                    `bson:"study_sessions" json:"study_sessions"`
	TotalStudyHours     float64                `bson:"total_study_hours" json:"total_study_hours"`
	GoalsAchieved       int                    `bson:"goals_achieved" json:"goals_achieved"`
	VoiceMessages       int                    `bson:"voice_messages" json:"voice_messages"`
	MoodEntries         int                    `bson:"mood_entries" json:"mood_entries"`
	ScheduleFollowed    int                    `bson:"schedule_followed_days" json:"schedule_followed_days"`
	ExamsCompleted      int                    `bson:"exams_completed" json:"exams_completed"`
	ChallengesDone      []string               `bson:"challenges_completed" json:"challenges_completed"`
	CreatedAt           time.Time              `bson:"created_at" json:"created_at"`
}

// LeaderboardEntry is one row of the points ranking.
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	UserID string  `json:"user_id"`
	Points float64 `json:"points"`
}
