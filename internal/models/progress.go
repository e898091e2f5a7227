package models

import "time"

// StudyProgress is one recorded study session against the active schedule.
type StudyProgress struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Subject   string    `bson:"subject" json:"subject"`
	Duration  float64   `bson:"duration" json:"duration"` // hours actually studied
	Completed bool      `bson:"completed" json:"completed"`
	Quality   int       `bson:"quality" json:"quality"` // 1-5 self-assessed
	Date      string    `bson:"date" json:"date"`       // YYYY-MM-DD
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
