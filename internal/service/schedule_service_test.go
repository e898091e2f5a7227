package service

import (
	"strings"
	"testing"

	"soulconnect-service/internal/models"
)

func TestStudyPoints(t *testing.T) {
	cases := []struct {
		name     string
		progress models.StudyProgress
		want     int
	}{
		{"short incomplete", models.StudyProgress{Duration: 1}, 30},
		{"short completed", models.StudyProgress{Duration: 1, Completed: true}, 40},
		{"hour bonus caps at three hours", models.StudyProgress{Duration: 6, Completed: true}, 50},
		{"quality bonus", models.StudyProgress{Duration: 2, Completed: true, Quality: 5}, 50},
		{"zero duration", models.StudyProgress{}, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StudyPoints(c.progress); got != c.want {
				t.Errorf("StudyPoints(%+v) = %d, want %d", c.progress, got, c.want)
			}
		})
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	schedule := &models.Schedule{
		Schedule: []models.ExamSchedule{
			{ExamName: "Physics Final", ExamDate: "2026-09-10"},
			{ExamName: "Chemistry Unit", ExamDate: "2026-09-03"},
			{ExamName: "Old Exam", ExamDate: "2026-08-20"},
		},
	}

	deadlines := upcomingDeadlines(schedule, "2026-09-01")
	if len(deadlines) != 2 {
		t.Fatalf("got %d deadlines, want 2 (past exam excluded)", len(deadlines))
	}
	for _, d := range deadlines {
		switch d.ExamName {
		case "Physics Final":
			if d.DaysLeft != 9 {
				t.Errorf("physics DaysLeft = %d, want 9", d.DaysLeft)
			}
		case "Chemistry Unit":
			if d.DaysLeft != 2 {
				t.Errorf("chemistry DaysLeft = %d, want 2", d.DaysLeft)
			}
		default:
			t.Errorf("unexpected deadline %s", d.ExamName)
		}
	}

	if got := upcomingDeadlines(schedule, "not-a-date"); len(got) != 0 {
		t.Errorf("bad date returned %d deadlines", len(got))
	}
}

func TestNextSession(t *testing.T) {
	schedule := &models.Schedule{
		Schedule: []models.ExamSchedule{
			{
				ExamName: "Physics Final",
				DailyPlan: []models.DayPlan{
					{Date: "2026-08-30", StudySessions: []models.StudySession{{Subject: "physics", StartTime: "09:00"}}},
					{Date: "2026-09-02", StudySessions: []models.StudySession{{Subject: "physics", StartTime: "09:00"}}},
				},
			},
			{
				ExamName: "Chemistry Unit",
				DailyPlan: []models.DayPlan{
					{Date: "2026-09-01", StudySessions: []models.StudySession{{Subject: "chemistry", StartTime: "10:00"}}},
					{Date: "2026-09-03"}, // rest day, no sessions
				},
			},
		},
	}

	got := nextSession(schedule, "2026-08-31")
	if got == nil || got.Date != "2026-09-01" || got.Subject != "chemistry" {
		t.Errorf("nextSession = %+v, want chemistry on 2026-09-01", got)
	}

	if got := nextSession(schedule, "2026-09-04"); got != nil {
		t.Errorf("nextSession past the plan = %+v, want nil", got)
	}
}

func TestAverageSuccess(t *testing.T) {
	empty := &models.Schedule{}
	if got := averageSuccess(empty); got != 0 {
		t.Errorf("empty schedule success = %v", got)
	}

	schedule := &models.Schedule{
		Schedule: []models.ExamSchedule{
			{SuccessProbability: 0.90},
			{SuccessProbability: 0.60},
		},
	}
	if got := averageSuccess(schedule); got != 0.75 {
		t.Errorf("averageSuccess = %v, want 0.75", got)
	}
}

func TestRecommendations(t *testing.T) {
	t.Run("no sessions yet", func(t *testing.T) {
		recs := recommendations(&AnalyticsResult{})
		if len(recs) != 1 || !strings.Contains(recs[0], "first study session") {
			t.Errorf("recs = %v", recs)
		}
	})

	t.Run("low completion flagged", func(t *testing.T) {
		recs := recommendations(&AnalyticsResult{
			TotalSessions:  10,
			CompletionRate: 40,
			HoursBySubject: map[string]float64{"physics": 5},
		})
		found := false
		for _, r := range recs {
			if strings.Contains(r, "60%") {
				found = true
			}
		}
		if !found {
			t.Errorf("low completion not flagged: %v", recs)
		}
	})

	t.Run("weakest subject called out", func(t *testing.T) {
		recs := recommendations(&AnalyticsResult{
			TotalSessions:  10,
			CompletionRate: 90,
			HoursBySubject: map[string]float64{"physics": 8, "chemistry": 2},
		})
		found := false
		for _, r := range recs {
			if strings.Contains(r, "chemistry") {
				found = true
			}
		}
		if !found {
			t.Errorf("weakest subject not flagged: %v", recs)
		}
	})

	t.Run("balanced habits praised", func(t *testing.T) {
		recs := recommendations(&AnalyticsResult{
			TotalSessions:  10,
			CompletionRate: 90,
			HoursBySubject: map[string]float64{"physics": 5},
		})
		if len(recs) != 1 || !strings.Contains(recs[0], "balance") {
			t.Errorf("recs = %v", recs)
		}
	})
}
