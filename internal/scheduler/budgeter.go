package scheduler

import (
	"time"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/models"
)

// buildDailyPlan walks the active study days before an exam and emits one
// DayPlan per day, consuming the subject budget as it goes. The revision
// window is excluded from the walk; when it swallows the whole span the
// result is an empty plan, not an error. Day dates run sequentially from
// the study start date.
func (g *Generator) buildDailyPlan(
	budget *SubjectBudget,
	daysAvailable int,
	prefs models.Preferences,
	cfg catalog.ExamTypeConfig,
	startDate time.Time,
) []models.DayPlan {
	activeDays := daysAvailable - cfg.RevisionDays
	plan := []models.DayPlan{}

	for day := 0; day < activeDays; day++ {
		date := startDate.AddDate(0, 0, day)
		alloc := DistributeDay(g.catalog, budget, prefs, g.rng)

		metrics := g.scorer.ScoreDay(len(alloc.Sessions), alloc.TotalHours, len(alloc.Breaks))
		plan = append(plan, models.DayPlan{
			Date:            date.Format(dateLayout),
			DayOfWeek:       date.Weekday().String(),
			StudySessions:   alloc.Sessions,
			TotalStudyHours: alloc.TotalHours,
			BreakActivities: alloc.Breaks,
			WellnessScore:   metrics.WellnessScore,
			StressLevel:     metrics.StressLevel,
			MotivationTip:   g.catalog.MotivationTips[g.rng.Intn(len(g.catalog.MotivationTips))],
		})

		for _, session := range alloc.Sessions {
			budget.Consume(session.Subject, session.Duration)
		}
	}
	return plan
}

// Revision focus areas cycle across the window, ending on the lightest one.
var revisionFocusCycle = []string{"concept_review", "practice_papers", "weak_areas"}

// buildRevisionSchedule reserves the last revisionDays days before the exam
// for review instead of new-topic study.
func buildRevisionSchedule(examDate time.Time, cfg catalog.ExamTypeConfig, subjects []string) []models.RevisionDay {
	window := []models.RevisionDay{}
	for i := cfg.RevisionDays; i >= 1; i-- {
		date := examDate.AddDate(0, 0, -i)
		window = append(window, models.RevisionDay{
			Date:     date.Format(dateLayout),
			Focus:    revisionFocusCycle[(cfg.RevisionDays-i)%len(revisionFocusCycle)],
			Subjects: subjects,
		})
	}
	return window
}

// summarizeBreaks aggregates the wellness breaks across a daily plan.
func summarizeBreaks(plan []models.DayPlan) models.WellnessBreakSummary {
	var summary models.WellnessBreakSummary
	for _, day := range plan {
		summary.TotalBreaks += len(day.BreakActivities)
		for _, b := range day.BreakActivities {
			summary.TotalMinutes += b.Duration
		}
	}
	return summary
}
