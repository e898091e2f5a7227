package scheduler

import (
	"crypto/md5"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/models"
)

const dateLayout = "2006-01-02"

// ErrNoExams is returned when a scheduling request carries no exams.
var ErrNoExams = errors.New("no exams provided")

// Generator turns a set of exams and preferences into a multi-day study
// schedule. It performs no I/O; the clock and RNG are injected so output is
// reproducible under test.
type Generator struct {
	catalog *catalog.Catalog
	scorer  Scorer
	now     func() time.Time
	rng     *rand.Rand
}

// NewGenerator builds a generator. Nil arguments fall back to the default
// catalog, the heuristic scorer, the wall clock and a time-seeded RNG.
func NewGenerator(cat *catalog.Catalog, scorer Scorer, now func() time.Time, rng *rand.Rand) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	if scorer == nil {
		scorer = NewHeuristicScorer()
	}
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{catalog: cat, scorer: scorer, now: now, rng: rng}
}

// Generate produces the full schedule: one per-exam plan in ascending exam
// date order, plus the envelope summary fields.
func (g *Generator) Generate(exams []models.Exam, prefs models.Preferences) (*models.Schedule, error) {
	if len(exams) == 0 {
		return nil, ErrNoExams
	}
	prefs = prefs.WithDefaults()

	type datedExam struct {
		exam models.Exam
		date time.Time
	}
	sorted := make([]datedExam, 0, len(exams))
	for _, exam := range exams {
		date, err := time.Parse(dateLayout, exam.Date)
		if err != nil {
			return nil, fmt.Errorf("exam %q has invalid date %q: %w", exam.Name, exam.Date, err)
		}
		sorted = append(sorted, datedExam{exam: exam, date: date})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.Before(sorted[j].date)
	})

	now := g.now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	anchor := startDate

	examSchedules := make([]models.ExamSchedule, 0, len(sorted))
	for _, de := range sorted {
		daysAvailable := int(de.date.Sub(anchor).Hours() / 24)
		if daysAvailable < 1 {
			daysAvailable = 1
		}

		typeName, cfg := g.catalog.ExamType(de.exam.Type)
		budget := EstimateSubjectHours(g.catalog, de.exam.Subjects, cfg)
		totalHours := budget.Total()

		daily := g.buildDailyPlan(budget, daysAvailable, prefs, cfg, startDate)
		scheduled := 0
		for _, day := range daily {
			scheduled += day.TotalStudyHours
		}

		examSchedules = append(examSchedules, models.ExamSchedule{
			ExamID:                ExamID(de.exam),
			ExamName:              de.exam.Name,
			ExamDate:              de.exam.Date,
			ExamType:              typeName,
			Subjects:              de.exam.Subjects,
			TotalStudyHours:       totalHours,
			DaysAvailable:         daysAvailable,
			DailyPlan:             daily,
			RevisionSchedule:      buildRevisionSchedule(de.date, cfg, de.exam.Subjects),
			WellnessBreaks:        summarizeBreaks(daily),
			StressLevelPrediction: g.scorer.PredictStress(daily),
			SuccessProbability:    g.scorer.SuccessProbability(scheduled, cfg.RecommendedHours),
		})

		// The next exam's window opens the day after this one.
		anchor = de.date.AddDate(0, 0, 1)
	}

	return &models.Schedule{
		Schedule:          examSchedules,
		CreatedAt:         now.Format(time.RFC3339),
		TotalExams:        len(exams),
		StudyStartDate:    startDate.Format(dateLayout),
		LastExamDate:      sorted[len(sorted)-1].exam.Date,
		OptimizationNotes: optimizationNotes(examSchedules),
	}, nil
}

// ExamID derives a stable identifier from an exam's name and date.
func ExamID(exam models.Exam) string {
	sum := md5.Sum([]byte(exam.Name + "_" + exam.Date))
	return fmt.Sprintf("%x", sum)[:8]
}

// optimizationNotes flags plans that look too tight to cover their budget.
func optimizationNotes(schedules []models.ExamSchedule) []string {
	notes := []string{}
	for _, es := range schedules {
		if len(es.DailyPlan) == 0 {
			notes = append(notes, fmt.Sprintf(
				"%s is inside its revision window; only review days remain", es.ExamName))
			continue
		}
		scheduled := 0
		for _, day := range es.DailyPlan {
			scheduled += day.TotalStudyHours
		}
		if scheduled < es.TotalStudyHours {
			notes = append(notes, fmt.Sprintf(
				"%s: %d of %d required hours fit before the revision window",
				es.ExamName, scheduled, es.TotalStudyHours))
		}
	}
	return notes
}
