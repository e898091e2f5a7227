package scheduler

import (
	"errors"
	"testing"
	"time"

	"soulconnect-service/internal/models"
)

func fixedClock(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return t
	}
}

func testGenerator(today string) *Generator {
	return NewGenerator(nil, nil, fixedClock(today), testRNG())
}

func TestGenerateNoExams(t *testing.T) {
	g := testGenerator("2026-09-01")
	_, err := g.Generate(nil, models.Preferences{})
	if !errors.Is(err, ErrNoExams) {
		t.Fatalf("expected ErrNoExams, got %v", err)
	}
}

func TestGenerateInvalidDate(t *testing.T) {
	g := testGenerator("2026-09-01")
	_, err := g.Generate([]models.Exam{{Name: "Finals", Date: "next tuesday"}}, models.Preferences{})
	if err == nil {
		t.Fatal("expected error for unparseable exam date")
	}
}

func TestGenerateRevisionWindowSwallowsSpan(t *testing.T) {
	// Entrance exams reserve 7 revision days; with only 3 days available the
	// active-study plan must be empty, not an error.
	g := testGenerator("2026-09-01")
	schedule, err := g.Generate([]models.Exam{
		{Name: "JEE", Date: "2026-09-04", Type: "entrance", Subjects: []string{"physics", "mathematics"}},
	}, models.Preferences{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	es := schedule.Schedule[0]
	if es.DaysAvailable != 3 {
		t.Errorf("expected 3 days available, got %d", es.DaysAvailable)
	}
	if len(es.DailyPlan) != 0 {
		t.Errorf("expected 0 day plans, got %d", len(es.DailyPlan))
	}
	if len(es.RevisionSchedule) != 7 {
		t.Errorf("expected 7 revision days, got %d", len(es.RevisionSchedule))
	}
}

func TestGenerateDayPlanCountAndBudgetMonotonicity(t *testing.T) {
	g := testGenerator("2026-09-01")
	schedule, err := g.Generate([]models.Exam{
		{Name: "Semester Finals", Date: "2026-10-01", Type: "semester", Subjects: []string{"mathematics", "english"}},
	}, models.Preferences{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	es := schedule.Schedule[0]
	if es.DaysAvailable != 30 {
		t.Errorf("expected 30 days available, got %d", es.DaysAvailable)
	}
	// 30 available minus 5 semester revision days.
	if len(es.DailyPlan) != 25 {
		t.Fatalf("expected 25 day plans, got %d", len(es.DailyPlan))
	}
	if es.TotalStudyHours != 42 { // math 26 + english 16
		t.Errorf("expected 42 budgeted hours, got %d", es.TotalStudyHours)
	}

	scheduled := 0
	prevHours := -1
	for i, day := range es.DailyPlan {
		sum := 0
		for _, s := range day.StudySessions {
			sum += s.Duration
		}
		if sum != day.TotalStudyHours {
			t.Errorf("day %d: sessions sum %d != total %d", i, sum, day.TotalStudyHours)
		}
		if day.TotalStudyHours > models.DefaultMaxDailyHours {
			t.Errorf("day %d exceeds daily cap: %d", i, day.TotalStudyHours)
		}
		// Daily totals never grow once the budget starts running dry.
		if prevHours >= 0 && day.TotalStudyHours > prevHours {
			t.Errorf("day %d allocates %dh after a %dh day", i, day.TotalStudyHours, prevHours)
		}
		prevHours = day.TotalStudyHours
		scheduled += day.TotalStudyHours
	}
	// Scheduled hours never exceed the budget computed up front.
	if scheduled > es.TotalStudyHours {
		t.Errorf("scheduled %dh exceeds the %dh budget", scheduled, es.TotalStudyHours)
	}
	// 42h at 6h/day fills exactly the budget with days to spare.
	if scheduled != 42 {
		t.Errorf("expected the whole 42h budget scheduled, got %d", scheduled)
	}

	if es.DailyPlan[0].Date != "2026-09-01" {
		t.Errorf("expected plan to start today, got %s", es.DailyPlan[0].Date)
	}
}

func TestGenerateOrdersExamsByDate(t *testing.T) {
	g := testGenerator("2026-09-01")
	schedule, err := g.Generate([]models.Exam{
		{Name: "Later", Date: "2026-11-10", Type: "semester", Subjects: []string{"english"}},
		{Name: "Sooner", Date: "2026-09-20", Type: "unit_test", Subjects: []string{"history"}},
	}, models.Preferences{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schedule.Schedule[0].ExamName != "Sooner" || schedule.Schedule[1].ExamName != "Later" {
		t.Errorf("expected ascending date order, got %s then %s",
			schedule.Schedule[0].ExamName, schedule.Schedule[1].ExamName)
	}
	// The second exam's window opens the day after the first one.
	if got := schedule.Schedule[1].DaysAvailable; got != 50 {
		t.Errorf("expected 50 days for the later exam, got %d", got)
	}
	if schedule.TotalExams != 2 {
		t.Errorf("expected 2 total exams, got %d", schedule.TotalExams)
	}
	if schedule.LastExamDate != "2026-11-10" {
		t.Errorf("expected last exam date 2026-11-10, got %s", schedule.LastExamDate)
	}
	if schedule.StudyStartDate != "2026-09-01" {
		t.Errorf("expected study start 2026-09-01, got %s", schedule.StudyStartDate)
	}
}

func TestGenerateDeterministicUnderFixedSeed(t *testing.T) {
	exams := []models.Exam{
		{Name: "Boards", Date: "2026-10-15", Type: "board", Subjects: []string{"physics", "chemistry", "english"}},
	}
	a, err := testGenerator("2026-09-01").Generate(exams, models.Preferences{MaxDailyHours: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := testGenerator("2026-09-01").Generate(exams, models.Preferences{MaxDailyHours: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dayA, dayB := a.Schedule[0].DailyPlan[0], b.Schedule[0].DailyPlan[0]
	if dayA.MotivationTip != dayB.MotivationTip {
		t.Errorf("same seed produced different tips: %q vs %q", dayA.MotivationTip, dayB.MotivationTip)
	}
	for i := range dayA.BreakActivities {
		if dayA.BreakActivities[i].Activity != dayB.BreakActivities[i].Activity {
			t.Errorf("same seed produced different break activities at %d", i)
		}
	}
}

func TestExamIDDeterministic(t *testing.T) {
	exam := models.Exam{Name: "Finals", Date: "2026-10-01"}
	a, b := ExamID(exam), ExamID(exam)
	if a != b {
		t.Errorf("exam id not stable: %s vs %s", a, b)
	}
	if len(a) != 8 {
		t.Errorf("expected 8 character id, got %q", a)
	}
	other := ExamID(models.Exam{Name: "Finals", Date: "2026-10-02"})
	if a == other {
		t.Error("different dates must produce different ids")
	}
}

func TestGenerateUnknownExamTypeFallsBack(t *testing.T) {
	g := testGenerator("2026-09-01")
	schedule, err := g.Generate([]models.Exam{
		{Name: "Mystery", Date: "2026-09-30", Type: "viva", Subjects: []string{"english"}},
	}, models.Preferences{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := schedule.Schedule[0].ExamType; got != "semester" {
		t.Errorf("expected semester fallback, got %s", got)
	}
}
