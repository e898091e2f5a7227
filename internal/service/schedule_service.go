package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/models"
	"soulconnect-service/internal/repository"
	"soulconnect-service/internal/scheduler"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoSchedule is returned when a user asks for a plan before creating one.
var ErrNoSchedule = errors.New("no schedule found")

// Study-session point shaping. Tuning knobs, not calibrated values.
var (
	studyBasePoints      = 25
	studyCompletionBonus = 10
	studyPointsPerHour   = 5
	studyHourBonusCap    = 15
	studyQualityBonus    = 5
)

// ScheduleService wraps the pure generator with persistence, point awards
// and the response extras the API returns.
type ScheduleService struct {
	Generator    *scheduler.Generator
	Repo         *repository.ScheduleRepository
	Progress     *repository.ProgressRepository
	Gamification *GamificationService
	Responses    *catalog.ResponseCatalog

	now func() time.Time
	rng *rand.Rand
}

func NewScheduleService(
	gen *scheduler.Generator,
	repo *repository.ScheduleRepository,
	progress *repository.ProgressRepository,
	gamification *GamificationService,
	rcat *catalog.ResponseCatalog,
) *ScheduleService {
	return &ScheduleService{
		Generator:    gen,
		Repo:         repo,
		Progress:     progress,
		Gamification: gamification,
		Responses:    rcat,
		now:          time.Now,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock overrides the clock and RNG, for tests.
func (s *ScheduleService) WithClock(now func() time.Time, rng *rand.Rand) *ScheduleService {
	s.now = now
	s.rng = rng
	return s
}

// CreateScheduleResult is the create endpoint payload.
type CreateScheduleResult struct {
	Schedule             *models.Schedule `json:"schedule"`
	OptimizationSummary  []string         `json:"optimization_summary"`
	WellnessPlan         []string         `json:"wellness_plan"`
	SuccessTips          []string         `json:"success_tips"`
	ResponseMessage      string           `json:"response_message"`
	EstimatedSuccessRate float64          `json:"estimated_success_rate"`
}

// Create generates and persists a schedule. Persistence and the point award
// are fire-and-forget: their failure is logged, never surfaced, and the
// computed schedule is returned regardless.
func (s *ScheduleService) Create(ctx context.Context, userID string, exams []models.Exam, prefs models.Preferences) (*CreateScheduleResult, error) {
	schedule, err := s.Generator.Generate(exams, prefs)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, userID, schedule); err != nil {
		log.Printf("warning: schedule for %s not persisted: %v", userID, err)
	}
	if _, _, err := s.Gamification.Award(ctx, userID, "exam_scheduled", 0); err != nil {
		log.Printf("warning: exam_scheduled points for %s not awarded: %v", userID, err)
	}

	tpl := s.Responses.ScheduleCreated[s.rng.Intn(len(s.Responses.ScheduleCreated))]
	return &CreateScheduleResult{
		Schedule:             schedule,
		OptimizationSummary:  optimizationSummary(schedule),
		WellnessPlan:         wellnessPlan(schedule),
		SuccessTips:          successTips(schedule),
		ResponseMessage:      tpl,
		EstimatedSuccessRate: averageSuccess(schedule),
	}, nil
}

// DailyPlanResult is the daily-plan endpoint payload.
type DailyPlanResult struct {
	DailyPlan         *models.DayPlan    `json:"daily_plan"`
	ExamName          string             `json:"exam_name,omitempty"`
	MotivationMessage string             `json:"motivation_message"`
	UpcomingDeadlines []UpcomingDeadline `json:"upcoming_deadlines"`
	WellnessReminders []string           `json:"wellness_reminders"`
}

// UpcomingDeadline is one exam still ahead of the requested date.
type UpcomingDeadline struct {
	ExamName string `json:"exam_name"`
	ExamDate string `json:"exam_date"`
	DaysLeft int    `json:"days_left"`
}

// DailyPlan returns the stored plan for one date.
func (s *ScheduleService) DailyPlan(ctx context.Context, userID, date string) (*DailyPlanResult, error) {
	schedule, err := s.Repo.FindByUser(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoSchedule
	}
	if err != nil {
		return nil, err
	}

	result := &DailyPlanResult{
		UpcomingDeadlines: upcomingDeadlines(schedule, date),
		WellnessReminders: []string{},
	}
	for _, es := range schedule.Schedule {
		for i := range es.DailyPlan {
			if es.DailyPlan[i].Date == date {
				day := es.DailyPlan[i]
				result.DailyPlan = &day
				result.ExamName = es.ExamName
				break
			}
		}
		if result.DailyPlan != nil {
			break
		}
	}

	if result.DailyPlan == nil {
		result.MotivationMessage = "No study sessions planned for this date. Rest up or get ahead - your call! 😊"
		return result, nil
	}

	if len(result.DailyPlan.StudySessions) > 0 {
		tpl := s.Responses.ScheduleReminder[s.rng.Intn(len(s.Responses.ScheduleReminder))]
		result.MotivationMessage = fmt.Sprintf(tpl, result.DailyPlan.StudySessions[0].Subject)
	} else {
		result.MotivationMessage = result.DailyPlan.MotivationTip
	}
	for _, b := range result.DailyPlan.BreakActivities {
		result.WellnessReminders = append(result.WellnessReminders,
			fmt.Sprintf("%s: %d minute %s", b.StartTime, b.Duration, b.Activity))
	}
	return result, nil
}

// ProgressResult is the progress endpoint payload.
type ProgressResult struct {
	PointsEarned      int          `json:"points_earned"`
	NewAchievements   []string     `json:"new_achievements"`
	MotivationMessage string       `json:"motivation_message"`
	TotalSessions     int          `json:"total_sessions"`
	NextSession       *NextSession `json:"next_session,omitempty"`
}

// NextSession points the user at the next planned study slot.
type NextSession struct {
	Date      string `json:"date"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	ExamName  string `json:"exam_name"`
}

// nextSession finds the earliest planned session on or after the given date.
func nextSession(schedule *models.Schedule, date string) *NextSession {
	var best *NextSession
	for _, es := range schedule.Schedule {
		for _, day := range es.DailyPlan {
			if day.Date < date || len(day.StudySessions) == 0 {
				continue
			}
			if best == nil || day.Date < best.Date {
				best = &NextSession{
					Date:      day.Date,
					Subject:   day.StudySessions[0].Subject,
					StartTime: day.StudySessions[0].StartTime,
					ExamName:  es.ExamName,
				}
			}
		}
	}
	return best
}

// StudyPoints shapes the award for one recorded session.
func StudyPoints(p models.StudyProgress) int {
	points := studyBasePoints
	if p.Completed {
		points += studyCompletionBonus
	}
	hourBonus := int(p.Duration) * studyPointsPerHour
	if hourBonus > studyHourBonusCap {
		hourBonus = studyHourBonusCap
	}
	points += hourBonus
	if p.Quality >= 4 {
		points += studyQualityBonus
	}
	return points
}

// RecordProgress stores a study session and awards its points.
func (s *ScheduleService) RecordProgress(ctx context.Context, userID string, progress models.StudyProgress) (*ProgressResult, error) {
	now := s.now()
	progress.UserID = userID
	progress.CreatedAt = now
	if progress.Date == "" {
		progress.Date = now.Format("2006-01-02")
	}
	if err := s.Progress.Create(ctx, &progress); err != nil {
		return nil, err
	}

	points := StudyPoints(progress)
	stats, newAchievements, err := s.Gamification.Award(ctx, userID, "study_session", points)
	if err != nil {
		log.Printf("warning: study points for %s not awarded: %v", userID, err)
		return &ProgressResult{PointsEarned: points, NewAchievements: []string{},
			MotivationMessage: "Progress saved. Great job studying!"}, nil
	}

	message := fmt.Sprintf("🎉 %s session logged! +%d points. Keep the momentum going! 💪", progress.Subject, points)
	if !progress.Completed {
		message = fmt.Sprintf("Logged %s - partial sessions still count! +%d points. 💙", progress.Subject, points)
	}

	result := &ProgressResult{
		PointsEarned:      points,
		NewAchievements:   newAchievements,
		MotivationMessage: message,
		TotalSessions:     stats.StudySessions,
	}
	if schedule, err := s.Repo.FindByUser(ctx, userID); err == nil {
		result.NextSession = nextSession(schedule, progress.Date)
	}
	return result, nil
}

// AnalyticsResult summarizes recorded study activity.
type AnalyticsResult struct {
	Timeframe       string             `json:"timeframe"`
	TotalSessions   int                `json:"total_sessions"`
	TotalHours      float64            `json:"total_hours"`
	CompletionRate  float64            `json:"completion_rate"`
	HoursBySubject  map[string]float64 `json:"hours_by_subject"`
	Recommendations []string           `json:"recommendations"`
}

// Analytics aggregates progress over 7d, 30d or all time.
func (s *ScheduleService) Analytics(ctx context.Context, userID, timeframe string) (*AnalyticsResult, error) {
	var since time.Time
	switch timeframe {
	case "7d", "":
		timeframe = "7d"
		since = s.now().AddDate(0, 0, -7)
	case "30d":
		since = s.now().AddDate(0, 0, -30)
	case "all":
		// zero time: no cutoff
	default:
		timeframe = "7d"
		since = s.now().AddDate(0, 0, -7)
	}

	sessions, err := s.Progress.FindByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	result := &AnalyticsResult{
		Timeframe:      timeframe,
		TotalSessions:  len(sessions),
		HoursBySubject: map[string]float64{},
	}
	completed := 0
	for _, session := range sessions {
		result.TotalHours += session.Duration
		result.HoursBySubject[session.Subject] += session.Duration
		if session.Completed {
			completed++
		}
	}
	if len(sessions) > 0 {
		result.CompletionRate = math.Round(float64(completed)/float64(len(sessions))*1000) / 10
	}
	result.Recommendations = recommendations(result)
	return result, nil
}

// -------- Response extras --------

func optimizationSummary(schedule *models.Schedule) []string {
	summary := []string{}
	for _, es := range schedule.Schedule {
		summary = append(summary, fmt.Sprintf(
			"%s (%s): %d study days, %dh planned, %.0f%% estimated success",
			es.ExamName, es.ExamDate, len(es.DailyPlan), es.TotalStudyHours, es.SuccessProbability*100))
	}
	summary = append(summary, schedule.OptimizationNotes...)
	return summary
}

func wellnessPlan(schedule *models.Schedule) []string {
	plan := []string{}
	for _, es := range schedule.Schedule {
		plan = append(plan, fmt.Sprintf(
			"%s: %d wellness breaks (%d minutes) woven into the study days",
			es.ExamName, es.WellnessBreaks.TotalBreaks, es.WellnessBreaks.TotalMinutes))
	}
	return plan
}

func successTips(schedule *models.Schedule) []string {
	tips := []string{
		"Stick to the planned sessions - consistency beats intensity.",
		"Use the revision window for review only, no new topics.",
	}
	for _, es := range schedule.Schedule {
		if es.StressLevelPrediction == "high" {
			tips = append(tips, fmt.Sprintf(
				"%s looks intense - protect your breaks and sleep.", es.ExamName))
		}
	}
	return tips
}

func averageSuccess(schedule *models.Schedule) float64 {
	if len(schedule.Schedule) == 0 {
		return 0
	}
	total := 0.0
	for _, es := range schedule.Schedule {
		total += es.SuccessProbability
	}
	return math.Round(total/float64(len(schedule.Schedule))*100) / 100
}

func upcomingDeadlines(schedule *models.Schedule, date string) []UpcomingDeadline {
	deadlines := []UpcomingDeadline{}
	from, err := time.Parse("2006-01-02", date)
	if err != nil {
		return deadlines
	}
	for _, es := range schedule.Schedule {
		examDate, err := time.Parse("2006-01-02", es.ExamDate)
		if err != nil || examDate.Before(from) {
			continue
		}
		deadlines = append(deadlines, UpcomingDeadline{
			ExamName: es.ExamName,
			ExamDate: es.ExamDate,
			DaysLeft: int(examDate.Sub(from).Hours() / 24),
		})
	}
	return deadlines
}

func recommendations(a *AnalyticsResult) []string {
	recs := []string{}
	if a.TotalSessions == 0 {
		return append(recs, "No sessions recorded yet - log your first study session to see insights!")
	}
	if a.CompletionRate < 60 {
		recs = append(recs, "Under 60% of sessions completed - try shorter sessions to build the habit.")
	}
	var weakest string
	var weakestHours float64
	for subject, hours := range a.HoursBySubject {
		if weakest == "" || hours < weakestHours {
			weakest, weakestHours = subject, hours
		}
	}
	if len(a.HoursBySubject) > 1 && weakest != "" {
		recs = append(recs, fmt.Sprintf("%s has the least time logged - consider an extra session.", weakest))
	}
	if len(recs) == 0 {
		recs = append(recs, "Great balance! Keep the current rhythm going.")
	}
	return recs
}
