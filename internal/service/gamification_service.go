package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/models"
	"soulconnect-service/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	pointsPerLevel = 100
	maxLevel       = 100

	leaderboardKey = "leaderboard:points"

	weekendBonusFactor = 1.5
)

// ErrLeaderboardUnavailable is returned when redis is not configured.
var ErrLeaderboardUnavailable = errors.New("leaderboard unavailable")

// ErrUnknownChallenge is returned for challenge ids outside the rotation.
var ErrUnknownChallenge = errors.New("invalid challenge id")

const dateLayout = "2006-01-02"

// -------- Pure gamification helpers --------

// CalculateLevel maps total points to a level: one level per 100 points,
// capped at 100.
func CalculateLevel(totalPoints int) int {
	level := totalPoints/pointsPerLevel + 1
	if level > maxLevel {
		level = maxLevel
	}
	return level
}

// UpdateStreak advances the daily streak given today's date. A gap resets
// the streak to one; repeated activity on the same day changes nothing.
func UpdateStreak(stats *models.UserStats, today string) {
	if stats.LastActivity == today {
		return
	}
	yesterday := ""
	if t, err := time.Parse(dateLayout, today); err == nil {
		yesterday = t.AddDate(0, 0, -1).Format(dateLayout)
	}
	if stats.LastActivity == yesterday {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.LastActivity = today
}

// WeekendBonus applies the 1.5x weekend multiplier.
func WeekendBonus(points int, day time.Weekday) int {
	if day == time.Saturday || day == time.Sunday {
		return int(float64(points) * weekendBonusFactor)
	}
	return points
}

// CheckAchievements unlocks any achievement whose threshold the stats now
// meet, appends it to the stats and returns the newly unlocked ids.
func CheckAchievements(stats *models.UserStats) []string {
	unlocked := map[string]bool{}
	for _, id := range stats.Achievements {
		unlocked[id] = true
	}

	checks := []struct {
		id  string
		met bool
	}{
		{"first_chat", stats.TotalPoints >= 10},
		{"week_streak", stats.CurrentStreak >= 7},
		{"study_master", stats.StudySessions >= 20},
		{"voice_explorer", stats.VoiceMessages >= 10},
		{"schedule_keeper", stats.ScheduleFollowed >= 5},
		{"mood_tracker", stats.MoodEntries >= 10},
		{"exam_ace", stats.ExamsCompleted >= 1},
		{"wellness_guru", stats.Level >= 10},
		{"goal_crusher", stats.GoalsAchieved >= 10},
	}

	newAchievements := []string{}
	for _, check := range checks {
		if check.met && !unlocked[check.id] {
			newAchievements = append(newAchievements, check.id)
			stats.Achievements = append(stats.Achievements, check.id)
		}
	}
	return newAchievements
}

// NextLevelRequirement describes the remaining climb to the next level.
type NextLevelRequirement struct {
	NextLevel    int `json:"next_level"`
	PointsNeeded int `json:"points_needed"`
}

func NextLevelRequirements(stats *models.UserStats) NextLevelRequirement {
	if stats.Level >= maxLevel {
		return NextLevelRequirement{NextLevel: maxLevel, PointsNeeded: 0}
	}
	return NextLevelRequirement{
		NextLevel:    stats.Level + 1,
		PointsNeeded: pointsPerLevel - stats.TotalPoints%pointsPerLevel,
	}
}

// ChallengeOffer is a daily challenge instance offered to one user.
type ChallengeOffer struct {
	catalog.DailyChallenge
	WeekendBonus bool   `json:"weekend_bonus,omitempty"`
	ExpiresAt    string `json:"expires_at"`
}

// -------- Service --------

// GamificationService orchestrates points, achievements, challenges and the
// leaderboard.
type GamificationService struct {
	Repo      *repository.GamificationRepository
	Catalog   *catalog.GamificationCatalog
	Responses *catalog.ResponseCatalog
	Redis     *redis.Client // nil when not configured

	now func() time.Time
	rng *rand.Rand
}

func NewGamificationService(
	repo *repository.GamificationRepository,
	gcat *catalog.GamificationCatalog,
	rcat *catalog.ResponseCatalog,
	redisClient *redis.Client,
) *GamificationService {
	return &GamificationService{
		Repo:      repo,
		Catalog:   gcat,
		Responses: rcat,
		Redis:     redisClient,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock overrides the clock and RNG, for tests.
func (s *GamificationService) WithClock(now func() time.Time, rng *rand.Rand) *GamificationService {
	s.now = now
	s.rng = rng
	return s
}

func newUserStats(userID string, now time.Time) *models.UserStats {
	return &models.UserStats{
		UserID:          userID,
		Level:           1,
		Achievements:    []string{},
		DailyActivities: map[string]models.DayActivity{},
		ChallengesDone:  []string{},
		CreatedAt:       now,
	}
}

// Stats loads a user's stats, returning a fresh zero profile for unknown
// users without persisting it.
func (s *GamificationService) Stats(ctx context.Context, userID string) (*models.UserStats, error) {
	stats, err := s.Repo.FindByUser(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return newUserStats(userID, s.now()), nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Award adds points for an action, refreshes level, streak and achievements,
// persists the stats and mirrors the score onto the leaderboard. A points
// value of zero or below means "use the action's table value".
func (s *GamificationService) Award(ctx context.Context, userID, action string, points int) (*models.UserStats, []string, error) {
	if points <= 0 {
		points = s.Catalog.PointsFor(action)
	}

	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	today := now.Format(dateLayout)

	stats.TotalPoints += points
	stats.Level = CalculateLevel(stats.TotalPoints)
	stats.ProgressToNextLevel = stats.TotalPoints % pointsPerLevel
	UpdateStreak(stats, today)

	day := stats.DailyActivities[today]
	day.Actions = append(day.Actions, action)
	day.Points += points
	if stats.DailyActivities == nil {
		stats.DailyActivities = map[string]models.DayActivity{}
	}
	stats.DailyActivities[today] = day

	switch action {
	case "study_session":
		stats.StudySessions++
	case "voice_chat":
		stats.VoiceMessages++
	case "mood_tracking":
		stats.MoodEntries++
	case "schedule_followed":
		stats.ScheduleFollowed++
	case "goal_achieved":
		stats.GoalsAchieved++
	}

	newAchievements := CheckAchievements(stats)

	if err := s.Repo.Upsert(ctx, stats); err != nil {
		return nil, nil, err
	}

	if s.Redis != nil {
		s.Redis.ZAdd(ctx, leaderboardKey, redis.Z{
			Score:  float64(stats.TotalPoints),
			Member: userID,
		})
	}

	return stats, newAchievements, nil
}

// Motivation builds the gamified response line for a profile view or award.
func (s *GamificationService) Motivation(stats *models.UserStats, newAchievements []string) string {
	if len(newAchievements) > 0 {
		if a, ok := s.Catalog.AchievementByID(newAchievements[0]); ok {
			tpl := s.Responses.AchievementUnlocked[s.rng.Intn(len(s.Responses.AchievementUnlocked))]
			return fmt.Sprintf(tpl, a.Title, a.Points)
		}
	}
	if stats.Level > stats.LastNotifiedLevel {
		stats.LastNotifiedLevel = stats.Level
		tpl := s.Responses.LevelUp[s.rng.Intn(len(s.Responses.LevelUp))]
		return fmt.Sprintf(tpl, stats.Level)
	}
	if stats.CurrentStreak >= 7 {
		return fmt.Sprintf("🔥 %d day streak! You're absolutely crushing it at Level %d! Your consistency is inspiring! 🌟",
			stats.CurrentStreak, stats.Level)
	}
	return fmt.Sprintf("💪 Great job! Level %d, %d points earned. Every step counts in your mental health journey! 🌟",
		stats.Level, stats.TotalPoints)
}

// DailyChallenge offers a not-yet-completed challenge for today, with the
// weekend bonus applied. Completing the whole rotation earns a bonus
// challenge instead.
func (s *GamificationService) DailyChallenge(stats *models.UserStats) ChallengeOffer {
	now := s.now()
	today := now.Format(dateLayout)

	completedToday := map[string]bool{}
	for _, id := range stats.DailyActivities[today].Challenges {
		completedToday[id] = true
	}

	available := []catalog.DailyChallenge{}
	for _, c := range s.Catalog.Challenges {
		if !completedToday[c.ID] {
			available = append(available, c)
		}
	}

	var challenge catalog.DailyChallenge
	if len(available) == 0 {
		challenge = catalog.DailyChallenge{
			ID:          "bonus_challenge",
			Title:       "🌟 Bonus Challenge",
			Description: "You've completed all daily challenges! Share your success story with Alex",
			Points:      100,
			Type:        "bonus",
			Difficulty:  "epic",
		}
	} else {
		challenge = available[s.rng.Intn(len(available))]
	}

	offer := ChallengeOffer{DailyChallenge: challenge}
	if bonus := WeekendBonus(challenge.Points, now.Weekday()); bonus != challenge.Points {
		offer.Points = bonus
		offer.WeekendBonus = true
	}
	offer.ExpiresAt = now.AddDate(0, 0, 1).Format(dateLayout) + " 23:59:59"
	return offer
}

// ChallengeResult is the payload returned after completing a challenge.
type ChallengeResult struct {
	Success       bool           `json:"success"`
	PointsEarned  int            `json:"points_earned"`
	Message       string         `json:"message"`
	NextChallenge ChallengeOffer `json:"next_challenge"`
	TotalPoints   int            `json:"total_points"`
	Level         int            `json:"level"`
}

// CompleteChallenge marks a challenge done for today and awards its points.
func (s *GamificationService) CompleteChallenge(ctx context.Context, userID, challengeID string) (*ChallengeResult, error) {
	challenge, ok := s.Catalog.ChallengeByID(challengeID)
	if !ok {
		return nil, ErrUnknownChallenge
	}

	now := s.now()
	points := WeekendBonus(challenge.Points, now.Weekday())

	stats, _, err := s.Award(ctx, userID, "daily_challenge_completed", points)
	if err != nil {
		return nil, err
	}

	today := now.Format(dateLayout)
	day := stats.DailyActivities[today]
	day.Challenges = append(day.Challenges, challengeID)
	stats.DailyActivities[today] = day
	stats.ChallengesDone = append(stats.ChallengesDone, challengeID)
	if err := s.Repo.Upsert(ctx, stats); err != nil {
		return nil, err
	}

	tpl := s.Responses.ChallengeComplete[s.rng.Intn(len(s.Responses.ChallengeComplete))]
	return &ChallengeResult{
		Success:       true,
		PointsEarned:  points,
		Message:       fmt.Sprintf(tpl, points),
		NextChallenge: s.DailyChallenge(stats),
		TotalPoints:   stats.TotalPoints,
		Level:         stats.Level,
	}, nil
}

// Leaderboard returns the top entries by total points.
func (s *GamificationService) Leaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if s.Redis == nil {
		return nil, ErrLeaderboardUnavailable
	}
	rows, err := s.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, models.LeaderboardEntry{
			Rank:   i + 1,
			UserID: fmt.Sprint(row.Member),
			Points: row.Score,
		})
	}
	return entries, nil
}

// Rank returns a user's 1-based leaderboard position, or 0 when unranked.
func (s *GamificationService) Rank(ctx context.Context, userID string) int {
	if s.Redis == nil || userID == "" {
		return 0
	}
	rank, err := s.Redis.ZRevRank(ctx, leaderboardKey, userID).Result()
	if err != nil {
		return 0
	}
	return int(rank) + 1
}
