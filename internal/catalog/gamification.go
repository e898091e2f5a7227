package catalog

// Achievement is one unlockable badge.
type Achievement struct {
	ID          string `json:"id"`
	Points      int    `json:"points"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
}

// DailyChallenge is one rotating wellness task.
type DailyChallenge struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Points        int    `json:"points"`
	Type          string `json:"type"`
	EstimatedTime string `json:"estimated_time,omitempty"`
	Difficulty    string `json:"difficulty"`
}

// GamificationCatalog holds the point values, achievement table and daily
// challenge rotation. Achievements keep a fixed order so listings are stable.
type GamificationCatalog struct {
	ActionPoints map[string]int
	Achievements []Achievement
	Challenges   []DailyChallenge
}

// Points an action is worth when no table entry exists.
const FallbackActionPoints = 5

// DefaultGamification returns the stock point and achievement tables.
func DefaultGamification() *GamificationCatalog {
	return &GamificationCatalog{
		ActionPoints: map[string]int{
			"chat":                5,
			"voice_chat":          10,
			"crisis_support_used": 50,
			"activity_completed":  15,
			"daily_checkin":       20,
			"study_session":       25,
			"mood_tracking":       10,
			"exam_scheduled":      30,
			"schedule_followed":   35,
			"break_taken":         10,
			"goal_achieved":       40,
			"helping_friend":      30,
			"streak_milestone":    50,
		},
		Achievements: []Achievement{
			{ID: "first_chat", Points: 10, Title: "👋 Hello Friend!", Description: "Had your first chat with Alex", Rarity: "common"},
			{ID: "week_streak", Points: 100, Title: "🔥 Consistent Warrior", Description: "7 days in a row of mental wellness", Rarity: "rare"},
			{ID: "crisis_survivor", Points: 200, Title: "💪 Brave Soul", Description: "Reached out during tough times - true courage!", Rarity: "legendary"},
			{ID: "study_master", Points: 150, Title: "📚 Study Champion", Description: "20 study sessions completed with Alex's help", Rarity: "epic"},
			{ID: "voice_explorer", Points: 50, Title: "🎤 Voice Friend", Description: "10 voice messages with Alex", Rarity: "uncommon"},
			{ID: "schedule_keeper", Points: 75, Title: "📅 Time Master", Description: "Followed study schedule for 5 days straight", Rarity: "rare"},
			{ID: "mood_tracker", Points: 60, Title: "😊 Self-Aware", Description: "Tracked mood for 10 consecutive days", Rarity: "uncommon"},
			{ID: "exam_ace", Points: 120, Title: "🎯 Exam Warrior", Description: "Completed all scheduled study sessions before exam", Rarity: "epic"},
			{ID: "helper", Points: 300, Title: "🦸 Community Hero", Description: "Helped others in crisis situations", Rarity: "legendary"},
			{ID: "wellness_guru", Points: 500, Title: "🧘 Wellness Master", Description: "Achieved Level 10 in mental wellness journey", Rarity: "legendary"},
			{ID: "early_bird", Points: 25, Title: "🌅 Early Bird", Description: "Completed morning study sessions 7 times", Rarity: "common"},
			{ID: "night_owl", Points: 25, Title: "🦉 Night Owl", Description: "Completed evening study sessions 7 times", Rarity: "common"},
			{ID: "break_champion", Points: 40, Title: "☕ Break Champion", Description: "Took all scheduled breaks for a week", Rarity: "uncommon"},
			{ID: "goal_crusher", Points: 200, Title: "🚀 Goal Crusher", Description: "Achieved 10 study goals", Rarity: "epic"},
		},
		Challenges: []DailyChallenge{
			{ID: "gratitude_boost", Title: "🙏 Gratitude Boost", Description: "Share 3 things you're grateful for today with Alex", Points: 25, Type: "gratitude", EstimatedTime: "2 minutes", Difficulty: "easy"},
			{ID: "study_break_master", Title: "☕ Study Break Master", Description: "Take a 10-minute mindful break during study time", Points: 30, Type: "mindfulness", EstimatedTime: "10 minutes", Difficulty: "easy"},
			{ID: "voice_connection", Title: "🎤 Voice Connection", Description: "Send a voice message to Alex about your day", Points: 35, Type: "voice_interaction", EstimatedTime: "3 minutes", Difficulty: "medium"},
			{ID: "stress_buster", Title: "💆 Stress Buster", Description: "Complete a stress-relief activity suggested by Alex", Points: 40, Type: "activity", EstimatedTime: "5 minutes", Difficulty: "medium"},
			{ID: "study_goal_setter", Title: "🎯 Study Goal Setter", Description: "Set and achieve one small study goal today", Points: 45, Type: "productivity", EstimatedTime: "30 minutes", Difficulty: "hard"},
			{ID: "mood_check", Title: "😊 Mood Check-in", Description: "Track your mood and share how you're feeling", Points: 20, Type: "self_awareness", EstimatedTime: "2 minutes", Difficulty: "easy"},
			{ID: "exam_prep", Title: "📝 Exam Prep Champion", Description: "Complete a focused 25-minute study session", Points: 50, Type: "study", EstimatedTime: "25 minutes", Difficulty: "hard"},
		},
	}
}

// PointsFor returns the point value of an action, defaulting when unknown.
func (g *GamificationCatalog) PointsFor(action string) int {
	if p, ok := g.ActionPoints[action]; ok {
		return p
	}
	return FallbackActionPoints
}

// AchievementByID looks up one achievement.
func (g *GamificationCatalog) AchievementByID(id string) (Achievement, bool) {
	for _, a := range g.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// ChallengeByID looks up one daily challenge.
func (g *GamificationCatalog) ChallengeByID(id string) (DailyChallenge, bool) {
	for _, c := range g.Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return DailyChallenge{}, false
}
