package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"soulconnect-service/internal/catalog"
)

// Assessment is the result of reading one chat message.
type Assessment struct {
	NeedsHelp   bool   `json:"needs_help"`
	MainConcern string `json:"main_concern"` // general | crisis | stress | academic
	Urgency     string `json:"urgency"`      // normal | high | crisis
	Language    string `json:"language_preference"`
}

// SentimentResult is a lexicon-based sentiment estimate.
type SentimentResult struct {
	Score     float64 `json:"score"`
	Magnitude float64 `json:"magnitude"`
}

// Reply is the chosen canned response plus crisis metadata.
type Reply struct {
	Response       string `json:"response"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Urgency        string `json:"urgency"`
	FollowUpNeeded bool   `json:"follow_up_needed,omitempty"`
}

// GamificationSnapshot is the points summary embedded in chat responses.
type GamificationSnapshot struct {
	PointsEarned        int `json:"points_earned"`
	TotalPoints         int `json:"total_points"`
	Level               int `json:"level"`
	ProgressToNextLevel int `json:"progress_to_next_level"`
	CurrentStreak       int `json:"current_streak"`
}

// ChatResult is the full chat endpoint payload.
type ChatResult struct {
	Response                string               `json:"response"`
	AdditionalInfo          string               `json:"additional_info,omitempty"`
	LanguageDetected        string               `json:"language_detected"`
	ConversationID          string               `json:"conversation_id"`
	FriendName              string               `json:"friend_name"`
	Gamification            GamificationSnapshot `json:"gamification"`
	LevelUpMessage          string               `json:"level_up_message,omitempty"`
	Urgency                 string               `json:"urgency"`
	SentimentScore          float64              `json:"sentiment_score"`
	DailyChallengeAvailable bool                 `json:"daily_challenge_available"`
}

const friendName = "Alex"

// ChatService assesses messages and picks friend-style canned responses.
type ChatService struct {
	Responses    *catalog.ResponseCatalog
	Catalog      *catalog.Catalog
	Gamification *GamificationService

	rng *rand.Rand
}

func NewChatService(rcat *catalog.ResponseCatalog, cat *catalog.Catalog, gamification *GamificationService) *ChatService {
	return &ChatService{
		Responses:    rcat,
		Catalog:      cat,
		Gamification: gamification,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRNG overrides the RNG, for tests.
func (s *ChatService) WithRNG(rng *rand.Rand) *ChatService {
	s.rng = rng
	return s
}

// DetectLanguage scores the code-mixed variant markers in the text. The
// first variant to reach the top score wins; no match resolves to
// english_indian.
func (s *ChatService) DetectLanguage(text string) string {
	lower := strings.ToLower(text)

	best := catalog.DefaultLanguage
	bestScore := 0
	for _, lang := range s.Responses.Languages {
		score := 0
		for _, marker := range lang.Markers {
			if strings.Contains(lower, marker) {
				score += 2
			}
		}
		if score > bestScore {
			best = lang.Variant
			bestScore = score
		}
	}
	return best
}

// Assess classifies a message. Crisis words win over stress words, which win
// over academic words.
func (s *ChatService) Assess(message string) Assessment {
	lower := strings.ToLower(message)
	assessment := Assessment{
		MainConcern: "general",
		Urgency:     "normal",
		Language:    s.DetectLanguage(message),
	}

	switch {
	case containsAny(lower, s.Responses.CrisisWords):
		assessment.NeedsHelp = true
		assessment.Urgency = "crisis"
		assessment.MainConcern = "crisis"
	case containsAny(lower, s.Responses.HighStressWords):
		assessment.NeedsHelp = true
		assessment.Urgency = "high"
		assessment.MainConcern = "stress"
	case containsAny(lower, s.Responses.AcademicWords):
		assessment.MainConcern = "academic"
	}
	return assessment
}

// Sentiment scores the message against small positive/negative lexicons.
func (s *ChatService) Sentiment(text string) SentimentResult {
	lower := strings.ToLower(text)
	neg, pos := 0, 0
	for _, w := range s.Responses.NegativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	for _, w := range s.Responses.PositiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	switch {
	case neg > pos:
		return SentimentResult{Score: -0.5, Magnitude: 0.7}
	case pos > neg:
		return SentimentResult{Score: 0.5, Magnitude: 0.7}
	default:
		return SentimentResult{Score: 0, Magnitude: 0.5}
	}
}

// Respond picks the reply for an assessed message. Crisis messages get the
// crisis response plus the helpline list, always.
func (s *ChatService) Respond(message string, assessment Assessment) Reply {
	if assessment.Urgency == "crisis" {
		return Reply{
			Response:       s.Responses.CrisisResponse,
			AdditionalInfo: s.helplineInfo(),
			Urgency:        "crisis",
			FollowUpNeeded: true,
		}
	}

	if containsAny(strings.ToLower(message), s.Responses.GreetingWords) {
		pool := s.Responses.GreetingsFor(assessment.Language)
		return Reply{
			Response: pool[s.rng.Intn(len(pool))],
			Urgency:  assessment.Urgency,
		}
	}

	return Reply{
		Response: s.Responses.SupportiveFallback,
		Urgency:  assessment.Urgency,
	}
}

// Chat runs the whole pipeline: award points, assess, respond, score
// sentiment, and attach the gamification snapshot.
func (s *ChatService) Chat(ctx context.Context, userID, message string) (*ChatResult, error) {
	if userID == "" {
		userID = deriveUserID(message)
	}

	stats, _, err := s.Gamification.Award(ctx, userID, "chat", 0)
	if err != nil {
		return nil, err
	}

	assessment := s.Assess(message)
	reply := s.Respond(message, assessment)
	sentiment := s.Sentiment(message)

	result := &ChatResult{
		Response:         reply.Response,
		AdditionalInfo:   reply.AdditionalInfo,
		LanguageDetected: assessment.Language,
		ConversationID:   userID,
		FriendName:       friendName,
		Gamification: GamificationSnapshot{
			PointsEarned:        s.Gamification.Catalog.PointsFor("chat"),
			TotalPoints:         stats.TotalPoints,
			Level:               stats.Level,
			ProgressToNextLevel: stats.ProgressToNextLevel,
			CurrentStreak:       stats.CurrentStreak,
		},
		Urgency:                 reply.Urgency,
		SentimentScore:          sentiment.Score,
		DailyChallengeAvailable: true,
	}

	if stats.Level > stats.LastNotifiedLevel {
		stats.LastNotifiedLevel = stats.Level
		tpl := s.Responses.LevelUp[s.rng.Intn(len(s.Responses.LevelUp))]
		result.LevelUpMessage = fmt.Sprintf(tpl, stats.Level)
		if err := s.Gamification.Repo.Upsert(ctx, stats); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FallbackResult is returned when the chat pipeline fails; the user still
// gets a friendly reply.
func FallbackResult() *ChatResult {
	return &ChatResult{
		Response:   "Hey! I'm Alex, your supportive friend. 😊 How can I help you today?",
		FriendName: friendName,
	}
}

func (s *ChatService) helplineInfo() string {
	parts := make([]string, 0, len(s.Catalog.Helplines))
	for _, h := range s.Catalog.Helplines {
		parts = append(parts, fmt.Sprintf("%s (%s)", h.Name, h.Number))
	}
	return "If you need immediate help, these numbers are available 24/7: " + strings.Join(parts, ", ")
}

func deriveUserID(message string) string {
	sum := md5.Sum([]byte(message))
	return "user_" + fmt.Sprintf("%x", sum)[:8]
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
