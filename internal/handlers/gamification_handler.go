package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/service"

	"github.com/gin-gonic/gin"
)

type GamificationHandler struct {
	Service *service.GamificationService
}

func NewGamificationHandler(s *service.GamificationService) *GamificationHandler {
	return &GamificationHandler{Service: s}
}

func (h *GamificationHandler) Profile(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	stats, err := h.Service.Stats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":              stats,
		"next_level":         service.NextLevelRequirements(stats),
		"daily_challenge":    h.Service.DailyChallenge(stats),
		"leaderboard_rank":   h.Service.Rank(context.Background(), userID),
		"motivation_message": h.Service.Motivation(stats, nil),
	})
}

type awardActionRequest struct {
	UserID string `json:"user_id"`
	Action string `json:"action"`
	Points int    `json:"points"`
}

// AwardAction applies one action to a profile and returns the refreshed view.
func (h *GamificationHandler) AwardAction(c *gin.Context) {
	var req awardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and action are required"})
		return
	}

	stats, newAchievements, err := h.Service.Award(context.Background(), req.UserID, req.Action, req.Points)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":              stats,
		"new_achievements":   newAchievements,
		"next_level":         service.NextLevelRequirements(stats),
		"daily_challenge":    h.Service.DailyChallenge(stats),
		"leaderboard_rank":   h.Service.Rank(context.Background(), req.UserID),
		"motivation_message": h.Service.Motivation(stats, newAchievements),
	})
}

func (h *GamificationHandler) Achievements(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	stats, err := h.Service.Stats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	unlockedIDs := map[string]bool{}
	for _, id := range stats.Achievements {
		unlockedIDs[id] = true
	}
	unlocked := []catalog.Achievement{}
	locked := []catalog.Achievement{}
	for _, a := range h.Service.Catalog.Achievements {
		if unlockedIDs[a.ID] {
			unlocked = append(unlocked, a)
		} else {
			locked = append(locked, a)
		}
	}

	total := len(h.Service.Catalog.Achievements)
	completion := 0.0
	if total > 0 {
		completion = float64(len(unlocked)) / float64(total) * 100
	}
	c.JSON(http.StatusOK, gin.H{
		"unlocked":           unlocked,
		"locked":             locked,
		"total":              total,
		"completion_percent": completion,
	})
}

func (h *GamificationHandler) DailyChallenge(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	stats, err := h.Service.Stats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenge": h.Service.DailyChallenge(stats)})
}

type completeChallengeRequest struct {
	UserID      string `json:"user_id"`
	ChallengeID string `json:"challenge_id"`
}

func (h *GamificationHandler) CompleteChallenge(c *gin.Context) {
	var req completeChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" || req.ChallengeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and challenge_id are required"})
		return
	}

	result, err := h.Service.CompleteChallenge(context.Background(), req.UserID, req.ChallengeID)
	if errors.Is(err, service.ErrUnknownChallenge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GamificationHandler) Leaderboard(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	entries, err := h.Service.Leaderboard(context.Background(), limit)
	if errors.Is(err, service.ErrLeaderboardUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard unavailable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"leaderboard": entries}
	if userID := c.Query("user_id"); userID != "" {
		resp["user_rank"] = h.Service.Rank(context.Background(), userID)
	}
	c.JSON(http.StatusOK, resp)
}
