package handlers

import (
	"context"
	"errors"
	"net/http"

	"soulconnect-service/internal/models"
	"soulconnect-service/internal/scheduler"
	"soulconnect-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	Service *service.ScheduleService
}

func NewSchedulerHandler(s *service.ScheduleService) *SchedulerHandler {
	return &SchedulerHandler{Service: s}
}

type createScheduleRequest struct {
	UserID      string             `json:"user_id"`
	Exams       []models.Exam      `json:"exams"`
	Preferences models.Preferences `json:"preferences"`
}

func (h *SchedulerHandler) CreateSchedule(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	result, err := h.Service.Create(context.Background(), req.UserID, req.Exams, req.Preferences.WithDefaults())
	if errors.Is(err, scheduler.ErrNoExams) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one exam is required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SchedulerHandler) DailyPlan(c *gin.Context) {
	userID := c.Query("user_id")
	date := c.Query("date")
	if userID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and date are required"})
		return
	}

	result, err := h.Service.DailyPlan(context.Background(), userID, date)
	if errors.Is(err, service.ErrNoSchedule) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule found - create one first"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type progressRequest struct {
	UserID    string  `json:"user_id"`
	Subject   string  `json:"subject"`
	Duration  float64 `json:"duration"`
	Completed bool    `json:"completed"`
	Quality   int     `json:"quality"`
	Date      string  `json:"date"`
}

func (h *SchedulerHandler) RecordProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" || req.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and subject are required"})
		return
	}

	progress := models.StudyProgress{
		Subject:   req.Subject,
		Duration:  req.Duration,
		Completed: req.Completed,
		Quality:   req.Quality,
		Date:      req.Date,
	}
	result, err := h.Service.RecordProgress(context.Background(), req.UserID, progress)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SchedulerHandler) Analytics(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	result, err := h.Service.Analytics(context.Background(), userID, c.Query("timeframe"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
