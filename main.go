package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"soulconnect-service/internal/cache"
	"soulconnect-service/internal/catalog"
	"soulconnect-service/internal/db"
	"soulconnect-service/internal/event"
	"soulconnect-service/internal/handlers"
	"soulconnect-service/internal/repository"
	"soulconnect-service/internal/scheduler"
	"soulconnect-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	redisClient := cache.InitRedis()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, wellness events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("soulconnect")

	// Static catalogs
	cat := catalog.Default()
	gcat := catalog.DefaultGamification()
	rcat := catalog.DefaultResponses()

	// Gamification
	gamificationRepo := repository.NewGamificationRepository(database)
	gamificationService := service.NewGamificationService(gamificationRepo, gcat, rcat, redisClient)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)

	// Exam scheduler
	generator := scheduler.NewGenerator(cat, nil, nil, nil)
	scheduleRepo := repository.NewScheduleRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	scheduleService := service.NewScheduleService(generator, scheduleRepo, progressRepo, gamificationService, rcat)
	schedulerHandler := handlers.NewSchedulerHandler(scheduleService)

	// Chat
	chatService := service.NewChatService(rcat, cat, gamificationService)
	chatHandler := handlers.NewChatHandler(chatService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "soulconnect",
			"message": "Alex is ready to chat! 😊",
			"features": gin.H{
				"exam_scheduler": true,
				"chat":           true,
				"gamification":   true,
				"leaderboard":    redisClient != nil,
				"events":         publisher != nil,
			},
		})
	})

	r.POST("/chat", func(c *gin.Context) {
		chatHandler.Chat(c)
		if publisher != nil {
			publisher.Publish("chat.message_received", gin.H{
				"timestamp": time.Now(),
			})
		}
	})

	examScheduler := r.Group("/exam-scheduler")
	{
		examScheduler.POST("/create", func(c *gin.Context) {
			schedulerHandler.CreateSchedule(c)
			if publisher != nil {
				publisher.Publish("schedule.created", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		examScheduler.GET("/daily-plan", schedulerHandler.DailyPlan)
		examScheduler.POST("/progress", func(c *gin.Context) {
			schedulerHandler.RecordProgress(c)
			if publisher != nil {
				publisher.Publish("schedule.progress_recorded", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		examScheduler.GET("/analytics", schedulerHandler.Analytics)
	}

	gamification := r.Group("/gamification")
	{
		gamification.GET("/profile", gamificationHandler.Profile)
		gamification.POST("/profile", func(c *gin.Context) {
			gamificationHandler.AwardAction(c)
			if publisher != nil {
				publisher.Publish("gamification.action_recorded", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		gamification.GET("/achievements", gamificationHandler.Achievements)
		gamification.GET("/daily-challenge", gamificationHandler.DailyChallenge)
		gamification.POST("/daily-challenge/complete", func(c *gin.Context) {
			gamificationHandler.CompleteChallenge(c)
			if publisher != nil {
				publisher.Publish("gamification.challenge_completed", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		gamification.GET("/leaderboard", gamificationHandler.Leaderboard)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
