package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/config"
	"github.com/devsultan06/myjourney2026/controllers"
	"github.com/devsultan06/myjourney2026/middleware"
	"github.com/devsultan06/myjourney2026/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Access log goes to its own rolling file, separate from the app log
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	activityController := controllers.NewActivityController(db)
	leaderboardController := controllers.NewLeaderboardController(db)
	statsController := controllers.NewStatsController(db)
	codingController := controllers.NewCodingController(db)
	leetcodeController := controllers.NewLeetCodeController(db)
	workoutController := controllers.NewWorkoutController(db)
	bookController := controllers.NewBookController(db)
	jobController := controllers.NewJobController(db)
	eventController := controllers.NewEventController(db)
	taskController := controllers.NewTaskController(db)
	notificationController := controllers.NewNotificationController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/github/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/github/callback", authController.OAuthCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	// Public stats endpoint
	api.GET("/stats", statsController.GetStats)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.GET("/streaks", activityController.GetStreaks)
	protected.GET("/leaderboard", leaderboardController.GetLeaderboard)
	protected.GET("/activities", activityController.ListRecent)
	protected.POST("/activities", activityController.RecordActivity)
	protected.GET("/activities/weekly", statsController.GetWeeklySummary)

	protected.GET("/coding", codingController.ListSessions)
	protected.POST("/coding", codingController.CreateSession)
	protected.PUT("/coding/:id", codingController.UpdateSession)
	protected.DELETE("/coding/:id", codingController.DeleteSession)

	protected.GET("/leetcode", leetcodeController.ListProblems)
	protected.POST("/leetcode", leetcodeController.CreateProblem)
	protected.PUT("/leetcode/:id", leetcodeController.UpdateProblem)
	protected.DELETE("/leetcode/:id", leetcodeController.DeleteProblem)

	protected.GET("/workouts", workoutController.ListWorkouts)
	protected.POST("/workouts", workoutController.UpsertWorkout)
	protected.DELETE("/workouts/:id", workoutController.DeleteWorkout)

	protected.GET("/books", bookController.ListBooks)
	protected.POST("/books", bookController.CreateBook)
	protected.PUT("/books/:id", bookController.UpdateBook)
	protected.DELETE("/books/:id", bookController.DeleteBook)

	protected.GET("/jobs", jobController.ListApplications)
	protected.POST("/jobs", jobController.CreateApplication)
	protected.PUT("/jobs/:id", jobController.UpdateApplication)
	protected.DELETE("/jobs/:id", jobController.DeleteApplication)

	protected.GET("/events", eventController.ListEvents)
	protected.POST("/events", eventController.CreateEvent)
	protected.PUT("/events/:id", eventController.UpdateEvent)
	protected.DELETE("/events/:id", eventController.DeleteEvent)

	protected.GET("/tasks", taskController.ListTasks)
	protected.POST("/tasks", taskController.CreateTask)
	protected.PATCH("/tasks/:id/toggle", taskController.ToggleTask)
	protected.DELETE("/tasks/:id", taskController.DeleteTask)

	protected.GET("/notifications", notificationController.ListNotifications)
	protected.POST("/notifications/generate", notificationController.GenerateNotifications)
	protected.PUT("/notifications", notificationController.MarkRead)
	protected.DELETE("/notifications", notificationController.PurgeNotifications)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
