// main.go
package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"campus-teams/config"
	"campus-teams/controllers"
	"campus-teams/logger"
	"campus-teams/middleware"
	"campus-teams/services"
	"campus-teams/store"
	"campus-teams/websocket"
)

func main() {
	cfg := config.MustLoad()
	logger.SetLogLevel(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// QR codes embed the public base URL.
	if err := os.Setenv("APPLICATION_URL", cfg.ApplicationURL); err != nil {
		logger.Warn.Printf("main: could not set APPLICATION_URL: %v", err)
	}

	db, err := store.Open(cfg.StoragePath)
	if err != nil {
		logger.Error.Fatalf("main: failed to open storage at %s: %v", cfg.StoragePath, err)
	}

	// Only the hash of the moderation secret stays in memory.
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error.Fatalf("main: failed to hash admin password: %v", err)
	}

	interestService := services.NewInterestService(db)
	if err := interestService.SeedDefaults(); err != nil {
		logger.Error.Fatalf("main: failed to seed interests: %v", err)
	}

	studentService := services.NewStudentService(db)
	teamService := services.NewTeamService(db)
	requestService := services.NewRequestService(db)
	moderationService := services.NewModerationService(db)
	eventService := services.NewEventService(db)
	notificationService := services.NewNotificationService(db)
	leaveService := services.NewLeaveService(db)
	messageService := services.NewMessageService(db)

	authController := controllers.NewAuthController(studentService, adminHash)
	studentController := controllers.NewStudentController(studentService)
	interestController := controllers.NewInterestController(interestService)
	teamController := controllers.NewTeamController(teamService)
	requestController := controllers.NewRequestController(requestService)
	adminController := controllers.NewAdminController(moderationService, teamService, studentService, leaveService)
	eventController := controllers.NewEventController(eventService)
	notificationController := controllers.NewNotificationController(notificationService)
	leaveController := controllers.NewLeaveController(leaveService)
	messageController := controllers.NewMessageController(messageService)

	router := setupRouter(cfg, authController, studentController, interestController,
		teamController, requestController, adminController, eventController,
		notificationController, leaveController, messageController)

	if cfg.MetricsEnabled {
		websocket.EnableMetrics()
	}

	// Start the live notification feed dispatcher.
	go websocket.HandleMessages()

	logger.Info.Printf("main: listening on %s (env=%s)", cfg.Addr, cfg.Env)
	if err := router.Run(cfg.Addr); err != nil {
		logger.Error.Fatalf("main: failed to run server: %v", err)
	}
}

// setupRouter wires every route; split out from main so tests can mount
// the same table over mock services.
func setupRouter(
	cfg *config.Config,
	auth *controllers.AuthController,
	students *controllers.StudentController,
	interests *controllers.InterestController,
	teams *controllers.TeamController,
	requests *controllers.RequestController,
	admin *controllers.AdminController,
	events *controllers.EventController,
	notifications *controllers.NotificationController,
	leave *controllers.LeaveController,
	messages *controllers.MessageController,
) *gin.Engine {
	router := gin.Default()

	// Allow the campus SPA to call from another origin.
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("campus_session", sessionStore))

	router.GET("/health", controllers.Health)

	api := router.Group("/api")
	{
		api.POST("/auth/student", auth.StudentLogin)

		api.GET("/students", students.List)
		api.GET("/students/:id", students.Get)
		api.PUT("/students/:id/interests", students.UpdateInterests)

		api.GET("/interests", interests.List)
		api.POST("/interests", interests.Create)
		api.DELETE("/interests/:id", interests.Delete)

		api.POST("/teams", teams.Create)
		api.GET("/teams", teams.List)
		api.GET("/teams/student/:id", teams.ForStudent)
		api.GET("/teams/:id/qrcode", teams.InviteQR)
		api.POST("/teams/:id/messages", messages.Send)
		api.GET("/teams/:id/messages", messages.List)
		api.DELETE("/teams/:id/messages/:messageId", messages.Delete)

		api.POST("/team-requests", requests.Create)
		api.GET("/team-requests/team/:id", requests.ListForTeam)
		api.POST("/team-requests/action", requests.Action)

		api.POST("/leave", leave.Create)
		api.GET("/leave", leave.List)
		api.GET("/leave/student/:id", leave.ForStudent)

		api.POST("/events", events.CreateEvent)
		api.GET("/events", events.ListEvents)
		api.DELETE("/events/:id", events.DeleteEvent)
		api.POST("/events/interest", events.MarkInterest)
		api.GET("/events/:id/interested", events.Interested)

		api.POST("/competitions", events.CreateCompetition)
		api.GET("/competitions", events.ListCompetitions)
		api.DELETE("/competitions/:id", events.DeleteCompetition)

		api.GET("/notifications/ws", notifications.Feed)
		api.GET("/notifications/:id", notifications.ForStudent)
		api.POST("/notifications/:id/read", notifications.MarkRead)
		api.GET("/notifications/:id/unread-count", notifications.UnreadCount)

		api.POST("/admin/login", auth.AdminLogin)
		api.POST("/admin/logout", auth.AdminLogout)

		adminGroup := api.Group("/admin", middleware.AdminRequired())
		{
			adminGroup.GET("/students", admin.ListStudents)
			adminGroup.GET("/teams", admin.ListTeams)
			adminGroup.GET("/requests", admin.ListRequests)
			adminGroup.GET("/leave", admin.ListLeave)
			adminGroup.POST("/teams/:id/approve", admin.ApproveTeam)
			adminGroup.POST("/teams/:id/reject", admin.RejectTeam)
			adminGroup.DELETE("/teams/:id", admin.DeleteTeam)
			adminGroup.POST("/teams/:id/remove-member", admin.RemoveMember)
			adminGroup.DELETE("/students/:id", admin.DeleteStudent)
			adminGroup.POST("/leave/action", admin.LeaveAction)
			adminGroup.GET("/stats", admin.GetStats)
		}
	}

	return router
}
