package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/hiromasa-dev/mathfeed/internal/config"
	"github.com/hiromasa-dev/mathfeed/internal/constants"
	"github.com/hiromasa-dev/mathfeed/internal/database"
	"github.com/hiromasa-dev/mathfeed/internal/handlers"
	"github.com/hiromasa-dev/mathfeed/internal/mail"
	"github.com/hiromasa-dev/mathfeed/internal/middleware"
	"github.com/hiromasa-dev/mathfeed/internal/repository"
	"github.com/hiromasa-dev/mathfeed/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   0, // browser session unless login asks to be remembered
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	equationRepo := repository.NewEquationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	mailer := mail.New(cfg)
	authService := services.NewAuthService(userRepo, mailer, cfg.ResetTokenSecret, cfg.ResetTokenTTL)
	userService := services.NewUserService(userRepo, followRepo, equationRepo)
	equationService := services.NewEquationService(equationRepo)
	messageService := services.NewMessageService(messageRepo, notificationRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, equationService, cfg.EquationsPerPage)
	equationHandler := handlers.NewEquationHandler(equationService, cfg.EquationsPerPage)
	messageHandler := handlers.NewMessageHandler(messageService, cfg.MessagesPerPage)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/reset_password_request", authHandler.ResetPasswordRequest)
	r.POST("/reset_password/:token", authHandler.ResetPassword)

	// Authenticated routes
	authed := r.Group("")
	authed.Use(middleware.RequireAuth(), middleware.TouchLastSeen(userRepo))
	{
		authed.GET("/", equationHandler.Index)
		authed.POST("/", equationHandler.Submit)
		authed.GET("/index", equationHandler.Index)
		authed.POST("/index", equationHandler.Submit)
		authed.GET("/explore", equationHandler.Explore)

		authed.GET("/me", authHandler.GetCurrentUser)
		authed.GET("/user/:username", middleware.RequireUserParam("username"), userHandler.GetProfile)
		authed.GET("/user/:username/popup", middleware.RequireUserParam("username"), userHandler.GetPopup)
		authed.GET("/edit_profile", userHandler.GetEditProfile)
		authed.POST("/edit_profile", userHandler.EditProfile)
		authed.POST("/follow/:username", middleware.RequireUserParam("username"), userHandler.Follow)
		authed.POST("/unfollow/:username", middleware.RequireUserParam("username"), userHandler.Unfollow)

		authed.GET("/send_message/:recipient", middleware.RequireUserParam("recipient"), messageHandler.GetSendMessage)
		authed.POST("/send_message/:recipient", middleware.RequireUserParam("recipient"), messageHandler.SendMessage)
		authed.GET("/messages", messageHandler.ListMessages)
		authed.GET("/notifications", messageHandler.Notifications)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
