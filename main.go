package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/WorkZen2025/workzen-app/config"
	"github.com/WorkZen2025/workzen-app/controller"
	"github.com/WorkZen2025/workzen-app/dao"
	"github.com/WorkZen2025/workzen-app/logic"
	"github.com/WorkZen2025/workzen-app/middleware"
	"github.com/WorkZen2025/workzen-app/models"
	"github.com/WorkZen2025/workzen-app/pkg"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: workzen-app <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize logger
	if err := config.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	// Initialize database
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.StressCheckin{},
		&models.Conversation{},
		&models.PrayerRequest{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize completion client. A missing API key is fine: the
	// responder degrades to its connectivity fallback.
	chatClient := pkg.NewChatClient(config.GlobalConfig.Chat.APIKey, config.GlobalConfig.Chat.BaseURL)
	if !chatClient.HasAPIKey() {
		config.Logger.Warn("no completion API key configured; assistant will answer with fallback text")
	}

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	checkinDAO := dao.NewCheckinDAO(db)
	convoDAO := dao.NewConversationDAO(db)
	prayerDAO := dao.NewPrayerDAO(db)

	// Initialize Logics
	sessions := logic.NewSessionManager()
	responder := logic.NewResponderLogic(
		chatClient,
		config.GlobalConfig.Chat.Model,
		config.GlobalConfig.Chat.MaxTokens,
		config.GlobalConfig.Chat.Temperature,
		config.GlobalConfig.Chat.CrisisKeywords,
		config.Logger,
	)
	userLogic := logic.NewUserLogic(userDAO, sessions)
	chatLogic := logic.NewChatLogic(convoDAO, checkinDAO, responder)
	checkinLogic := logic.NewCheckinLogic(checkinDAO)
	prayerLogic := logic.NewPrayerLogic(prayerDAO)

	// Initialize Controllers
	userCtrl := controller.NewUserController(userLogic)
	chatCtrl := controller.NewChatController(chatLogic, userLogic)
	checkinCtrl := controller.NewCheckinController(checkinLogic)
	prayerCtrl := controller.NewPrayerController(prayerLogic)
	verseCtrl := controller.NewVerseController()

	// Setup Gin router
	r := gin.New()
	middleware.Setup(r)

	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", userCtrl.Login)
		public.GET("/verse", verseCtrl.GetDailyVerse)
	}

	private := r.Group("/api/v1")
	private.Use(middleware.Auth)
	{
		private.POST("/auth/logout", userCtrl.Logout)
		private.GET("/user", userCtrl.GetUser)
		private.POST("/chat", chatCtrl.SendMessage)
		private.GET("/conversations", chatCtrl.GetConversations)
		private.POST("/checkins", checkinCtrl.SubmitCheckin)
		private.GET("/checkins", checkinCtrl.GetCheckins)
		private.GET("/checkins/summary", checkinCtrl.GetSummary)
		private.POST("/prayers", prayerCtrl.SubmitPrayerRequest)
		private.GET("/prayers", prayerCtrl.ListPrayerRequests)
		private.POST("/prayers/:id/answer", prayerCtrl.AnswerPrayerRequest)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.GlobalConfig.Server.Port),
		Handler: r,
	}

	go func() {
		config.Logger.Infow("starting server", "port", config.GlobalConfig.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	config.Logger.Info("server stopped")
}

func openDatabase() (*gorm.DB, error) {
	switch config.GlobalConfig.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	}
}
