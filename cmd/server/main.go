package main

import (
	"context"
	"log"

	"github.com/TWhiteShadow/gamevault/internal/broker"
	"github.com/TWhiteShadow/gamevault/internal/config"
	"github.com/TWhiteShadow/gamevault/internal/database"
	"github.com/TWhiteShadow/gamevault/internal/handler"
	"github.com/TWhiteShadow/gamevault/internal/mailer"
	"github.com/TWhiteShadow/gamevault/internal/middleware"
	"github.com/TWhiteShadow/gamevault/internal/newsletter"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/internal/service"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Redis backs both the rate limiter and the newsletter job queue
	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	jobQueue, err := broker.NewRedisJobQueue(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to initialize job queue: %v", err)
	}
	defer jobQueue.Close()

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	editorRepo := repository.NewEditorRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	gameRepo := repository.NewVideoGameRepository(database.DB)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	editorService := service.NewEditorService(editorRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	gameService := service.NewVideoGameService(gameRepo, editorRepo, categoryRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	editorHandler := handler.NewEditorHandler(editorService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	gameHandler := handler.NewVideoGameHandler(gameService)

	// Newsletter: cron trigger -> job queue -> worker -> SMTP
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	worker := newsletter.NewWorker(gameRepo, userRepo, smtpMailer, jobQueue)
	if err := worker.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start newsletter worker: %v", err)
	}

	scheduler, err := newsletter.NewScheduler(jobQueue, cfg.NewsletterCron)
	if err != nil {
		log.Fatalf("Invalid NEWSLETTER_CRON: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
		BlockTime:   cfg.RateLimitBlockTime,
	})

	router := setupRouter(cfg, rateLimiter, authHandler, userHandler, editorHandler, categoryHandler, gameHandler)

	logger.Log.Info("Server starting on " + cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(
	cfg *config.Config,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	editorHandler *handler.EditorHandler,
	categoryHandler *handler.CategoryHandler,
	gameHandler *handler.VideoGameHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.Default())
	router.Use(rateLimiter.Middleware())
	router.Use(middleware.ErrorHandler())

	router.POST("/api/auth/login", authHandler.Login)

	v1 := router.Group("/api/v1")

	// Read endpoints are open to any caller, anonymous included
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/:id", categoryHandler.Get)
	v1.GET("/editors", editorHandler.List)
	v1.GET("/editors/:id", editorHandler.Get)
	v1.GET("/video-games", gameHandler.List)
	v1.GET("/video-games/:id", gameHandler.Get)

	// Catalog writes require the administrator role
	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.POST("/editors", editorHandler.Create)
		admin.PUT("/editors/:id", editorHandler.Update)
		admin.DELETE("/editors/:id", editorHandler.Delete)

		admin.POST("/video-games", gameHandler.Create)
		admin.PUT("/video-games/:id", gameHandler.Update)
		admin.DELETE("/video-games/:id", gameHandler.Delete)

		admin.GET("/users", userHandler.List)
		admin.POST("/users", userHandler.Create)
		admin.DELETE("/users/:id", userHandler.Delete)
	}

	// Self-or-admin user endpoints: the handler compares the principal's id
	// against the target
	self := v1.Group("/users")
	self.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		self.GET("/:id", userHandler.Get)
		self.PUT("/:id", userHandler.Update)
	}

	return router
}
