package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"cinehub/database"
	"cinehub/internal/config"
	"cinehub/internal/http-api/handler"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/repository"
	"cinehub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// The movie cache is optional; a missing redis only disables it
	cache, err := repository.NewMovieCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, movie cache disabled", "error", err)
		cache = nil
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)
	movieService := service.NewMovieService(movieRepo, cache)
	assessmentService := service.NewAssessmentService(assessmentRepo, userRepo, movieRepo, sequenceRepo)
	friendshipService := service.NewFriendshipService(friendshipRepo, userRepo, sequenceRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, assessmentService, friendshipService)
	movieHandler := handler.NewMovieHandler(movieService, assessmentService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Open routes: login and registration
	open := r.Group("")
	authHandler.RegisterRoutes(open)
	open.POST("/users", userHandler.Create)

	// Everything else requires a valid token
	authed := r.Group("", middleware.AuthMiddleware(authService))
	userHandler.RegisterRoutes(authed)
	movieHandler.RegisterRoutes(authed)
	assessmentHandler.RegisterRoutes(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
