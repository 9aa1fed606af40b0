package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hirely-api/config"
	"hirely-api/internal/api/handlers"
	"hirely-api/internal/app"
	"hirely-api/internal/database"
	"hirely-api/internal/server"
	"hirely-api/internal/services"
	"hirely-api/internal/storage/postgres"
	"hirely-api/internal/storage/redisstore"

	_ "hirely-api/docs" // Import generated docs

	"github.com/go-playground/validator/v10"
)

// @title           Hirely API
// @version         1.0
// @description     Job and internship application tracking API.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client (refresh token store) ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()
	if err := handlers.RegisterCustomValidations(validate); err != nil {
		log.Fatalf("Failed to register custom validations: %v", err)
	}

	// --- Repositories and Services ---
	userRepo := postgres.NewUserRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	applicationRepo := postgres.NewApplicationRepo(dbPool)
	tokenStore := redisstore.NewRefreshTokenStore(redisClient)

	application := &app.Application{
		Config:             cfg,
		DBPool:             dbPool,
		RedisClient:        redisClient,
		Validator:          validate,
		UserService:        services.NewUserService(userRepo, tokenStore, cfg.JWT),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(applicationRepo),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")
	log.Println("Application gracefully stopped.")
}
