package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lesenhoeren/internal/config"
	"lesenhoeren/internal/database"
	"lesenhoeren/internal/handlers"
	"lesenhoeren/internal/repository"
	"lesenhoeren/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	lessonRepo := repository.NewLessonRepository(db)
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Services
	emailService, err := service.NewEmailService(context.Background(), cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	contentService := service.NewContentService(lessonRepo)
	accountService := service.NewAccountService(userRepo, emailService)
	progressService := service.NewProgressService(progressRepo)

	// Handlers
	lessonHandler := handlers.NewLessonHandler(contentService)
	userHandler := handlers.NewUserHandler(accountService)
	progressHandler := handlers.NewProgressHandler(progressService)
	seedHandler := handlers.NewSeedHandler(contentService, accountService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/lessons", lessonHandler.ListLessons)
	mux.HandleFunc("GET /api/lessons/{id}", lessonHandler.GetLesson)
	mux.HandleFunc("POST /api/users/register", userHandler.Register)
	mux.HandleFunc("POST /api/auth/login", userHandler.Login)
	mux.HandleFunc("GET /api/users/by-email", userHandler.GetByEmail)
	mux.HandleFunc("GET /api/users", userHandler.ListStudents)
	mux.HandleFunc("POST /api/progress", progressHandler.RecordProgress)
	mux.HandleFunc("GET /api/progress/students", progressHandler.GetStudentProgress)
	mux.HandleFunc("GET /api/progress/{userId}", progressHandler.GetUserProgress)
	mux.HandleFunc("GET /api/seed-lessons", seedHandler.SeedLessons)
	mux.HandleFunc("GET /api/health", handlers.Health)

	handler := handlers.Logging(handlers.CORS(cfg.CORSAllowOrigin, mux))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
