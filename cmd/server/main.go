package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"microfeed/internal/api"
	"microfeed/internal/app/service"
	"microfeed/internal/common/security"
	"microfeed/internal/domain/repository"
	"microfeed/internal/platform/config"
	"microfeed/internal/platform/database"
	"microfeed/internal/platform/logger"
)

func main() {
	// 1. Load Configuration
	config.Load()

	slogger := logger.New(config.AppConfig.LogLevel, config.AppConfig.LogFormat)
	slogger.Info("configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	database.Migrate()
	slogger.Info("database connected and migrated")

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	postRepo := repository.NewPgPostRepository(database.DB)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo)
	userService := service.NewUserService(userRepo, postRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(slogger, authService, postService, userService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slogger.Info("server starting", "port", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	slogger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	slogger.Info("server stopped gracefully")
}
