// File: innocurve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"innocurve/config"
	"innocurve/database"
	knowledgeRepoPkg "innocurve/database/repository/knowledge"
	reservationRepoPkg "innocurve/database/repository/reservation"
	"innocurve/handlers"
	"innocurve/middleware"
	"innocurve/routes"
	"innocurve/services/chat"
	"innocurve/services/reservation"
	"innocurve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	knowledgeRepo := knowledgeRepoPkg.NewMongoKnowledgeRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	// services.
	geminiClient := chat.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	defer geminiClient.Close()

	chatService := chat.NewDefaultChatService(knowledgeRepo, geminiClient, utils.GetCacheClient())
	reservationService := reservation.NewDefaultReservationService(reservationRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Chat:        handlers.NewChatHandler(chatService),
		Reservation: handlers.NewReservationHandler(reservationService),
		Knowledge:   handlers.NewKnowledgeHandler(knowledgeRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
