package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedboard/internal/config"
	"feedboard/internal/db"
	"feedboard/internal/handler"
	transport "feedboard/internal/http"
	"feedboard/internal/logger"
	"feedboard/internal/repository"
	"feedboard/internal/service"
	"feedboard/internal/snowflake"
)

// @title Feedboard API
// @version 1.0
// @description Minimal feedback-collection service: submit a message with a rating, list stored feedback.
// @BasePath /
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake node: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	feedbackRepo := repository.NewFeedbackRepository(dbConn)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	healthHandler := handler.NewHealthHandler(dbConn)

	router := transport.NewRouter(feedbackHandler, healthHandler, cfg.StaticDir)

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "main")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			logger.Error("shutdown", "module", "main", "error", err)
		}
	}()

	logger.Info("starting server", "module", "main", "addr", cfg.Addr, "db_path", cfg.DBPath)
	if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("start server: %v", err)
	}
}
