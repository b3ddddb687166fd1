package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"landscaping_backend/internal/app"
	"landscaping_backend/internal/logger"
)

func main() {
	application, err := app.New()
	if err != nil {
		logger.Fatal("failed to start application", "error", err)
	}

	application.StartWorkers()
	defer application.StopWorkers()

	server := &http.Server{
		Addr:    application.Addr(),
		Handler: application.Router,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
