package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hnw/date-tibetan/internal/handler"
	"github.com/hnw/date-tibetan/internal/middleware"
	"github.com/hnw/date-tibetan/internal/service"
	"github.com/hnw/date-tibetan/pkg/helpers"
	"github.com/hnw/date-tibetan/pkg/logger"
	"github.com/hnw/date-tibetan/pkg/metrics"
)

func main() {
	log := logger.NewLogger("date-tibetan")

	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not found: %v", err)
	}

	m := metrics.NewMetrics("api")
	validator := helpers.NewCustomValidator()
	convertService := service.NewConvertService()
	convertHandler := handler.NewConvertHandler(convertService, validator, log, m)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert/from-gregorian", convertHandler.FromGregorian)
	mux.HandleFunc("/api/convert/to-gregorian", convertHandler.ToGregorian)
	mux.HandleFunc("/api/today", convertHandler.Today)
	mux.HandleFunc("/api/losar", convertHandler.Losar)
	mux.HandleFunc("/healthz", convertHandler.Health)
	mux.Handle("/metrics", promhttp.Handler())

	var root http.Handler = mux
	root = m.Middleware(root)
	root = middleware.LoggingMiddleware(log)(root)
	root = middleware.CORSMiddleware(root)
	root = middleware.RequestIDMiddleware(root)

	port := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", port).Info("date-tibetan API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Forced shutdown: %v", err)
	}
	log.Info("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
