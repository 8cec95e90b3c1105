package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/miestilo/leadcrm/internal/bootstrap"
	"github.com/miestilo/leadcrm/internal/infrastructure/repository"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := getEnv("PORT", "8080")

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to create pgx pool")
	}
	defer pool.Close()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repository.EnsureSeedData(seedCtx, db, log); err != nil {
		cancelSeed()
		log.WithError(err).Fatal("failed to seed initial data")
	}
	cancelSeed()

	server := bootstrap.NewHTTPServer(db, pool, log, bootstrap.Config{
		ImportBaseDir: getEnv("IMPORT_BASE_DIR", "."),
	})

	go func() {
		if err := server.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("graceful shutdown failed")
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
