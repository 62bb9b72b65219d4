package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"crm-service/logger"
	"crm-service/reminder"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	log, err := logger.Initialize(os.Getenv("ENV"))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	cfg := reminder.Config{
		Endpoint: os.Getenv("CRM_GRAPHQL_URL"),
		Retries:  getEnvAsInt("REMINDER_RETRIES", 3),
		LogFile:  os.Getenv("REMINDER_LOG_FILE"),
		Window:   time.Duration(getEnvAsInt("REMINDER_WINDOW_DAYS", 7)) * 24 * time.Hour,
	}

	log.Info("Reminder job starting",
		zap.String("endpoint", cfg.Endpoint),
		zap.Int("retries", cfg.Retries),
		zap.Duration("window", cfg.Window),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	reminder.NewJob(cfg).Run(ctx)
}

func getEnvAsInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
