package util

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	models "github.com/Aeomanate/TableOfAdditionGame/internal/models"
)

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (models.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		LogWarn("Failed to read .env file: %v", err)
	}

	var cfg models.Config
	if err := env.Parse(&cfg); err != nil {
		return models.Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ErrorLimit <= 0 {
		return models.Config{}, fmt.Errorf("parse env: error limit must be positive, got %d", cfg.ErrorLimit)
	}
	return cfg, nil
}

// SetupLogging points the standard logger at path. An empty path discards
// log output. The returned closer must be called on exit.
func SetupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// FormatDuration renders d as "Xm S.MMMs".
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	seconds := ms / 1000
	return fmt.Sprintf("%dm %d.%03ds", seconds/60, seconds%60, ms%1000)
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constants.SessionIDKey, id)
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(constants.SessionIDKey).(string)
	return id
}

// LogSession logs at info level, prefixed with the session id carried by ctx.
func LogSession(ctx context.Context, format string, v ...any) {
	if id := SessionID(ctx); id != "" {
		LogInfo("[session_id=%v] "+format, append([]any{id}, v...)...)
		return
	}
	LogInfo(format, v...)
}

func LogInfo(format string, v ...any) {
	log.Printf("[INFO] "+format, v...)
}

func LogWarn(format string, v ...any) {
	log.Printf("[WARN] "+format, v...)
}

func LogFatal(format string, v ...any) {
	log.Fatalf("[FATAL] "+format, v...)
}
