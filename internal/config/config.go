// Package config loads runtime settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds settings for the server process.
type Config struct {
	Addr        string
	Env         string
	Store       string
	CSRFKey     []byte
	LogLevel    slog.Level
	SlowRequest time.Duration
	SlowQuery   time.Duration

	// CSRFKeyGenerated is true when no key was configured and a random one was made.
	CSRFKeyGenerated bool
}

// IsProduction reports whether the process runs with POINTSBOARD_ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads a .env file when present, then the POINTSBOARD_* variables.
// PRE: none
// POST: Returns a complete Config or an error naming the bad variable
func Load() (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests need not touch the process environment.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Addr:  get("POINTSBOARD_ADDR", ":8080"),
		Env:   get("POINTSBOARD_ENV", "development"),
		Store: get("POINTSBOARD_STORE", StoreMemory),
	}

	if cfg.Store != StoreMemory && cfg.Store != StoreSQLite {
		return Config{}, fmt.Errorf("POINTSBOARD_STORE must be %q or %q, got %q", StoreMemory, StoreSQLite, cfg.Store)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("POINTSBOARD_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid POINTSBOARD_LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.SlowRequest, err = millis(get("POINTSBOARD_SLOW_REQUEST_MS", "200")); err != nil {
		return Config{}, fmt.Errorf("invalid POINTSBOARD_SLOW_REQUEST_MS: %w", err)
	}
	if cfg.SlowQuery, err = millis(get("POINTSBOARD_SLOW_QUERY_MS", "50")); err != nil {
		return Config{}, fmt.Errorf("invalid POINTSBOARD_SLOW_QUERY_MS: %w", err)
	}

	if keyHex := getenv("POINTSBOARD_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return Config{}, errors.New("POINTSBOARD_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		cfg.CSRFKey = key
	} else {
		if cfg.IsProduction() {
			return Config{}, errors.New("POINTSBOARD_CSRF_KEY is required in production")
		}
		cfg.CSRFKey = make([]byte, 32)
		if _, err := rand.Read(cfg.CSRFKey); err != nil {
			return Config{}, fmt.Errorf("failed to generate CSRF key: %w", err)
		}
		cfg.CSRFKeyGenerated = true
	}

	return cfg, nil
}

func millis(v string) (time.Duration, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be greater than zero")
	}
	return time.Duration(n) * time.Millisecond, nil
}
