package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"kankou/internal/models/dataset_models"
)

// Config is read once at startup from the environment, after an optional .env file.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	SpotsPath           string
	RecommendationsPath string
	StoriesPath         string
	Delimiter           rune
	StylePath           string

	PageSize   int
	MapCenter  dataset_models.Coordinate
	MapZoom    int
	SessionTTL time.Duration
}

const (
	defaultMapCenter = "34.8609,133.8118"
	maxPageSize      = 100
)

// Load reads .env when present and builds the configuration from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:                getEnvWithDefault("PORT", "8080"),
		GinMode:             getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:            getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvWithDefault("LOG_FORMAT", "json"),
		SpotsPath:           getEnvWithDefault("SPOTS_CSV", "data/spots.csv"),
		RecommendationsPath: getEnvWithDefault("RECOMMENDATIONS_CSV", "data/model_route.csv"),
		StoriesPath:         getEnvWithDefault("STORIES_CSV", "data/stories.csv"),
		StylePath:           getEnvWithDefault("STYLE_PATH", "web/static/style.css"),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}

	delim := getEnvWithDefault("CSV_DELIMITER", ",")
	if delim == `\t` {
		delim = "\t"
	}
	r, size := utf8.DecodeRuneInString(delim)
	if r == utf8.RuneError || size != len(delim) || r == '"' || r == '\r' || r == '\n' {
		return Config{}, fmt.Errorf("CSV_DELIMITER must be a single character, got %q", delim)
	}
	cfg.Delimiter = r

	var err error
	if cfg.PageSize, err = getEnvInt("PAGE_SIZE", 20); err != nil {
		return Config{}, err
	}
	if cfg.PageSize < 1 || cfg.PageSize > maxPageSize {
		return Config{}, fmt.Errorf("PAGE_SIZE must be between 1 and %d, got %d", maxPageSize, cfg.PageSize)
	}

	if cfg.MapZoom, err = getEnvInt("MAP_ZOOM", 11); err != nil {
		return Config{}, err
	}
	if cfg.MapZoom < 0 || cfg.MapZoom > 19 {
		return Config{}, fmt.Errorf("MAP_ZOOM must be between 0 and 19, got %d", cfg.MapZoom)
	}

	if cfg.MapCenter, err = dataset_models.ParseCoordinate(getEnvWithDefault("MAP_CENTER", defaultMapCenter)); err != nil {
		return Config{}, fmt.Errorf("MAP_CENTER: %w", err)
	}

	ttl := getEnvWithDefault("SESSION_TTL", "30m")
	if cfg.SessionTTL, err = time.ParseDuration(ttl); err != nil || cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be a positive duration, got %q", ttl)
	}

	return cfg, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}
