package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"shipping/internal/adapters/out/auth"
	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
)

var ErrJWTSecretIsMissing = errors.New("JWT_SECRET must be set")

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	StatusTickInterval  time.Duration
	StatusTransitDelay  time.Duration
	StatusDeliveryDelay time.Duration
	StatusForwardOnly   bool

	CORSAllowedOrigin string
	LogsDirectory     string
}

// LoadConfig reads envFile if it exists, then the process environment.
// Variables already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "shipping"),
		DBSslMode:         getEnv("DB_SSLMODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		LogsDirectory:     os.Getenv("LOGS_DIRECTORY"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrJWTSecretIsMissing
	}

	var err error
	if cfg.JWTTTL, err = getDuration("JWT_TTL", auth.DefaultTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.StatusTickInterval, err = getDuration("STATUS_TICK_INTERVAL", jobs.DefaultTickInterval); err != nil {
		return Config{}, err
	}
	if cfg.StatusTransitDelay, err = getDuration("STATUS_TRANSIT_DELAY", services.DefaultTransitDelay); err != nil {
		return Config{}, err
	}
	if cfg.StatusDeliveryDelay, err = getDuration("STATUS_DELIVERY_DELAY", services.DefaultDeliveryDelay); err != nil {
		return Config{}, err
	}
	if cfg.StatusForwardOnly, err = getBool("STATUS_FORWARD_ONLY", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN is the key/value connection string understood by both lib/pq and pgx.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return b, nil
}
