package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Postgres struct {
	Address  string
	User     string
	Password string
	DB       string
}

// Config carries every path and setting the application needs. It is built
// once at startup and passed to constructors.
type Config struct {
	DataDir    string
	UsersFile  string
	LegacyFile string
	Storage    string
	Postgres   Postgres

	SessionSecret string
	SessionTTL    time.Duration

	UpdateURL     string
	UpdateTimeout time.Duration

	TierCount int
	LogLevel  string
}

// Load reads envFile into the environment if it exists, then builds the
// config from environment variables. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		DataDir:    GetString("EVENTTRACKER_DATA_DIR", "Data"),
		UsersFile:  GetString("EVENTTRACKER_USERS_FILE", "users.json"),
		LegacyFile: GetString("EVENTTRACKER_LEGACY_FILE", "eventList.txt"),
		Storage:    GetString("EVENTTRACKER_STORAGE", StorageFile),
		Postgres: Postgres{
			Address:  GetString("POSTGRES_DB_ADDRESS", "localhost:5432"),
			User:     GetString("POSTGRES_USER", ""),
			Password: GetString("POSTGRES_PASSWORD", ""),
			DB:       GetString("POSTGRES_DB", "eventtracker"),
		},
		SessionSecret: GetString("SESSION_SECRET", ""),
		UpdateURL:     GetString("UPDATE_URL", ""),
		LogLevel:      GetString("LOG_LEVEL", "info"),
	}
	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.UpdateTimeout, err = getDuration("UPDATE_TIMEOUT", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.TierCount, err = getInt("TIER_COUNT", 5); err != nil {
		return nil, err
	}
	if cfg.Storage != StorageFile && cfg.Storage != StoragePostgres {
		return nil, fmt.Errorf("EVENTTRACKER_STORAGE must be %q or %q, got %q", StorageFile, StoragePostgres, cfg.Storage)
	}
	return cfg, nil
}

// GetString returns the variable or def when it is unset or empty.
func GetString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
