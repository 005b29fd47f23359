package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const EnvPrefix = "KANSO"

type Config struct {
	Port                  int
	StorageDriver         string
	DatabaseURL           string
	SQLitePath            string
	RedisAddr             string
	RedisPassword         string
	Timezone              string
	WeekStart             string
	ScoringModel          string
	CheckinSecret         string
	CheckinTTL            time.Duration
	DashboardPasswordHash string
	RateLimit             int
	LogLevel              string
}

// SetDefaults registers the fallback for every key so Load works without
// flags or env vars.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("storage_driver", "sqlite")
	v.SetDefault("sqlite_path", "kanso-drift.db")
	v.SetDefault("timezone", domain.DefaultTimezone)
	v.SetDefault("week_start", "sunday")
	v.SetDefault("scoring_model", string(domain.ScoringModelSevenPoint))
	v.SetDefault("checkin_ttl", 18*time.Hour)
	v.SetDefault("rate_limit", 100)
	v.SetDefault("log_level", "info")
}

// Load reads configuration from viper, which merges flag values, env vars,
// and defaults (set up by the cobra command in cmd/api).
func Load(v *viper.Viper) Config {
	return Config{
		Port:                  v.GetInt("port"),
		StorageDriver:         v.GetString("storage_driver"),
		DatabaseURL:           v.GetString("database_url"),
		SQLitePath:            v.GetString("sqlite_path"),
		RedisAddr:             v.GetString("redis_addr"),
		RedisPassword:         v.GetString("redis_password"),
		Timezone:              v.GetString("timezone"),
		WeekStart:             v.GetString("week_start"),
		ScoringModel:          v.GetString("scoring_model"),
		CheckinSecret:         v.GetString("checkin_secret"),
		CheckinTTL:            v.GetDuration("checkin_ttl"),
		DashboardPasswordHash: v.GetString("dashboard_password_hash"),
		RateLimit:             v.GetInt("rate_limit"),
		LogLevel:              v.GetString("log_level"),
	}
}

func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("database_url is required for the postgres driver"))
		}
	case "sqlite":
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite_path is required for the sqlite driver"))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("storage_driver must be postgres, sqlite or memory, got %q", c.StorageDriver))
	}

	if _, err := c.Clock(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Scorer(); err != nil {
		errs = append(errs, err)
	}
	if c.CheckinSecret == "" {
		errs = append(errs, errors.New("checkin_secret is required"))
	}
	if c.CheckinTTL <= 0 {
		errs = append(errs, errors.New("checkin_ttl must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

// Clock builds the reference-zone clock. Dates and week boundaries are
// always computed there, whatever the server's own zone is.
func (c Config) Clock() (*domain.ZoneClock, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}

	weekStart, err := domain.ParseWeekday(c.WeekStart)
	if err != nil {
		return nil, err
	}

	return domain.NewZoneClock(loc, weekStart, nil), nil
}

func (c Config) Scorer() (domain.Scorer, error) {
	return domain.NewScorer(domain.ScoringModel(c.ScoringModel))
}
