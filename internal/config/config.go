package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is loaded once at start-up and passed by reference; nothing reads
// the environment after Load returns.
type Config struct {
	App      AppConfig
	Session  SessionConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Logger   LoggerConfig
	Payroll  PayrollConfig
}

type AppConfig struct {
	Env      string
	Port     string
	Location *time.Location
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	BcryptCost int
}

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

type LoggerConfig struct {
	Level string
}

type PayrollConfig struct {
	DefaultHourlyRate float64
}

var (
	ErrMissingSessionSecret = errors.New("SESSION_SECRET is required")
	ErrMissingSessionTTL    = errors.New("SESSION_TTL_SECONDS is required")
)

// Load reads .env (if present) and the environment. A missing session secret
// or TTL is a start-up failure.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	secret := get("SESSION_SECRET", "")
	if secret == "" {
		return nil, ErrMissingSessionSecret
	}

	rawTTL := get("SESSION_TTL_SECONDS", "")
	if rawTTL == "" {
		return nil, ErrMissingSessionTTL
	}
	ttlSeconds, err := strconv.Atoi(rawTTL)
	if err != nil || ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_SECONDS %q: must be a positive integer", rawTTL)
	}

	bcryptCost, err := strconv.Atoi(get("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	rate, err := strconv.ParseFloat(get("DEFAULT_HOURLY_RATE", "15"), 64)
	if err != nil || rate <= 0 {
		return nil, fmt.Errorf("invalid DEFAULT_HOURLY_RATE: must be a positive number")
	}

	loc, err := time.LoadLocation(get("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	return &Config{
		App: AppConfig{
			Env:      get("APP_ENV", "development"),
			Port:     get("APP_PORT", get("PORT", "3000")),
			Location: loc,
		},
		Session: SessionConfig{
			Secret:     secret,
			TTL:        time.Duration(ttlSeconds) * time.Second,
			CookieName: get("SESSION_COOKIE_NAME", "auth_token"),
			BcryptCost: bcryptCost,
		},
		Postgres: PostgresConfig{
			Host:     get("DB_HOST", "localhost"),
			User:     get("DB_USER", "postgres"),
			Password: get("DB_PASSWORD", ""),
			Name:     get("DB_NAME", "timetracking"),
			Port:     get("DB_PORT", "5432"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: get("REDIS_ADDR", ""),
		},
		Kafka: KafkaConfig{
			Broker: get("KAFKA_BROKER", ""),
		},
		Logger: LoggerConfig{
			Level: get("LOG_LEVEL", "info"),
		},
		Payroll: PayrollConfig{
			DefaultHourlyRate: rate,
		},
	}, nil
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// DSN returns the postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		p.Host, p.User, p.Password, p.Name, p.Port, p.SSLMode,
	)
}
