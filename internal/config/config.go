// Package config loads SmartLearn settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/smartlearn/internal/llm"
	"github.com/abhisek/smartlearn/internal/store"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// devSecret signs session cookies when no secret is configured. It is
	// rejected in production.
	devSecret = "smartlearn-development-secret"
)

// Config is every setting the server and CLI need.
type Config struct {
	Addr           string
	Env            string
	AllowedOrigins []string

	// DBDriver and DBDSN select the event store. An empty sqlite DSN
	// resolves to the per-user data directory.
	DBDriver store.Driver
	DBDSN    string

	// RedisURL enables the redis session journal instead of the SQL one.
	RedisURL   string
	SessionTTL time.Duration

	// AMQPURL enables publishing graded-quiz events.
	AMQPURL  string
	Exchange string

	JWTSecret    string
	CookieSecure bool

	// TimedQuizzes turns quiz time limits on.
	TimedQuizzes bool

	LLM llm.Config
}

// DefaultConfig returns development defaults with no LLM chain.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		Env:            EnvDevelopment,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		DBDriver:       store.DriverSQLite,
		SessionTTL:     7 * 24 * time.Hour,
		Exchange:       "smartlearn.events",
		JWTSecret:      devSecret,
		TimedQuizzes:   true,
		LLM:            llm.DefaultConfig(),
	}
}

// Load reads a .env file from the working directory, if present, and
// then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads SMARTLEARN_* variables over DefaultConfig.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Addr = getEnvOrDefault("SMARTLEARN_ADDR", cfg.Addr)
	cfg.Env = strings.ToLower(getEnvOrDefault("SMARTLEARN_ENV", cfg.Env))
	if v := os.Getenv("SMARTLEARN_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	driver, err := store.ParseDriver(getEnvOrDefault("SMARTLEARN_DB_DRIVER", string(cfg.DBDriver)))
	if err != nil {
		return cfg, err
	}
	cfg.DBDriver = driver
	cfg.DBDSN = os.Getenv("SMARTLEARN_DB_DSN")

	cfg.RedisURL = os.Getenv("SMARTLEARN_REDIS_URL")
	if cfg.SessionTTL, err = getEnvAsDuration("SMARTLEARN_SESSION_TTL", cfg.SessionTTL); err != nil {
		return cfg, err
	}
	cfg.AMQPURL = os.Getenv("SMARTLEARN_AMQP_URL")
	cfg.Exchange = getEnvOrDefault("SMARTLEARN_AMQP_EXCHANGE", cfg.Exchange)

	cfg.JWTSecret = getEnvOrDefault("SMARTLEARN_JWT_SECRET", cfg.JWTSecret)
	if cfg.CookieSecure, err = getEnvAsBool("SMARTLEARN_COOKIE_SECURE", cfg.Env == EnvProduction); err != nil {
		return cfg, err
	}
	if cfg.TimedQuizzes, err = getEnvAsBool("SMARTLEARN_TIMED_QUIZZES", cfg.TimedQuizzes); err != nil {
		return cfg, err
	}

	cfg.LLM = llm.ConfigFromEnv()
	return cfg, nil
}

// Validate checks settings that would otherwise fail at first use. An
// empty LLM chain is allowed: quizzes then come from the question bank.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("listen address must not be empty"))
	}
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("unknown environment %q", c.Env))
	}
	if c.DBDriver == store.DriverPostgres && c.DBDSN == "" {
		errs = append(errs, errors.New("SMARTLEARN_DB_DSN is required for postgres"))
	}
	if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("SMARTLEARN_JWT_SECRET must be at least 16 characters"))
	}
	if c.Env == EnvProduction && c.JWTSecret == devSecret {
		errs = append(errs, errors.New("SMARTLEARN_JWT_SECRET must be set in production"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session TTL must be positive"))
	}
	if len(c.LLM.Chain) > 0 {
		if err := c.LLM.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolveDSN returns the DSN to open, defaulting sqlite to the per-user
// database file.
func (c Config) ResolveDSN() (string, error) {
	if c.DBDSN != "" {
		if c.DBDriver == store.DriverSQLite {
			return c.DBDSN, store.EnsureDir(c.DBDSN)
		}
		return c.DBDSN, nil
	}
	return store.DefaultDBPath()
}

func getEnvOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvAsDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
