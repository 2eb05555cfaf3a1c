package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/smartlearn/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SMARTLEARN_ADDR", "SMARTLEARN_ENV", "SMARTLEARN_ALLOWED_ORIGINS",
		"SMARTLEARN_DB_DRIVER", "SMARTLEARN_DB_DSN", "SMARTLEARN_REDIS_URL",
		"SMARTLEARN_SESSION_TTL", "SMARTLEARN_AMQP_URL", "SMARTLEARN_AMQP_EXCHANGE",
		"SMARTLEARN_JWT_SECRET", "SMARTLEARN_COOKIE_SECURE", "SMARTLEARN_TIMED_QUIZZES",
		"SMARTLEARN_LLM_CHAIN", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"OPENROUTER_API_KEY", "SMARTLEARN_OPENAI_API_KEY", "SMARTLEARN_ANTHROPIC_API_KEY",
		"SMARTLEARN_GEMINI_API_KEY", "SMARTLEARN_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, store.DriverSQLite, cfg.DBDriver)
	assert.True(t, cfg.TimedQuizzes)
	assert.False(t, cfg.CookieSecure)
	assert.Empty(t, cfg.LLM.Chain)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMARTLEARN_ADDR", ":9090")
	t.Setenv("SMARTLEARN_ENV", "Production")
	t.Setenv("SMARTLEARN_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SMARTLEARN_DB_DRIVER", "pgx")
	t.Setenv("SMARTLEARN_DB_DSN", "postgres://localhost/smartlearn")
	t.Setenv("SMARTLEARN_SESSION_TTL", "2h")
	t.Setenv("SMARTLEARN_JWT_SECRET", "a-very-long-production-secret")
	t.Setenv("SMARTLEARN_TIMED_QUIZZES", "false")
	t.Setenv("SMARTLEARN_LLM_CHAIN", "mock")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, store.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.False(t, cfg.TimedQuizzes)
	assert.Equal(t, []string{"mock"}, cfg.LLM.Chain)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SMARTLEARN_DB_DRIVER", "oracle"},
		{"SMARTLEARN_SESSION_TTL", "forever"},
		{"SMARTLEARN_COOKIE_SECURE", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }, "listen address"},
		{"bad env", func(c *Config) { c.Env = "staging" }, "unknown environment"},
		{"postgres without dsn", func(c *Config) { c.DBDriver = store.DriverPostgres }, "SMARTLEARN_DB_DSN"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "at least 16"},
		{"dev secret in production", func(c *Config) { c.Env = EnvProduction }, "must be set in production"},
		{"unknown provider", func(c *Config) { c.LLM.Chain = []string{"llama"} }, "unknown LLM provider"},
		{"missing key", func(c *Config) { c.LLM.Chain = []string{"openai"} }, "SMARTLEARN_OPENAI_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	// godotenv never overrides variables that are already set, even empty.
	t.Setenv("SMARTLEARN_AMQP_EXCHANGE", "")
	require.NoError(t, os.Unsetenv("SMARTLEARN_AMQP_EXCHANGE"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SMARTLEARN_AMQP_EXCHANGE=learning.events\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "learning.events", cfg.Exchange)
}

func TestResolveDSN(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.DBDSN = filepath.Join(dir, "nested", "smartlearn.db")

	dsn, err := cfg.ResolveDSN()
	require.NoError(t, err)
	assert.Equal(t, cfg.DBDSN, dsn)
	assert.DirExists(t, filepath.Join(dir, "nested"))
}
