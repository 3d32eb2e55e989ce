package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"DATABASE_URL", "DB_PASSWORD", "AI_PROVIDERS", "AI_TIMEOUT", "GOAL_GENERATION_COOLDOWN", "LOG_RETENTION_DAYS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, []string{"gemini", "glm", "deepseek", "openai"}, cfg.AIProviders)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, 7*24*time.Hour, cfg.GoalGenerationCooldown)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, "ecotrack.db", cfg.DSN())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AI_PROVIDERS", " OpenAI , ,deepseek")
	t.Setenv("AI_TIMEOUT", "not-a-duration")
	t.Setenv("LOG_RETENTION_DAYS", "-4")
	t.Setenv("AI_TEMPERATURE", "0.2")

	cfg := Load()

	assert.Equal(t, []string{"openai", "deepseek"}, cfg.AIProviders)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.InDelta(t, 0.2, cfg.AITemperature, 0.0001)
}

func TestDatabaseSelection(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		postgres bool
		dsn      string
	}{
		{
			name:     "postgres url",
			cfg:      Config{DatabaseURL: "postgres://u:p@db:5432/eco"},
			postgres: true,
			dsn:      "postgres://u:p@db:5432/eco",
		},
		{
			name:     "sqlite file",
			cfg:      Config{DatabaseURL: "data/eco.db"},
			postgres: false,
			dsn:      "data/eco.db",
		},
		{
			name: "discrete settings",
			cfg: Config{
				DBHost: "db", DBPort: "5432", DBUser: "eco", DBPassword: "secret",
				DBName: "ecotrack", DBSSLMode: "disable",
			},
			postgres: true,
			dsn:      "host=db user=eco password=secret dbname=ecotrack port=5432 sslmode=disable TimeZone=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.postgres, tt.cfg.UsesPostgres())
			assert.Equal(t, tt.dsn, tt.cfg.DSN())
		})
	}
}
