package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "admin", cfg.API.Username)
	assert.Equal(t, "admin", cfg.API.Password)
	assert.True(t, cfg.API.InsecureSkipVerify)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "male", cfg.Session.Genero)
	assert.Equal(t, "common_voice", cfg.Session.Dataset)
	assert.False(t, cfg.Run.Strict)
	assert.Equal(t, "table", cfg.Run.Summary)
	assert.Equal(t, "smoke_reports", cfg.AMQP.ReportExchangeName)
	assert.Equal(t, 1, cfg.Logger.Level)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.test")
	t.Setenv("API_TIMEOUT", "0s")
	t.Setenv("API_INSECURE_SKIP_VERIFY", "false")
	t.Setenv("CHECK_STRICT", "true")

	cfg := NewConfig()

	assert.Equal(t, "https://api.example.test", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.False(t, cfg.API.InsecureSkipVerify)
	assert.True(t, cfg.Run.Strict)
}
