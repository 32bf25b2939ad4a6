package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := New()
	t.Setenv("FT_STRING", "value")
	t.Setenv("FT_INT", "42")
	t.Setenv("FT_BAD_INT", "forty two")
	t.Setenv("FT_DURATION", "90m")
	t.Setenv("FT_LIST", " a, b ,,c ")
	t.Setenv("FT_LEVEL", "debug")

	assert.Equal(t, "value", cfg.GetString("FT_STRING"))
	assert.Equal(t, "fallback", cfg.GetStringOr("FT_MISSING", "fallback"))
	assert.Equal(t, 42, cfg.GetInt("FT_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("FT_BAD_INT", 1))
	assert.Equal(t, 90*time.Minute, cfg.GetDuration("FT_DURATION", time.Hour))
	assert.Equal(t, time.Hour, cfg.GetDuration("FT_MISSING", time.Hour))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetList("FT_LIST", ""))
	assert.Equal(t, []string{"localhost:9092"}, cfg.GetList("FT_MISSING", "localhost:9092"))
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel("FT_LEVEL"))
	assert.Equal(t, slog.LevelInfo, cfg.GetLogLevel("FT_MISSING"))
}
