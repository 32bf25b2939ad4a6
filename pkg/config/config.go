package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine: values then come
// from the process environment only.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func (c *Config) GetInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetList splits a comma separated value, dropping empty items.
func (c *Config) GetList(key string, fallback string) []string {
	parts := strings.Split(c.GetStringOr(key, fallback), ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetLogLevel parses debug, info, warn or error. Anything else is info.
func (c *Config) GetLogLevel(key string) slog.Level {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.GetStringOr(key, "info")))
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
