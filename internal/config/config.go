package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	LogLevel  string
	LogFormat string

	Seed          int64
	PlayerName    string
	PlayerVariant string
	StackNotes    bool

	AssetsDir   string
	WindowScale int

	SimDuration     time.Duration
	SimAutoContinue bool
}

func Load() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Seed:            getEnvInt64("MAZE_SEED", 0),
		PlayerName:      getEnv("PLAYER_NAME", "Player"),
		PlayerVariant:   getEnv("PLAYER_VARIANT", "male"),
		StackNotes:      getEnvBool("STACK_NOTES", true),
		AssetsDir:       getEnv("ASSETS_DIR", "assets"),
		WindowScale:     max(1, getEnvInt("WINDOW_SCALE", 1)),
		SimDuration:     getEnvDuration("SIM_DURATION", 30*time.Second),
		SimAutoContinue: getEnvBool("SIM_AUTOCONTINUE", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
