// Package config reads runtime configuration from a .env file and the
// process environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"tv-frame/pkg/settings"
)

const (
	DefaultTitle   = "TV Frame"
	DefaultEnvFile = ".env"
)

// Environment variable names
const (
	EnvTitle       = "GAME_TITLE"
	EnvVideoDriver = "SDL_VIDEODRIVER"
	EnvLoadTimeout = "VIDEO_PLAYER_LOAD_TIMEOUT_MS"
	EnvLogDir      = "LOG_DIR"
)

// Config is the resolved runtime configuration
type Config struct {
	Title       string
	VideoDriver string
	LoadTimeout int64 // initial player load timeout, ms
	LogDir      string
}

// Load reads envFile (when it exists) into the environment without
// overriding variables that are already set, then resolves Config.
func Load(envFile string) Config {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: %s file not loaded: %v", envFile, err)
	}

	return FromEnv()
}

// FromEnv resolves Config from the current environment only
func FromEnv() Config {
	cfg := Config{
		Title:       os.Getenv(EnvTitle),
		VideoDriver: os.Getenv(EnvVideoDriver),
		LoadTimeout: settings.DefaultLoadTimeout,
		LogDir:      os.Getenv(EnvLogDir),
	}

	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	if raw := os.Getenv(EnvLoadTimeout); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ms <= 0 {
			log.Printf("Warning: ignoring %s=%q, using %dms", EnvLoadTimeout, raw, settings.DefaultLoadTimeout)
		} else {
			cfg.LoadTimeout = ms
		}
	}

	return cfg
}
