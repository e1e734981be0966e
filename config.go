package entityplus

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

const (
	defaultLogLevel        = "info"
	defaultInitialCapacity = 64
)

// Config holds the manager defaults loaded from ENTITYPLUS_* environment
// variables. Options set on NewManager take precedence over these.
type Config struct {
	// LogLevel is the zerolog level for the manager logger.
	LogLevel string `config:"ENTITYPLUS_LOG_LEVEL"`
	// InitialCapacity pre-sizes the registry and each component holder.
	InitialCapacity int `config:"ENTITYPLUS_INITIAL_CAPACITY"`
}

func loadConfig() (Config, error) {
	cfg := Config{
		LogLevel:        defaultLogLevel,
		InitialCapacity: defaultInitialCapacity,
	}
	if err := config.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to read environment")
	}
	if cfg.InitialCapacity < 0 {
		return Config{}, eris.Errorf("initial capacity must not be negative, got %d", cfg.InitialCapacity)
	}
	return cfg, nil
}
