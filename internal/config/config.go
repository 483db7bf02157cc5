package config

import (
	"github.com/scienceol/stayawake/internal/power"
	"go.uber.org/zap/zapcore"
)

// Config is the resolved run configuration.
//
// LogLevel is always WarnLevel, so Info diagnostics such as the guard's
// "execution state restored" entry stay hidden; the ui prints the same
// transition.
type Config struct {
	Intent   power.Intent
	LogLevel zapcore.Level
}

// Load resolves configuration from CLI flags. Flags are the only source:
// there is no config file and no environment layer.
func Load(flagDisplay bool) *Config {
	cfg := &Config{
		Intent:   power.KeepSystemAwake,
		LogLevel: zapcore.WarnLevel,
	}

	if flagDisplay {
		cfg.Intent = power.KeepSystemAndDisplayAwake
	}

	return cfg
}
