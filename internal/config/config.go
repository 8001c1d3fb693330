// Package config gathers engine and server tunables behind Default*/*FromEnv
// constructors.
//
// Engine delay defaults are read from combat.DefaultRoundOptions, not
// defined here; the event-log and server defaults are defined in this file.
package config

import (
	"os"
	"strconv"

	"fightboard/internal/combat"
)

// =============================================================================
// ENGINE CONFIGURATION
// =============================================================================

// EngineConfig mirrors combat.RoundOptions' tunable delays, in the same
// Default*/*FromEnv shape the rest of this package uses.
type EngineConfig struct {
	CastDelayMS       int
	PostEffectDelayMS int
	ReactionDelayMS   int
	PostCastDelayMS   int
}

// DefaultEngine returns the default engine configuration.
func DefaultEngine() EngineConfig {
	opts := combat.DefaultRoundOptions()
	return EngineConfig{
		CastDelayMS:       opts.CastDelayMS,
		PostEffectDelayMS: opts.PostEffectDelayMS,
		ReactionDelayMS:   opts.ReactionDelayMS,
		PostCastDelayMS:   opts.PostCastDelayMS,
	}
}

// EngineFromEnv returns engine configuration with environment variable
// overrides. Environment variables take precedence over defaults.
func EngineFromEnv() EngineConfig {
	cfg := DefaultEngine()

	if v := getEnvInt("CAST_DELAY_MS", -1); v >= 0 {
		cfg.CastDelayMS = v
	}
	if v := getEnvInt("POST_EFFECT_DELAY_MS", -1); v >= 0 {
		cfg.PostEffectDelayMS = v
	}
	if v := getEnvInt("REACTION_DELAY_MS", -1); v >= 0 {
		cfg.ReactionDelayMS = v
	}
	if v := getEnvInt("POST_CAST_DELAY_MS", -1); v >= 0 {
		cfg.PostCastDelayMS = v
	}

	return cfg
}

// ToRoundOptions builds a combat.RoundOptions from this config. Callers still
// need to set RNG/OnStep/AddLog/Quiet themselves; those are per-call, not
// per-process, settings.
func (c EngineConfig) ToRoundOptions() combat.RoundOptions {
	opts := combat.DefaultRoundOptions()
	opts.CastDelayMS = c.CastDelayMS
	opts.PostEffectDelayMS = c.PostEffectDelayMS
	opts.ReactionDelayMS = c.ReactionDelayMS
	opts.PostCastDelayMS = c.PostCastDelayMS
	return opts
}

// =============================================================================
// EVENT LOG & REPLAY LIMITS
// =============================================================================

// EventLogLimits controls memory/storage bounds for the in-process event
// log and replay archive, the same resource-cap role as any per-request
// render or buffer limit.
type EventLogLimits struct {
	MaxEventsPerRound int // per-round event figure; no package reads or enforces it
	RingCapacity      int // number of completed rounds kept in the in-memory ring
}

// DefaultEventLogLimits returns the default event log limits.
func DefaultEventLogLimits() EventLogLimits {
	return EventLogLimits{
		MaxEventsPerRound: 20_000,
		RingCapacity:      512,
	}
}

// =============================================================================
// SERVER CONFIGURATION
// =============================================================================

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               int
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:               8080,
		RateLimitPerSecond: 10,
		RateLimitBurst:     20,
	}
}

// ServerFromEnv returns server configuration with environment variable
// overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()

	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}
	if rl := getEnvFloat("RATE_LIMIT_PER_SECOND", -1); rl >= 0 {
		cfg.RateLimitPerSecond = rl
	}
	if b := getEnvInt("RATE_LIMIT_BURST", -1); b >= 0 {
		cfg.RateLimitBurst = b
	}

	return cfg
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Engine    EngineConfig
	Server    ServerConfig
	LogLimits EventLogLimits
}

// Load returns the complete configuration with environment overrides.
func Load() AppConfig {
	return AppConfig{
		Engine:    EngineFromEnv(),
		Server:    ServerFromEnv(),
		LogLimits: DefaultEventLogLimits(),
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
