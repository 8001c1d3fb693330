package config

import (
	"os"
	"testing"
)

func TestDefaultEngineMatchesRoundOptionsDefaults(t *testing.T) {
	cfg := DefaultEngine()
	if cfg.CastDelayMS != 700 {
		t.Errorf("CastDelayMS = %d, want 700", cfg.CastDelayMS)
	}
	if cfg.ReactionDelayMS != 1000 {
		t.Errorf("ReactionDelayMS = %d, want 1000", cfg.ReactionDelayMS)
	}
	if cfg.PostCastDelayMS != 500 {
		t.Errorf("PostCastDelayMS = %d, want 500", cfg.PostCastDelayMS)
	}
}

func TestEngineFromEnvOverridesCastDelay(t *testing.T) {
	os.Setenv("CAST_DELAY_MS", "1234")
	defer os.Unsetenv("CAST_DELAY_MS")

	cfg := EngineFromEnv()
	if cfg.CastDelayMS != 1234 {
		t.Errorf("CastDelayMS = %d, want 1234", cfg.CastDelayMS)
	}
	if cfg.ReactionDelayMS != 1000 {
		t.Errorf("ReactionDelayMS = %d, want default 1000 when unset", cfg.ReactionDelayMS)
	}
}

func TestEngineFromEnvIgnoresUnsetVars(t *testing.T) {
	os.Unsetenv("CAST_DELAY_MS")
	cfg := EngineFromEnv()
	if cfg != DefaultEngine() {
		t.Errorf("EngineFromEnv() with no overrides = %+v, want %+v", cfg, DefaultEngine())
	}
}

func TestToRoundOptionsCarriesConfiguredDelays(t *testing.T) {
	cfg := EngineConfig{CastDelayMS: 1, PostEffectDelayMS: 2, ReactionDelayMS: 3, PostCastDelayMS: 4}
	opts := cfg.ToRoundOptions()
	if opts.CastDelayMS != 1 || opts.PostEffectDelayMS != 2 || opts.ReactionDelayMS != 3 || opts.PostCastDelayMS != 4 {
		t.Errorf("ToRoundOptions() = %+v, want delays matching cfg", opts)
	}
}

func TestServerFromEnvOverridesPort(t *testing.T) {
	os.Setenv("PORT", "9999")
	defer os.Unsetenv("PORT")

	cfg := ServerFromEnv()
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
}

func TestServerFromEnvRejectsZeroPort(t *testing.T) {
	os.Setenv("PORT", "0")
	defer os.Unsetenv("PORT")

	cfg := ServerFromEnv()
	if cfg.Port != DefaultServer().Port {
		t.Errorf("Port = %d, want default %d when PORT=0", cfg.Port, DefaultServer().Port)
	}
}

func TestGetEnvIntFallsBackOnUnparsableValue(t *testing.T) {
	os.Setenv("NOT_AN_INT", "abc")
	defer os.Unsetenv("NOT_AN_INT")

	if got := getEnvInt("NOT_AN_INT", 42); got != 42 {
		t.Errorf("getEnvInt with unparsable value = %d, want fallback 42", got)
	}
}

func TestGetEnvFloatParsesDecimal(t *testing.T) {
	os.Setenv("SOME_FLOAT", "3.5")
	defer os.Unsetenv("SOME_FLOAT")

	if got := getEnvFloat("SOME_FLOAT", 0); got != 3.5 {
		t.Errorf("getEnvFloat = %f, want 3.5", got)
	}
}

func TestLoadPopulatesAllSections(t *testing.T) {
	app := Load()
	if app.Engine.CastDelayMS == 0 {
		t.Error("Load().Engine should be populated")
	}
	if app.Server.Port == 0 {
		t.Error("Load().Server should be populated")
	}
	if app.LogLimits.RingCapacity == 0 {
		t.Error("Load().LogLimits should be populated")
	}
}
