package main

import (
	"log/slog"
	"testing"

	"herofx/internal/fx"
)

func noEnv(string) string { return "" }

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil, noEnv)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Backend != "desktop" || cfg.Variant != fx.Aurora || !cfg.Particles || !cfg.Cube || !cfg.Aurora {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.HUD || cfg.LogLevel != slog.LevelInfo || cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("defaults = %+v", cfg)
	}
	if len(cfg.Options) != 0 {
		t.Errorf("options = %v", cfg.Options)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-backend", "term", "-variant", "scifi", "-cube=false",
		"-opt", "particleCount=12", "-opt", "speed=0.7",
		"-seed", "99", "-hud", "-log-level", "debug",
	}, noEnv)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Backend != "term" || cfg.Variant != fx.SciFi || cfg.Cube || !cfg.HUD || cfg.Seed != 99 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.LogLevel)
	}

	sc := cfg.sceneConfig(1920)
	if sc.Cube || !sc.Shader || !sc.Particles || sc.Seed != 99 {
		t.Errorf("scene = %+v", sc)
	}
	if sc.ParticleConfig.Count != 12 || sc.ParticleConfig.Speed != 0.7 {
		t.Errorf("particle config = %+v", sc.ParticleConfig)
	}
}

func TestParseFlagsSeedFromEnv(t *testing.T) {
	env := func(k string) string {
		if k == "HEROFX_SEED" {
			return "1234"
		}
		return ""
	}
	cfg, err := parseFlags(nil, env)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Seed)
	}

	cfg, err = parseFlags([]string{"-seed", "0"}, env)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Seed != 0 {
		t.Errorf("explicit -seed should win over the environment, got %d", cfg.Seed)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-backend", "vulkan"},
		{"-log-level", "loud"},
		{"-width", "0"},
		{"-opt", "novalue"},
	} {
		if _, err := parseFlags(args, noEnv); err == nil {
			t.Errorf("parseFlags(%q) succeeded", args)
		}
	}
}

func TestSceneConfigMobilePreset(t *testing.T) {
	cfg, err := parseFlags(nil, noEnv)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if n := cfg.sceneConfig(600).ParticleConfig.Count; n != fx.MobileParticleCount {
		t.Errorf("narrow viewport count = %d, want %d", n, fx.MobileParticleCount)
	}
}
