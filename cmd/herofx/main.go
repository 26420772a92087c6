package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"herofx/internal/desktop"
	"herofx/internal/fx"
	"herofx/internal/term"
)

// optList collects repeated -opt key=value flags.
type optList []string

func (o *optList) String() string { return strings.Join(*o, ",") }

func (o *optList) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want key=value, got %q", v)
	}
	*o = append(*o, v)
	return nil
}

type cliConfig struct {
	Backend       string
	Variant       *fx.Variant
	Particles     bool
	Cube          bool
	Aurora        bool
	Options       fx.Options
	Seed          uint64
	HUD           bool
	LogLevel      slog.Level
	Width, Height int
}

func parseFlags(args []string, getenv func(string) string) (cliConfig, error) {
	var cfg cliConfig
	var opts optList
	var variant, level string

	fs := flag.NewFlagSet("herofx", flag.ContinueOnError)
	fs.StringVar(&cfg.Backend, "backend", "desktop", "renderer: desktop or term")
	fs.StringVar(&variant, "variant", "aurora", "background shader: aurora or scifi")
	fs.BoolVar(&cfg.Particles, "particles", true, "run the particle field")
	fs.BoolVar(&cfg.Cube, "cube", true, "run the pointer-driven cube")
	fs.BoolVar(&cfg.Aurora, "aurora", true, "run the background shader")
	fs.Var(&opts, "opt", "particle option key=value (repeatable)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "particle seed (default: $HEROFX_SEED or clock)")
	fs.BoolVar(&cfg.HUD, "hud", false, "show the stats overlay (toggle with h)")
	fs.StringVar(&level, "log-level", "info", "debug, info, warn or error")
	fs.IntVar(&cfg.Width, "width", 1280, "desktop window width")
	fs.IntVar(&cfg.Height, "height", 720, "desktop window height")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.Backend {
	case "desktop", "term":
	default:
		return cfg, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return cfg, fmt.Errorf("log level: %w", err)
	}
	cfg.Variant = fx.VariantByName(variant)
	cfg.Options = fx.ParseOptions(opts)

	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		cfg.Seed = uint64(time.Now().UnixNano())
		if s := getenv("HEROFX_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				cfg.Seed = v
			} else {
				slog.Warn("ignoring HEROFX_SEED", "value", s, "error", err)
			}
		}
	}
	return cfg, nil
}

// sceneConfig sizes the particle preset for a viewport vw logical pixels wide
// and overlays the user's options.
func (c cliConfig) sceneConfig(vw float64) fx.SceneConfig {
	return fx.SceneConfig{
		Shader:         c.Aurora,
		Cube:           c.Cube,
		Particles:      c.Particles,
		Variant:        c.Variant,
		ParticleConfig: c.Options.Apply(fx.HeroParticleConfig(vw)),
		Seed:           c.Seed,
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	slog.SetDefault(newLogger(os.Stderr, slog.LevelInfo))

	cfg, err := parseFlags(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("bad arguments", "error", err)
		os.Exit(2)
	}
	slog.SetDefault(newLogger(os.Stderr, cfg.LogLevel))
	slog.Debug("starting", "backend", cfg.Backend, "variant", cfg.Variant.Name, "seed", cfg.Seed)

	switch cfg.Backend {
	case "term":
		err = runTerm(cfg)
	default:
		err = desktop.Run(desktop.Config{
			Width:  cfg.Width,
			Height: cfg.Height,
			HUD:    cfg.HUD,
			Scene:  cfg.sceneConfig(float64(cfg.Width)),
		})
	}
	if err != nil {
		slog.Error("herofx failed", "error", err)
		os.Exit(1)
	}
}

// runTerm owns the terminal for the session. Log records are held while the
// screen is active and written to stderr once it is released.
func runTerm(cfg cliConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	var held bytes.Buffer
	slog.SetDefault(newLogger(&held, cfg.LogLevel))
	defer func() {
		screen.Fini()
		slog.SetDefault(newLogger(os.Stderr, cfg.LogLevel))
		os.Stderr.Write(held.Bytes())
	}()

	cols, _ := screen.Size()
	b := term.New(screen, term.Config{
		HUD:   cfg.HUD,
		Scene: cfg.sceneConfig(float64(cols * term.CellW)),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return b.Run(ctx)
}
