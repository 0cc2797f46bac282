package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"golang.org/x/image/draw"

	"github.com/mndot/honeybee"
)

// Config holds the sign geometry and output settings.
// Environment variables provide defaults; command line flags override them.
type Config struct {
	Columns    int     `env:"HONEYBEE_COLUMNS"    envDefault:"32"`
	Rows       int     `env:"HONEYBEE_ROWS"       envDefault:"12"`
	Pitch      float32 `env:"HONEYBEE_PITCH"      envDefault:"5"`
	DotRadius  float32 `env:"HONEYBEE_DOT_RADIUS" envDefault:"2.2"`
	Background string  `env:"HONEYBEE_BACKGROUND" envDefault:"#000000"`
	Lit        string  `env:"HONEYBEE_LIT"        envDefault:"#ffb000"`
	Unlit      string  `env:"HONEYBEE_UNLIT"      envDefault:"#282828"`
	Pattern    string  `env:"HONEYBEE_PATTERN"`
	Output     string  `env:"HONEYBEE_OUTPUT"     envDefault:"sign.png"`
	Scale      int     `env:"HONEYBEE_SCALE"      envDefault:"1"`
	Filter     string  `env:"HONEYBEE_FILTER"     envDefault:"nearest"`
	LogLevel   string  `env:"HONEYBEE_LOG_LEVEL"  envDefault:"info"`
}

// settings is a validated Config.
type settings struct {
	Config
	background honeybee.RGBA
	lit        honeybee.RGB
	unlit      honeybee.RGB
	filter     draw.Interpolator
	level      slog.Level
}

var filters = map[string]draw.Interpolator{
	"nearest":     draw.NearestNeighbor,
	"bilinear":    draw.BiLinear,
	"catmull-rom": draw.CatmullRom,
}

// loadConfig reads the environment, then applies command line flags.
func loadConfig(args []string, environ map[string]string) (settings, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return settings{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("dotpreview", flag.ContinueOnError)
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "sign width in LEDs")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "sign height in LEDs")
	pitch := fs.Float64("pitch", float64(cfg.Pitch), "distance between LED centers in pixels")
	radius := fs.Float64("radius", float64(cfg.DotRadius), "LED dot radius in pixels")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "background color (hex)")
	fs.StringVar(&cfg.Lit, "lit", cfg.Lit, "lit LED color (hex)")
	fs.StringVar(&cfg.Unlit, "unlit", cfg.Unlit, "unlit LED color (hex)")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "pattern file ('#' marks a lit LED); empty for a test pattern")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output PNG file")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "integer upscale factor for the output")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "upscale filter: nearest, bilinear or catmull-rom")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}
	cfg.Pitch = float32(*pitch)
	cfg.DotRadius = float32(*radius)

	return cfg.validate()
}

func (cfg Config) validate() (settings, error) {
	s := settings{Config: cfg}
	var errs []error

	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		errs = append(errs, fmt.Errorf("sign size %dx%d must be positive", cfg.Columns, cfg.Rows))
	}
	if !(cfg.Pitch > 0) {
		errs = append(errs, fmt.Errorf("pitch %v must be positive", cfg.Pitch))
	}
	if !(cfg.DotRadius > 0) {
		errs = append(errs, fmt.Errorf("dot radius %v must be positive", cfg.DotRadius))
	}
	if cfg.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale %d must be at least 1", cfg.Scale))
	}
	if cfg.Output == "" {
		errs = append(errs, errors.New("output path is empty"))
	}

	var err error
	if s.background, err = honeybee.ParseHex(cfg.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	lit, err := honeybee.ParseHex(cfg.Lit)
	if err != nil {
		errs = append(errs, fmt.Errorf("lit: %w", err))
	}
	s.lit = lit.RGB()
	unlit, err := honeybee.ParseHex(cfg.Unlit)
	if err != nil {
		errs = append(errs, fmt.Errorf("unlit: %w", err))
	}
	s.unlit = unlit.RGB()

	var ok bool
	if s.filter, ok = filters[cfg.Filter]; !ok {
		errs = append(errs, fmt.Errorf("unknown filter %q", cfg.Filter))
	}
	if err := s.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}
