// Command dotpreview renders a preview image of a full-matrix LED sign.
//
// Usage:
//
//	dotpreview -columns 48 -rows 16 -pattern message.txt -output sign.png -scale 2
//
// Every flag can also be set through a HONEYBEE_* environment variable.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/mndot/honeybee"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("dotpreview failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	s, err := loadConfig(args, nil)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.level}))
	slog.SetDefault(logger)
	honeybee.SetLogger(logger)

	p, err := loadPattern(s.Pattern, s.Columns, s.Rows)
	if err != nil {
		return err
	}

	r := renderSign(s, p)
	img := upscale(r.ToImage(), s.Scale, s.filter)
	if err := writePNG(s.Output, img); err != nil {
		return err
	}

	logger.Info("preview saved",
		"output", s.Output,
		"leds", s.Columns*s.Rows,
		"lit", p.lit(),
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return nil
}
