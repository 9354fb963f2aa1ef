// Command themegen builds the default theme at a display scale and exports
// its textures as PNG files together with a manifest.yaml that describes
// every theme slot.
//
// Usage:
//
//	themegen -scale 1.5 -out build/theme
//	themegen -config theme.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/ggtheme"
	"github.com/gogpu/ggtheme/config"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "themegen:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("themegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scale       = fs.Float64("scale", 0, "display scale (overrides the config file, default 1)")
		out         = fs.String("out", "", "output directory (overrides the config file, default \"theme\")")
		cfgPath     = fs.String("config", "", "TOML or YAML config file")
		noSupersamp = fs.Bool("no-supersample", false, "disable supersampled vector icons")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}
	if *out != "" {
		cfg.Out = *out
	}
	if cfg.Out == "" {
		cfg.Out = "theme"
	}
	if *noSupersamp {
		off := false
		cfg.Supersample = &off
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	opts = append(opts, ggtheme.WithLogger(logger))

	res, err := ggtheme.Build(opts...)
	if err != nil {
		return err
	}

	m, err := export(res, cfg.Out)
	if err != nil {
		return err
	}
	logger.Info("theme exported",
		"dir", cfg.Out,
		"scale", res.Scale,
		"textures", len(m.Textures),
		"types", len(m.Types))
	return nil
}
