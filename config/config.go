// Package config loads theme build settings from TOML or YAML files.
//
// The file format is chosen by extension: .toml, or .yaml / .yml.
//
//	scale = 1.5
//	supersample = false
//	font = "fonts/Inter.ttf"
//	font_parser = "gotext"
//	out = "build/theme"
//	log_level = "debug"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggtheme"
	"github.com/gogpu/ggtheme/text"
	"github.com/gogpu/ggtheme/texture"
)

// Errors.
var (
	// ErrUnknownFormat is returned for a file extension that is neither
	// TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid")
)

// Format is a config file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf returns the format for a file name by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Config holds the settings of a theme build.
type Config struct {
	// Scale is the display scale, 1 when unset.
	Scale float64 `toml:"scale" yaml:"scale"`

	// Supersample enables supersampled vector icons at fractional
	// scales. Nil means the library default (on).
	Supersample *bool `toml:"supersample,omitempty" yaml:"supersample,omitempty"`

	// Font is the path of a TTF/OTF file replacing the built-in font.
	// Relative paths are resolved against the config file.
	Font string `toml:"font,omitempty" yaml:"font,omitempty"`

	// FontParser names the font backend, "ximage" or "gotext". Set without
	// Font it reloads the built-in font through that backend.
	FontParser string `toml:"font_parser,omitempty" yaml:"font_parser,omitempty"`

	// Out is the export directory used by themegen.
	Out string `toml:"out,omitempty" yaml:"out,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Default returns the settings of a plain build.
func Default() Config {
	return Config{Scale: 1, LogLevel: "info"}
}

// Load reads a config file. Fields the file omits keep their defaults.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if c.Font != "" && !filepath.IsAbs(c.Font) {
		c.Font = filepath.Join(filepath.Dir(path), c.Font)
	}
	return c, nil
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	c := Default()
	var err error
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Marshal encodes c in format.
func (c Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(c)
	case FormatYAML:
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// Validate checks the scale and the log level.
func (c Config) Validate() error {
	if !texture.ValidScale(c.Scale) {
		return fmt.Errorf("%w: scale %v must be a finite number above zero", ErrInvalid, c.Scale)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// Options converts c into build options. The font file, if any, is
// loaded here.
func (c Config) Options() ([]ggtheme.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []ggtheme.Option{ggtheme.WithScale(c.Scale)}
	if c.Supersample != nil {
		opts = append(opts, ggtheme.WithSupersample(*c.Supersample))
	}
	var fontOpts []text.SourceOption
	if c.FontParser != "" {
		fontOpts = append(fontOpts, text.WithParser(c.FontParser))
	}
	switch {
	case c.Font != "":
		f, err := text.NewFontSourceFromFile(c.Font, fontOpts...)
		if err != nil {
			return nil, fmt.Errorf("config: font: %w", err)
		}
		opts = append(opts, ggtheme.WithFont(f))
	case c.FontParser != "":
		f, err := text.NewFontSource(goregular.TTF, fontOpts...)
		if err != nil {
			return nil, fmt.Errorf("config: font: %w", err)
		}
		opts = append(opts, ggtheme.WithFont(f))
	}
	return opts, nil
}
