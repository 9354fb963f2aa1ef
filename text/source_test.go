package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	for _, parser := range []string{"ximage", "gotext"} {
		t.Run(parser, func(t *testing.T) {
			source, err := NewFontSource(goregular.TTF, WithParser(parser))
			if err != nil {
				t.Fatalf("NewFontSource failed: %v", err)
			}
			defer func() {
				_ = source.Close()
			}()

			if got := source.Name(); got != "Go" {
				t.Errorf("Name() = %q, want %q", got, "Go")
			}
			if source.Parsed().UnitsPerEm() <= 0 {
				t.Error("expected positive units per em")
			}
			if !source.Parsed().HasGlyph('A') {
				t.Error("expected a glyph for 'A'")
			}

			m := source.Metrics(DefaultSize)
			if m.Ascent <= 0 || m.Descent >= 0 || m.Height() <= m.Ascent {
				t.Errorf("Metrics(%d) = %+v, want ascent > 0 > descent", DefaultSize, m)
			}
		})
	}
}

func TestNewFontSource_Errors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource(goregular.TTF, WithParser("missing")); !errors.Is(err, ErrUnknownParser) {
		t.Errorf("unknown parser error = %v, want ErrUnknownParser", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestNewFontSource_CopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	clear(data)
	if source.Size() != len(goregular.TTF) {
		t.Errorf("Size() = %d, want %d", source.Size(), len(goregular.TTF))
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path, WithName("Custom"))
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	if source.Name() != "Custom" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Custom")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestDefault(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	b, _ := Default()
	if a != b {
		t.Error("Default() should return the same source")
	}
}

func TestFontSource_Close(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if source.Parsed() != nil || source.Size() != 0 {
		t.Error("Close() should release the font data")
	}
	if m := source.Metrics(16); m != (FontMetrics{}) {
		t.Errorf("Metrics() after Close = %+v, want zero", m)
	}
}

func TestFontSource_CopyPanics(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	copied := &FontSource{addr: source.addr, name: source.name}
	_ = copied.Name()
}
