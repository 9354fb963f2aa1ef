package style

import "log/slog"

// Side names one edge of a box.
type Side uint8

const (
	Left Side = iota
	Top
	Right
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Unset marks a default margin that inherits from the widget.
// It is a marker, never a length, so scaling leaves it alone.
const Unset = -1.0

// Sides holds one value per box edge.
type Sides[T ~int | ~float64] struct {
	Left   T `yaml:"left" toml:"left"`
	Top    T `yaml:"top" toml:"top"`
	Right  T `yaml:"right" toml:"right"`
	Bottom T `yaml:"bottom" toml:"bottom"`
}

// All returns sides with every edge set to v.
func All[T ~int | ~float64](v T) Sides[T] {
	return Sides[T]{Left: v, Top: v, Right: v, Bottom: v}
}

// LTRB returns sides from explicit left, top, right and bottom values.
func LTRB[T ~int | ~float64](l, t, r, b T) Sides[T] {
	return Sides[T]{Left: l, Top: t, Right: r, Bottom: b}
}

// NewSides builds sides from 0 to 4 values in CSS order: one value sets all
// edges, two set vertical then horizontal, three set top, horizontal and
// bottom, four set top, right, bottom and left.
func NewSides[T ~int | ~float64](vals ...T) Sides[T] {
	var s Sides[T]
	switch len(vals) {
	case 0:
	case 1:
		s = All(vals[0])
	case 2:
		s.Top, s.Bottom = vals[0], vals[0]
		s.Left, s.Right = vals[1], vals[1]
	case 3:
		s.Top = vals[0]
		s.Left, s.Right = vals[1], vals[1]
		s.Bottom = vals[2]
	default:
		if len(vals) > 4 {
			slog.Error("programmer error: style.NewSides: expected 0 to 4 values", "numValues", len(vals))
		}
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[3]
	}
	return s
}

// Get returns the value of one edge.
func (s Sides[T]) Get(side Side) T {
	switch side {
	case Left:
		return s.Left
	case Top:
		return s.Top
	case Right:
		return s.Right
	default:
		return s.Bottom
	}
}

// Set changes the value of one edge.
func (s *Sides[T]) Set(side Side, v T) {
	switch side {
	case Left:
		s.Left = v
	case Top:
		s.Top = v
	case Right:
		s.Right = v
	case Bottom:
		s.Bottom = v
	}
}

// Map applies f to every edge.
func (s Sides[T]) Map(f func(T) T) Sides[T] {
	return Sides[T]{Left: f(s.Left), Top: f(s.Top), Right: f(s.Right), Bottom: f(s.Bottom)}
}

// Corners holds one radius per box corner.
type Corners struct {
	TopLeft     float64 `yaml:"top_left" toml:"top_left"`
	TopRight    float64 `yaml:"top_right" toml:"top_right"`
	BottomRight float64 `yaml:"bottom_right" toml:"bottom_right"`
	BottomLeft  float64 `yaml:"bottom_left" toml:"bottom_left"`
}

// AllCorners returns corners with every radius set to r.
func AllCorners(r float64) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}
