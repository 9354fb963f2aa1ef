package style

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", RGB(1, 1, 1)},
		{"000f", RGB(0, 0, 0)},
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff0080", RGBA(0, 1, 0, 128.0/255)},
	}
	for _, tt := range tests {
		got, err := Hex(tt.in)
		if err != nil {
			t.Errorf("Hex(%q) error = %v", tt.in, err)
			continue
		}
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "zzzzzz", "#1234567"} {
		if _, err := Hex(bad); err == nil {
			t.Errorf("Hex(%q) should fail", bad)
		}
	}
}

func TestColor_Mul(t *testing.T) {
	got := Gray(0.875, 1).Mul(RGBA(1, 1, 1, 0.5))
	if !near(got.R, 0.875) || !near(got.A, 0.5) {
		t.Errorf("Mul() = %+v, want gray 0.875 at half alpha", got)
	}
}

func TestColor_Text(t *testing.T) {
	c := RGBA(1, 0.365, 0.365, 1)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "#ff5d5dff" {
		t.Errorf("MarshalText() = %s, want #ff5d5dff", text)
	}

	var back Color
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back.NRGBA() != c.NRGBA() {
		t.Errorf("UnmarshalText() = %v, want %v", back, c)
	}
}
