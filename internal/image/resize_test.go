package image

import "testing"

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h         int
		scale        float64
		wantW, wantH int
	}{
		{32, 32, 2.0, 64, 64},
		{32, 32, 1.0, 32, 32},
		{10, 7, 1.5, 15, 11},
		{12, 12, 0.75, 9, 9},
		{3, 5, 1.25, 4, 6},
		{1, 1, 0.1, 1, 1},
	}

	for _, tt := range tests {
		gotW, gotH := ScaledSize(tt.w, tt.h, tt.scale)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("ScaledSize(%d, %d, %v) = (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.scale, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func TestImageBuf_Scale(t *testing.T) {
	src, _ := NewImageBuf(10, 7, FormatRGBA8)
	src.Fill(0, 0, 255, 255)

	got, err := src.Scale(1.5)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if got.Width() != 15 || got.Height() != 11 {
		t.Errorf("Scale(1.5) size = %dx%d, want 15x11", got.Width(), got.Height())
	}
	if got.Format() != FormatRGBA8 {
		t.Errorf("Format() = %v, want RGBA8", got.Format())
	}
	// A flat opaque color stays flat after linear resampling.
	r, g, b, a := got.GetRGBA(7, 5)
	if r != 0 || g != 0 || b != 255 || a != 255 {
		t.Errorf("center pixel = (%d, %d, %d, %d), want (0, 0, 255, 255)", r, g, b, a)
	}
}

func TestImageBuf_Resize_SameSize(t *testing.T) {
	src, _ := NewImageBuf(4, 4, FormatRGBA8)
	got, err := src.Resize(4, 4)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got != src {
		t.Error("Resize() to the same size should not resample")
	}
}

func TestImageBuf_Resize_Invalid(t *testing.T) {
	src, _ := NewImageBuf(4, 4, FormatRGBA8)
	if _, err := src.Resize(0, 4); err != ErrInvalidDimensions {
		t.Errorf("Resize(0, 4) error = %v, want ErrInvalidDimensions", err)
	}
}
