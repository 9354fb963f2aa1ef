package ggtheme

import (
	"errors"
	"testing"
)

func TestMakeDefault(t *testing.T) {
	t.Cleanup(ClearDefault)
	ClearDefault()

	if Default() != nil {
		t.Fatal("Default() should be nil before MakeDefault")
	}

	res, err := MakeDefault(WithScale(1))
	if err != nil {
		t.Fatalf("MakeDefault() error = %v", err)
	}
	if Default() != res {
		t.Error("Default() should return the installed result")
	}

	// A failed build keeps the installed theme.
	if _, err := MakeDefault(WithScale(-1)); !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("MakeDefault(-1) error = %v, want ErrInvalidScale", err)
	}
	if Default() != res {
		t.Error("a failed MakeDefault must not replace the default")
	}

	ClearDefault()
	if Default() != nil {
		t.Error("ClearDefault() should drop every default handle")
	}
}

func TestSetDefaultNil(t *testing.T) {
	t.Cleanup(ClearDefault)
	SetDefault(&Result{})
	SetDefault(nil)
	if Default() != nil {
		t.Error("SetDefault(nil) should clear the default")
	}
}
