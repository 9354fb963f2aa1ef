package ggtheme

import "sync/atomic"

// defaultResult holds the process-wide theme. Stored atomically so widgets
// may read it while another goroutine replaces it.
var defaultResult atomic.Pointer[Result]

// SetDefault installs r as the process-wide theme. Passing nil is the same
// as ClearDefault.
func SetDefault(r *Result) {
	defaultResult.Store(r)
}

// MakeDefault builds a theme with opts and installs it as the process-wide
// theme. On error the current default is left in place.
func MakeDefault(opts ...Option) (*Result, error) {
	r, err := Build(opts...)
	if err != nil {
		return nil, err
	}
	SetDefault(r)
	return r, nil
}

// Default returns the process-wide theme, or nil if none is installed.
// The theme, fallback style, fallback icon and default font are always
// replaced and cleared together.
func Default() *Result {
	return defaultResult.Load()
}

// ClearDefault removes the process-wide theme and every default handle
// that came with it.
func ClearDefault() {
	defaultResult.Store(nil)
}
