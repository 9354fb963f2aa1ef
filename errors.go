package ggtheme

import (
	"errors"
	"fmt"
)

// ErrInvalidScale is returned by Build for a scale that is not a finite
// number greater than zero. No work is done in that case.
var ErrInvalidScale = errors.New("ggtheme: invalid scale")

// AssetError reports a theme source that could not be turned into a
// texture. The pass that hit it produced no theme.
type AssetError struct {
	// Asset is the source name, e.g. "tree_bg".
	Asset string
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("ggtheme: asset %q: %v", e.Asset, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
