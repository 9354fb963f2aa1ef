package asset

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicate is returned when a name is declared twice in a Table.
var ErrDuplicate = errors.New("asset: duplicate name")

// ErrNotFound is returned when a Table has no source with the given name.
var ErrNotFound = errors.New("asset: not found")

// Table is the set of sources a theme build draws from: an ordered list of
// vector icons and a set of named raster constants.
type Table struct {
	icons   []*Vector
	byIcon  map[string]*Vector
	rasters map[string]*Raster
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		byIcon:  make(map[string]*Vector),
		rasters: make(map[string]*Raster),
	}
}

// AddIcon appends a vector icon. Icons keep their declaration order.
func (t *Table) AddIcon(v *Vector) error {
	if _, ok := t.byIcon[v.Name]; ok {
		return fmt.Errorf("%w: icon %q", ErrDuplicate, v.Name)
	}
	t.icons = append(t.icons, v)
	t.byIcon[v.Name] = v
	return nil
}

// AddRaster registers a raster constant.
func (t *Table) AddRaster(r *Raster) error {
	if _, ok := t.rasters[r.Name]; ok {
		return fmt.Errorf("%w: raster %q", ErrDuplicate, r.Name)
	}
	t.rasters[r.Name] = r
	return nil
}

// Icons returns the vector icons in declaration order.
func (t *Table) Icons() []*Vector {
	return slices.Clone(t.icons)
}

// Icon looks up a vector icon by name.
func (t *Table) Icon(name string) (*Vector, error) {
	v, ok := t.byIcon[name]
	if !ok {
		return nil, fmt.Errorf("%w: icon %q", ErrNotFound, name)
	}
	return v, nil
}

// Raster looks up a raster constant by name.
// The same name always yields the same *Raster.
func (t *Table) Raster(name string) (*Raster, error) {
	r, ok := t.rasters[name]
	if !ok {
		return nil, fmt.Errorf("%w: raster %q", ErrNotFound, name)
	}
	return r, nil
}

// RasterNames returns the raster names in sorted order.
func (t *Table) RasterNames() []string {
	names := make([]string, 0, len(t.rasters))
	for name := range t.rasters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
