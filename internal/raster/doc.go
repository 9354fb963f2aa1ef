// Package raster turns theme sources into pixel buffers.
//
// Raster sources are decoded (or reinterpreted, for raw pixel data) into
// RGBA8 buffers at their native size. Vector sources are rasterized
// directly at the requested display scale, optionally through a
// supersampled pass that is filtered down to the target size.
package raster
