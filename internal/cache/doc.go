// Package cache provides a generic build-time memoization table.
//
// # Memo[K, V]
//
// A Memo maps a key to a value that is produced at most once. It backs the
// texture cache of a theme build: the first request for a source decodes and
// scales it, every later request gets the stored value back.
//
//	m := cache.NewMemo[*asset.Raster, *texture.Texture]()
//	tex, err := m.GetOrCreate(src, build)
//
// There is no eviction. A Memo lives for one build pass and is released as a
// whole with Clear.
//
// # Thread Safety
//
// Memo is not safe for concurrent use. Each build pass owns its own Memo.
package cache
