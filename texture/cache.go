package texture

import (
	"log/slog"

	"github.com/gogpu/ggtheme/asset"
	"github.com/gogpu/ggtheme/internal/cache"
)

// Cache shares built textures between everything that references the same
// raster source during one theme pass.
//
// Entries are keyed by source identity, so two byte-identical sources are
// built twice. The scale is fixed by the builder and is not part of the
// key. A Cache only grows until Release; it is not safe for concurrent use.
type Cache struct {
	builder *Builder
	memo    *cache.Memo[*asset.Raster, *Texture]
	log     *slog.Logger
}

// Stats reports cache activity. Every miss is one decode and resample.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewCache creates an empty cache that builds through b.
func NewCache(b *Builder) *Cache {
	return &Cache{
		builder: b,
		memo:    cache.NewMemo[*asset.Raster, *Texture](),
		log:     b.log,
	}
}

// Builder returns the builder behind the cache.
func (c *Cache) Builder() *Builder { return c.builder }

// Scale returns the display scale of the cached textures.
func (c *Cache) Scale() float64 { return c.builder.scale }

// GetOrBuild returns the texture for src, building it on first request.
// A failed build is not remembered.
func (c *Cache) GetOrBuild(src *asset.Raster) (*Texture, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	_, cached := c.memo.Get(src)
	t, err := c.memo.GetOrCreate(src, func() (*Texture, error) {
		return c.builder.Raster(src)
	})
	if err == nil && cached {
		c.log.Debug("texture: cache hit", "name", src.Name)
	}
	return t, err
}

// Lookup returns the cached texture for src without building it.
func (c *Cache) Lookup(src *asset.Raster) (*Texture, bool) {
	return c.memo.Get(src)
}

// Len returns the number of cached textures.
func (c *Cache) Len() int { return c.memo.Len() }

// Stats returns hit and miss counts since the last Release.
func (c *Cache) Stats() Stats {
	s := c.memo.Stats()
	return Stats{Entries: s.Len, Hits: s.Hits, Misses: s.Misses}
}

// Release drops every entry. Textures already handed out stay valid.
func (c *Cache) Release() {
	n := c.memo.Len()
	c.memo.Clear()
	c.log.Debug("texture: cache released", "entries", n)
}
