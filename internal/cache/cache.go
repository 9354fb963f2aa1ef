package cache

// Memo is a generic memoization table without eviction.
//
// Memo is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	entries map[K]V
	hits    uint64
	misses  uint64
}

// NewMemo creates an empty memo table.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the table.
// Returns (value, true) if found, (zero, false) otherwise.
// Get does not touch the hit/miss counters.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// GetOrCreate returns the stored value for key, or calls create and stores
// its result. A create error is returned as is and nothing is stored, so a
// later call retries the creation.
func (m *Memo[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := m.entries[key]; ok {
		m.hits++
		return v, nil
	}

	m.misses++
	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	m.entries[key] = v
	return v, nil
}

// Clear removes all entries and resets the counters.
func (m *Memo[K, V]) Clear() {
	m.entries = make(map[K]V)
	m.hits = 0
	m.misses = 0
}

// Len returns the number of entries in the table.
func (m *Memo[K, V]) Len() int {
	return len(m.entries)
}

// Stats returns table statistics.
func (m *Memo[K, V]) Stats() Stats {
	total := m.hits + m.misses
	var rate float64
	if total > 0 {
		rate = float64(m.hits) / float64(total)
	}
	return Stats{
		Len:     len(m.entries),
		Hits:    m.hits,
		Misses:  m.misses,
		HitRate: rate,
	}
}

// Stats contains memo table statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of GetOrCreate calls answered from the table.
	Hits uint64
	// Misses is the number of GetOrCreate calls that invoked create.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was requested.
	HitRate float64
}
