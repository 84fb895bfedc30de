package layout

import "sync"

// Cache memoizes generated layouts by their parameter struct. Safe for concurrent use.
// Every call returns a fresh copy, so callers may modify what they get back.
type Cache struct {
	mu      sync.Mutex
	entries map[any][]Primitive
	hits    int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[any][]Primitive)}
}

type dioramaKey struct {
	pit   PitParams
	cubes CubeParams
}

func (c *Cache) get(key any, gen func() []Primitive) []Primitive {
	c.mu.Lock()
	defer c.mu.Unlock()
	prims, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		prims = gen()
		c.entries[key] = prims
	}
	out := make([]Primitive, len(prims))
	copy(out, prims)
	return out
}

// Pit returns p.Generate(), computing it at most once per distinct p.
func (c *Cache) Pit(p PitParams) []Primitive {
	return c.get(p, p.Generate)
}

// Cubes returns p.Generate(), computing it at most once per distinct p.
func (c *Cache) Cubes(p CubeParams) []Primitive {
	return c.get(p, p.Generate)
}

// Cross returns p.Generate(), computing it at most once per distinct p.
func (c *Cache) Cross(p CrossParams) []Primitive {
	return c.get(p, p.Generate)
}

// Diorama returns Diorama(pit, cubes), computing it at most once per distinct pair.
func (c *Cache) Diorama(pit PitParams, cubes CubeParams) []Primitive {
	return c.get(dioramaKey{pit, cubes}, func() []Primitive { return Diorama(pit, cubes) })
}

// Hits returns how many calls were served from the cache.
func (c *Cache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
