package search

import "sync"

// Cache remembers the most recent parse so a caller re-filtering on every
// redraw does not re-parse an unchanged search string.
type Cache struct {
	mu    sync.RWMutex
	raw   string
	query Query
	valid bool
}

// Parse returns the cached query when raw matches the last input, otherwise
// parses raw and caches the result.
func (c *Cache) Parse(raw string) Query {
	c.mu.RLock()
	if c.valid && c.raw == raw {
		q := c.query
		c.mu.RUnlock()
		return q
	}
	c.mu.RUnlock()

	q := ParseQuery(raw)

	c.mu.Lock()
	c.raw = raw
	c.query = q
	c.valid = true
	c.mu.Unlock()
	return q
}

// Last returns the most recently parsed input, if any.
func (c *Cache) Last() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.raw, c.valid
}

// Clear drops the cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raw = ""
	c.query = Query{}
	c.valid = false
}
