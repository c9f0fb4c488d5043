package domaincheck

import "time"

// SetClock overrides the cache clock for expiry tests
func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}
