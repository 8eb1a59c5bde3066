package memory

import (
	"sync"
	"time"
)

// clock devuelve timestamps estrictamente crecientes (UTC), para que los
// órdenes por created_at / updated_at sean deterministas aunque dos writes
// caigan en el mismo instante.
type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newClock(now func() time.Time) *clock {
	if now == nil {
		now = time.Now
	}
	return &clock{now: now}
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
