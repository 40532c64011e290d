package book

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator hands out ids derived from the creation time in Unix
// milliseconds. Ids are strictly increasing: when the clock has not moved
// past the last id, the next millisecond value is used instead.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator returns a generator reading the given clock. A nil clock
// means time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
