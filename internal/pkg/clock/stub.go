package clock

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// StubClock returns a fixed time that tests advance by hand.
type StubClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewStubClock(start time.Time) *StubClock {
	return &StubClock{now: start}
}

// FixedClock starts at a stable reference instant.
func FixedClock() *StubClock {
	return NewStubClock(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC))
}

func (c *StubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *StubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// StubIDGenerator issues sequential ids for stable assertions.
type StubIDGenerator struct {
	mu   sync.Mutex
	next uint32
}

func (g *StubIDGenerator) NewID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	id := uuid.UUID{}
	id[0] = byte(g.next >> 24)
	id[1] = byte(g.next >> 16)
	id[2] = byte(g.next >> 8)
	id[3] = byte(g.next)
	id[6] = 0x70 // keep the version nibble looking like v7
	id[8] = 0x80
	return id
}
