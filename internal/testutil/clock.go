package testutil

import (
	"fmt"
	"sync"
	"time"

	"cfpr-go/internal/recorder"
)

// StubClock returns a fixed time. Safe for concurrent use.
type StubClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewStubClock creates a StubClock set to the given time.
func NewStubClock(t time.Time) *StubClock {
	return &StubClock{now: t}
}

// FixedClock returns a StubClock set to 2023-03-09 08:12:45.123456789 UTC.
// The nanoseconds are non-zero so timestamp precision is exercised.
func FixedClock() *StubClock {
	return NewStubClock(time.Date(2023, 3, 9, 8, 12, 45, 123456789, time.UTC))
}

func (c *StubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *StubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// StubIDGenerator returns sequential IDs starting at "id-1".
type StubIDGenerator struct {
	mu      sync.Mutex
	counter int
}

func NewStubIDGenerator() *StubIDGenerator {
	return &StubIDGenerator{}
}

func (g *StubIDGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("id-%d", g.counter)
}

var (
	_ recorder.Clock       = (*StubClock)(nil)
	_ recorder.IDGenerator = (*StubIDGenerator)(nil)
)
