package recorder

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the time stamped on fingerprints as time_created.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator names an invocation in the log so its records can be grepped
// together. Record IDs come from the store, not from here.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random (version 4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.NewString() }

var (
	_ Clock       = RealClock{}
	_ IDGenerator = UUIDGenerator{}
)
