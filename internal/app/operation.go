package app

import (
	"time"

	"cfpr-go/internal/recorder"
)

// Operation tracks the CLI command being run. It is never persisted; its ID
// tags every log record of the invocation.
type Operation struct {
	ID        string
	Name      string
	Status    string // "success" or "error"
	StartedAt time.Time
}

// NewOperation creates an operation that has just started.
func NewOperation(name string, ids recorder.IDGenerator, clock recorder.Clock) *Operation {
	return &Operation{
		ID:        ids.New(),
		Name:      name,
		Status:    "success",
		StartedAt: clock.Now(),
	}
}

// Fail marks the operation as failed.
func (op *Operation) Fail() {
	op.Status = "error"
}

// Failed returns true if Fail has been called.
func (op *Operation) Failed() bool {
	return op.Status == "error"
}

// Elapsed returns the time since the operation started, as seen by clock.
func (op *Operation) Elapsed(clock recorder.Clock) time.Duration {
	return clock.Now().Sub(op.StartedAt)
}
