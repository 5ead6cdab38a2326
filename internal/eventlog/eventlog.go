// Package eventlog provides the append-only, index-addressed durable log
// that administrative events are written to and tailed from.
//
// A log has exactly one writer role and any number of independent readers.
// Indices are assigned by the log at append time, start at 1 and are dense:
// N successful appends against an empty log receive indices 1..N. Index 0
// is reserved as the "current tail" sentinel on the wire and is never
// assigned.
package eventlog

import "context"

// Origin is the first index a log ever assigns.
const Origin uint64 = 1

// Record is a stored event together with its log-assigned index.
type Record struct {
	Index uint64
	Data  []byte
}

// Log is the durable append-only store consumed by the event publisher and
// the subscription server. Implementations must serialize index assignment
// even under concurrent appends.
type Log interface {
	// Append durably persists data and returns the assigned index.
	Append(ctx context.Context, data []byte) (uint64, error)

	// OpenReader opens a cursor at the current tail: only records appended
	// strictly after the call are delivered.
	OpenReader(ctx context.Context) (Reader, error)

	// OpenReaderAt opens a cursor positioned at index. An index outside
	// [Origin, tail+1) fails with common.ErrOutOfRange rather than
	// silently starting elsewhere.
	OpenReaderAt(ctx context.Context, index uint64) (Reader, error)

	Close() error
}

// Reader is an independent cursor over a Log. Next is non-blocking: it
// returns common.ErrNoRecord when the cursor is at the tail. Each call
// that succeeds advances the cursor by exactly one record, so a single
// reader observes log order with no gaps and no duplicates.
type Reader interface {
	Next(ctx context.Context) (*Record, error)
	Close() error
}
