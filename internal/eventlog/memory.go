package eventlog

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/admingate/internal/common"
)

// MemoryLog is an in-process Log backend used in tests and ephemeral runs.
// It provides the same index and cursor semantics as the durable backends
// without persistence.
type MemoryLog struct {
	mu      sync.RWMutex
	records [][]byte
	closed  bool
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Append(ctx context.Context, data []byte) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, common.ErrLogClosed
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	l.records = append(l.records, cp)
	return Origin + uint64(len(l.records)) - 1, nil
}

func (l *MemoryLog) OpenReader(ctx context.Context) (Reader, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, common.ErrLogClosed
	}
	return &memoryReader{log: l, next: Origin + uint64(len(l.records))}, nil
}

func (l *MemoryLog) OpenReaderAt(ctx context.Context, index uint64) (Reader, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, common.ErrLogClosed
	}
	tail := Origin + uint64(len(l.records))
	if index < Origin || index > tail {
		return nil, fmt.Errorf("eventlog: index %d outside [%d, %d]: %w", index, Origin, tail, common.ErrOutOfRange)
	}
	return &memoryReader{log: l, next: index}, nil
}

func (l *MemoryLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

type memoryReader struct {
	log  *MemoryLog
	next uint64
}

func (r *memoryReader) Next(ctx context.Context) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l := r.log
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, common.ErrLogClosed
	}
	tail := Origin + uint64(len(l.records))
	if r.next >= tail {
		return nil, common.ErrNoRecord
	}
	data := l.records[r.next-Origin]
	rec := &Record{Index: r.next, Data: data}
	r.next++
	return rec, nil
}

func (r *memoryReader) Close() error { return nil }
