package eventlog

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/admingate/internal/common"
)

// FileLog is the default Log backend: a single append-only file of
// uvarint-length-prefixed records, fsynced on every append.
//
// The offsets index lives in memory and is rebuilt by scanning the file at
// open; a torn record at the tail (crash mid-write) is truncated away.
// Readers use positional reads and are never blocked by the writer's
// fsync.
type FileLog struct {
	path string

	// writeMu serializes appenders; mu guards the offsets index and is
	// held only for short map/slice operations, never across I/O.
	writeMu sync.Mutex
	mu      sync.RWMutex
	f       *os.File
	offsets []int64
	size    int64
	closed  bool
}

// OpenFileLog opens (or creates) the log file at path and rebuilds the
// offset index.
func OpenFileLog(path string) (*FileLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("eventlog: opening %s: %w", path, err)
	}

	offsets, size, err := scanRecords(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("eventlog: scanning %s: %w", path, err)
	}

	// drop a torn tail record left by a crash mid-append
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("eventlog: truncating %s: %w", path, err)
	}

	return &FileLog{path: path, f: f, offsets: offsets, size: size}, nil
}

// scanRecords walks the record frames from the start of the file and
// returns the offset of each complete record plus the end of the last one.
func scanRecords(f *os.File) ([]int64, int64, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, 0, err
	}

	var offsets []int64
	cr := &countingReader{r: bufio.NewReader(f)}
	for {
		start := cr.n
		length, err := binary.ReadUvarint(cr)
		if err != nil {
			// clean EOF on a frame boundary, or a torn length prefix;
			// either way everything before start is intact
			return offsets, start, nil
		}
		if _, err := io.CopyN(io.Discard, cr, int64(length)); err != nil {
			// torn payload
			return offsets, start, nil
		}
		offsets = append(offsets, start)
	}
}

type countingReader struct {
	r *bufio.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// Append writes a length-prefixed frame, fsyncs it, and only then
// publishes the new index to readers.
func (l *FileLog) Append(ctx context.Context, data []byte) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.RLock()
	closed := l.closed
	size := l.size
	l.mu.RUnlock()
	if closed {
		return 0, common.ErrLogClosed
	}

	frame := binary.AppendUvarint(nil, uint64(len(data)))
	frame = append(frame, data...)

	if _, err := l.f.WriteAt(frame, size); err != nil {
		return 0, fmt.Errorf("eventlog: write: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return 0, fmt.Errorf("eventlog: sync: %w", err)
	}

	l.mu.Lock()
	l.offsets = append(l.offsets, size)
	l.size = size + int64(len(frame))
	index := Origin + uint64(len(l.offsets)) - 1
	l.mu.Unlock()

	return index, nil
}

// OpenReader opens a cursor at the current tail.
func (l *FileLog) OpenReader(ctx context.Context) (Reader, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, common.ErrLogClosed
	}
	return &fileReader{log: l, next: Origin + uint64(len(l.offsets))}, nil
}

// OpenReaderAt opens a cursor at index.
func (l *FileLog) OpenReaderAt(ctx context.Context, index uint64) (Reader, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, common.ErrLogClosed
	}
	tail := Origin + uint64(len(l.offsets))
	if index < Origin || index > tail {
		return nil, fmt.Errorf("eventlog: index %d outside [%d, %d]: %w", index, Origin, tail, common.ErrOutOfRange)
	}
	return &fileReader{log: l, next: index}, nil
}

// Close closes the underlying file. In-flight readers fail with
// common.ErrLogClosed on their next call.
func (l *FileLog) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()
	return l.f.Close()
}

type fileReader struct {
	log  *FileLog
	next uint64
}

func (r *fileReader) Next(ctx context.Context) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := r.log
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return nil, common.ErrLogClosed
	}
	tail := Origin + uint64(len(l.offsets))
	if r.next >= tail {
		l.mu.RUnlock()
		return nil, common.ErrNoRecord
	}
	offset := l.offsets[r.next-Origin]
	l.mu.RUnlock()

	// positional read outside the lock; the frame is fully written and
	// synced before its offset is published
	section := io.NewSectionReader(l.f, offset, l.sizeFrom(offset))
	br := bufio.NewReader(section)
	length, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("eventlog: reading frame at %d: %w", offset, err)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, fmt.Errorf("eventlog: reading record at %d: %w", offset, err)
	}

	rec := &Record{Index: r.next, Data: data}
	r.next++
	return rec, nil
}

func (r *fileReader) Close() error { return nil }

func (l *FileLog) sizeFrom(offset int64) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size - offset
}
