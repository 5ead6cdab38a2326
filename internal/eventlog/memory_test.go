package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLog_AppendAndRead(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	idx, err := l.Append(ctx, []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, Origin, idx)

	idx, err = l.Append(ctx, []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, Origin+1, idx)

	r, err := l.OpenReaderAt(ctx, Origin)
	require.NoError(t, err)

	rec, err := r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Origin, rec.Index)
	assert.Equal(t, []byte("first"), rec.Data)

	rec, err = r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Origin+1, rec.Index)

	_, err = r.Next(ctx)
	assert.True(t, errors.Is(err, common.ErrNoRecord))
}

func TestMemoryLog_TailAndRange(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	r, err := l.OpenReader(ctx)
	require.NoError(t, err)
	_, err = r.Next(ctx)
	assert.True(t, errors.Is(err, common.ErrNoRecord))

	_, err = l.OpenReaderAt(ctx, 5)
	assert.True(t, errors.Is(err, common.ErrOutOfRange))
}

func TestMemoryLog_AppendCopiesData(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	data := []byte("mutable")
	_, err := l.Append(ctx, data)
	require.NoError(t, err)
	data[0] = 'X'

	r, err := l.OpenReaderAt(ctx, Origin)
	require.NoError(t, err)
	rec, err := r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("mutable"), rec.Data)
}

func TestMemoryLog_Closed(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()
	require.NoError(t, l.Close())

	_, err := l.Append(ctx, []byte("x"))
	assert.True(t, errors.Is(err, common.ErrLogClosed))
}
