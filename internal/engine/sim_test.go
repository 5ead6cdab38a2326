package engine

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitResult(t *testing.T, future <-chan Result) Result {
	t.Helper()
	select {
	case res := <-future:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for engine result")
		return Result{}
	}
}

func TestSim_AddUser(t *testing.T) {
	s := NewSim(nil)
	defer s.Stop()

	future, err := s.SubmitAsync(AddUser{UID: 42})
	require.NoError(t, err)
	res := awaitResult(t, future)
	assert.Equal(t, Success, res.Code)

	future, err = s.SubmitAsync(AddUser{UID: 42})
	require.NoError(t, err)
	res = awaitResult(t, future)
	assert.Equal(t, AlreadyExists, res.Code)
	assert.Contains(t, res.Message, "already exists")
}

func TestSim_HandlerReceivesEveryResult(t *testing.T) {
	var mu sync.Mutex
	var got []Result
	s := NewSim(func(res Result) {
		mu.Lock()
		got = append(got, res)
		mu.Unlock()
	})
	defer s.Stop()

	for uid := uint64(1); uid <= 3; uid++ {
		future, err := s.SubmitAsync(AddUser{UID: uid})
		require.NoError(t, err)
		awaitResult(t, future)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	for i, res := range got {
		assert.Equal(t, Success, res.Code)
		assert.Equal(t, AddUser{UID: uint64(i + 1)}, res.Command)
	}
}

func TestSim_StopRejectsNewCommands(t *testing.T) {
	s := NewSim(nil)
	s.Stop()

	_, err := s.SubmitAsync(AddUser{UID: 1})
	assert.True(t, errors.Is(err, common.ErrEngineStopped))

	// Stop is idempotent
	s.Stop()
}

func TestSim_UnsupportedCommand(t *testing.T) {
	s := NewSim(nil)
	defer s.Stop()

	future, err := s.SubmitAsync(PlaceOrder{UID: 1, OrderID: 9})
	require.NoError(t, err)
	res := awaitResult(t, future)
	assert.Equal(t, Other, res.Code)
}
