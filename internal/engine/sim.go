package engine

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/admingate/internal/common"
)

// Sim is a minimal in-process engine: a single worker goroutine applies
// commands in submission order against an in-memory account set and fans
// each Result out to the per-command future and the registered handler.
type Sim struct {
	handler ResultHandler

	mu      sync.Mutex
	stopped bool
	queue   chan submission

	users map[uint64]struct{}
	done  chan struct{}
}

type submission struct {
	cmd    Command
	future chan Result
}

// NewSim starts a simulated engine. The handler may be nil.
func NewSim(handler ResultHandler) *Sim {
	s := &Sim{
		handler: handler,
		queue:   make(chan submission, 64),
		users:   make(map[uint64]struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Sim) run() {
	defer close(s.done)
	for sub := range s.queue {
		res := s.apply(sub.cmd)
		// handler first: when a caller unblocks on the future, the
		// outcome has already been handed to the publisher
		if s.handler != nil {
			s.handler(res)
		}
		sub.future <- res
		close(sub.future)
	}
}

func (s *Sim) apply(cmd Command) Result {
	switch c := cmd.(type) {
	case AddUser:
		if _, ok := s.users[c.UID]; ok {
			return Result{Command: cmd, Code: AlreadyExists, Message: fmt.Sprintf("user %d already exists", c.UID)}
		}
		s.users[c.UID] = struct{}{}
		return Result{Command: cmd, Code: Success, Message: "SUCCESS"}
	default:
		return Result{Command: cmd, Code: Other, Message: "unsupported command"}
	}
}

// SubmitAsync enqueues the command for the worker goroutine.
func (s *Sim) SubmitAsync(cmd Command) (<-chan Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, common.ErrEngineStopped
	}
	future := make(chan Result, 1)
	s.queue <- submission{cmd: cmd, future: future}
	return future, nil
}

// Stop closes the intake and waits for queued commands to resolve.
func (s *Sim) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.queue)
	s.mu.Unlock()
	<-s.done
}
