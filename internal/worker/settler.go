package worker

import (
	"sync"
	"time"

	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// Settler runs one-shot settlement timers for checkout sessions. Each
// scheduled settlement is cancellable until it fires, so an abandoned
// checkout never clears a cart behind the user's back.
type Settler struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
	logger  *zap.Logger
}

func NewSettler() *Settler {
	return &Settler{
		pending: make(map[string]*time.Timer),
		logger:  util.GetLogger(),
	}
}

// Schedule arranges for fn to run once after delay, keyed by session ID.
// Scheduling again under the same ID replaces the previous timer.
func (s *Settler) Schedule(id string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if t, ok := s.pending[id]; ok {
		t.Stop()
	}

	s.logger.Info("Settlement scheduled",
		zap.String("session_id", id),
		zap.Duration("delay", delay))

	s.pending[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		fn()
	})
}

// Cancel stops a pending settlement. Returns false if it already fired or
// was never scheduled.
func (s *Settler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	stopped := t.Stop()
	if stopped {
		s.logger.Info("Settlement cancelled", zap.String("session_id", id))
	}
	return stopped
}

// Stop cancels every pending settlement and rejects new ones. Called on
// server shutdown.
func (s *Settler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
	s.logger.Info("Settler stopped")
}
