package notify

import (
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink receives discrete UI events from the core. It is fire-and-forget:
// callers never wait on it and never see an error.
type Sink interface {
	Push(message, severity string)
}

// MemorySink retains notification history for the UI bell, newest first.
type MemorySink struct {
	mu     sync.Mutex
	items  []models.Notification
	limit  int
	logger *zap.Logger
}

const defaultHistoryLimit = 100

func NewMemorySink() *MemorySink {
	return &MemorySink{
		limit:  defaultHistoryLimit,
		logger: util.GetLogger(),
	}
}

// Push records a notification and logs it.
func (s *MemorySink) Push(message, severity string) {
	n := models.Notification{
		ID:       uuid.New().String(),
		Title:    models.TitleFor(severity),
		Message:  message,
		Severity: severity,
		Time:     time.Now(),
	}

	s.mu.Lock()
	s.items = append([]models.Notification{n}, s.items...)
	if len(s.items) > s.limit {
		s.items = s.items[:s.limit]
	}
	s.mu.Unlock()

	s.logger.Info("Notification",
		zap.String("severity", severity),
		zap.String("message", message))
}

// All returns the retained notifications, newest first.
func (s *MemorySink) All() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *MemorySink) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead marks every retained notification as read.
func (s *MemorySink) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
}
