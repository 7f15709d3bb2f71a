package store

import (
	"sync"

	"marketplace-service/internal/models"
)

// OrderStore keeps the finalized order records handed off by settled
// checkouts, newest first.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Add records a finalized order.
func (s *OrderStore) Add(order models.Order) {
	s.mu.Lock()
	s.orders = append([]models.Order{order}, s.orders...)
	s.mu.Unlock()
}

// ByID returns the order with the given ID.
func (s *OrderStore) ByID(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// All returns every recorded order, newest first.
func (s *OrderStore) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
