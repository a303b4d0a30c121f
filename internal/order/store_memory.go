package order

import (
	"context"
	"sync"
)

// MemStore keeps orders for the lifetime of the process, which is all
// the demo promises. Listing preserves creation order.
type MemStore struct {
	mu     sync.RWMutex
	orders []Order
	byID   map[string]int
	slips  map[string]PaymentSlip
}

func NewMemStore() *MemStore {
	return &MemStore{
		byID:  map[string]int{},
		slips: map[string]PaymentSlip{},
	}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Create(_ context.Context, o Order, slip PaymentSlip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	s.byID[o.ID] = len(s.orders) - 1
	s.slips[o.ID] = slip
	return nil
}

func (s *MemStore) Get(_ context.Context, id string) (Order, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Order{}, false, nil
	}
	return s.orders[i], true, nil
}

func (s *MemStore) ListByUser(_ context.Context, userID string) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemStore) ListAll(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemStore) SlipByOrder(_ context.Context, orderID string) (PaymentSlip, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slip, ok := s.slips[orderID]
	return slip, ok, nil
}
