package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultOrderTTL is how long a processed work order stays downloadable
// after upload. Results live in process memory only; nothing survives a
// restart.
const defaultOrderTTL = 30 * time.Minute

type storedOrder struct {
	result    *ProcessResult
	expiresAt time.Time
}

// OrderStore keeps processed work orders in memory so the results page and
// the export endpoints can serve them without re-uploading the file.
type OrderStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	orders map[string]storedOrder
	now    func() time.Time
}

// NewOrderStore creates a store with the given TTL; ttl <= 0 uses the
// default.
func NewOrderStore(ttl time.Duration) *OrderStore {
	if ttl <= 0 {
		ttl = defaultOrderTTL
	}
	return &OrderStore{
		ttl:    ttl,
		orders: make(map[string]storedOrder),
		now:    time.Now,
	}
}

// Put stores a processed work order and returns its download token.
func (s *OrderStore) Put(result *ProcessResult) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	s.orders[token] = storedOrder{
		result:    result,
		expiresAt: s.now().Add(s.ttl),
	}
	return token
}

// Get returns the stored result for a token, or false when the token is
// unknown or has expired.
func (s *OrderStore) Get(token string) (*ProcessResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.orders[token]
	if !ok {
		return nil, false
	}
	if s.now().After(stored.expiresAt) {
		delete(s.orders, token)
		return nil, false
	}
	return stored.result, true
}

// evictLocked drops expired entries. Caller holds the lock.
func (s *OrderStore) evictLocked() {
	now := s.now()
	for token, stored := range s.orders {
		if now.After(stored.expiresAt) {
			delete(s.orders, token)
		}
	}
}
