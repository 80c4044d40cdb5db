package services

import (
	"testing"
	"time"
)

func TestOrderStore_PutGet(t *testing.T) {
	store := NewOrderStore(time.Minute)
	result := &ProcessResult{Header: WorkOrderHeader{ProductionTicketNr: "86"}}

	token := store.Put(result)
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	got, ok := store.Get(token)
	if !ok {
		t.Fatal("expected stored result")
	}
	if got != result {
		t.Error("store returned a different result")
	}
}

func TestOrderStore_UnknownToken(t *testing.T) {
	store := NewOrderStore(time.Minute)

	if _, ok := store.Get("no-such-token"); ok {
		t.Error("expected miss for unknown token")
	}
}

func TestOrderStore_DistinctTokens(t *testing.T) {
	store := NewOrderStore(time.Minute)

	a := store.Put(&ProcessResult{})
	b := store.Put(&ProcessResult{})
	if a == b {
		t.Error("expected distinct tokens per Put")
	}
}

func TestOrderStore_Expiry(t *testing.T) {
	store := NewOrderStore(time.Minute)

	current := time.Now()
	store.now = func() time.Time { return current }

	token := store.Put(&ProcessResult{})

	current = current.Add(30 * time.Second)
	if _, ok := store.Get(token); !ok {
		t.Fatal("result should still be live before the TTL")
	}

	current = current.Add(time.Minute)
	if _, ok := store.Get(token); ok {
		t.Error("result should have expired")
	}

	// Expired entries are also dropped on the next Put.
	store.Put(&ProcessResult{})
	store.mu.Lock()
	if _, exists := store.orders[token]; exists {
		t.Error("expired entry still present after eviction")
	}
	store.mu.Unlock()
}
