package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// MemoryStore is the single-process Store used with the sqlite driver and
// in tests. Expired entries are dropped lazily on Get.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (ms *MemoryStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries[token] = memoryEntry{userID: userID, expiresAt: ms.now().Add(ttl)}
	return nil
}

func (ms *MemoryStore) Get(ctx context.Context, token string) (uuid.UUID, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, found := ms.entries[token]
	if !found {
		return uuid.Nil, false, nil
	}
	if !ms.now().Before(entry.expiresAt) {
		delete(ms.entries, token)
		return uuid.Nil, false, nil
	}
	return entry.userID, true, nil
}

func (ms *MemoryStore) Delete(ctx context.Context, token string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.entries, token)
	return nil
}
