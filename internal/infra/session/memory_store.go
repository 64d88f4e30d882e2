package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore 行程內的session store
// 供測試與沒有redis的開發環境使用
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      map[string]json.RawMessage
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Get(ctx context.Context, id string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	//回傳副本, 避免呼叫端直接改到store內部狀態
	data := make(map[string]json.RawMessage, len(entry.data))
	for k, v := range entry.data {
		data[k] = v
	}
	return data, nil
}

func (m *MemoryStore) Set(ctx context.Context, id string, data map[string]json.RawMessage, ttl time.Duration) error {
	cloned := make(map[string]json.RawMessage, len(data))
	for k, v := range data {
		cloned[k] = v
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[id] = memoryEntry{data: cloned, expiresAt: expiresAt}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}
