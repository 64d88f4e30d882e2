package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store session持久層介面
// 一個session的全部內容存成單一JSON文件, 以session id為key
type Store interface {
	Get(ctx context.Context, id string) (map[string]json.RawMessage, error)
	Set(ctx context.Context, id string, data map[string]json.RawMessage, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Session 單一使用者會話的狀態
// 明確傳入service方法, 不使用全域狀態
// 同一session的併發請求不做同步, cart的lost update是已接受的限制
type Session struct {
	id        string
	data      map[string]json.RawMessage
	isNew     bool
	dirty     bool
	destroyed bool
}

func New() *Session {
	return &Session{
		id:    uuid.NewString(),
		data:  map[string]json.RawMessage{},
		isNew: true,
	}
}

func restore(id string, data map[string]json.RawMessage) *Session {
	if data == nil {
		data = map[string]json.RawMessage{}
	}
	return &Session{id: id, data: data}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) IsNew() bool {
	return s.isNew
}

func (s *Session) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Get 把key對應的JSON值解到dest, 不存在回傳false
func (s *Session) Get(key string, dest any) bool {
	raw, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (s *Session) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = raw
	s.dirty = true
	return nil
}

func (s *Session) GetString(key string) string {
	var v string
	s.Get(key, &v)
	return v
}

func (s *Session) GetUint(key string) uint {
	var v uint
	s.Get(key, &v)
	return v
}

func (s *Session) Delete(key string) {
	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.dirty = true
	}
}

// Destroy 銷毀整個session, 所有key一併失效
func (s *Session) Destroy() {
	s.data = map[string]json.RawMessage{}
	s.destroyed = true
	s.dirty = true
}

func (s *Session) Destroyed() bool {
	return s.destroyed
}

func (s *Session) Dirty() bool {
	return s.dirty
}

// Manager 管理session的載入與保存
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	if store == nil {
		panic("session manager initialization failed: store cannot be nil")
	}
	return &Manager{store: store, ttl: ttl}
}

// Load 依id載入session, 找不到或id為空就建立新的
func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return New(), nil
	}
	data, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return New(), nil
		}
		return nil, err
	}
	return restore(id, data), nil
}

// Save 保存session狀態
// 已銷毀的session直接刪除持久資料
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if s.destroyed {
		return m.store.Delete(ctx, s.id)
	}
	if !s.dirty && !s.isNew {
		return nil
	}
	return m.store.Set(ctx, s.id, s.data, m.ttl)
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}
