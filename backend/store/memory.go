package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore keeps the document tree in process memory. Used by tests and
// as the zero-configuration development backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(_ context.Context, path string, into interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[path]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *MemoryStore) Set(_ context.Context, path string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	s.mu.Lock()
	s.data[path] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, path string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]interface{})
	if raw, ok := s.data[path]; ok {
		if err := json.Unmarshal(raw, &merged); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	for key, value := range fields {
		merged[key] = value
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	s.data[path] = raw
	return nil
}

func (s *MemoryStore) List(_ context.Context, prefix string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make(map[string]json.RawMessage)
	for path, raw := range s.data {
		if rest, ok := strings.CutPrefix(path, prefix+"/"); ok && !strings.Contains(rest, "/") {
			children[rest] = raw
		}
	}
	return children, nil
}
