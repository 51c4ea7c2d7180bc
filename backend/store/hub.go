package store

import (
	"context"
	"sync"
)

// Hub fans out change notifications for paths mutated through this process.
// All writes go through the API, so an in-process hub is enough to drive the
// change-subscription surface.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan struct{})}
}

// Subscribe returns a channel that receives a tick whenever the path is
// written, plus a cancel func. Ticks are coalesced: a slow consumer sees at
// least one tick for any burst of writes.
func (h *Hub) Subscribe(path string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan struct{}, 1)
	if h.subs[path] == nil {
		h.subs[path] = make(map[int]chan struct{})
	}
	h.subs[path][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subs[path]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subs, path)
			}
		}
	}
	return ch, cancel
}

func (h *Hub) Publish(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[path] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// notifyingStore publishes a hub event after every successful write.
type notifyingStore struct {
	Store
	hub *Hub
}

// WithNotify wraps a store so mutations feed the hub.
func WithNotify(s Store, hub *Hub) Store {
	return &notifyingStore{Store: s, hub: hub}
}

func (n *notifyingStore) Set(ctx context.Context, path string, value interface{}) error {
	if err := n.Store.Set(ctx, path, value); err != nil {
		return err
	}
	n.hub.Publish(path)
	return nil
}

func (n *notifyingStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if err := n.Store.Update(ctx, path, fields); err != nil {
		return err
	}
	n.hub.Publish(path)
	return nil
}
