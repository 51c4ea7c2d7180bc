package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var missing record
	assert.ErrorIs(t, s.Get(ctx, "users/u1", &missing), ErrNotFound)

	assert.NoError(t, s.Set(ctx, "users/u1", record{Name: "Alice", Count: 3}))

	var got record
	assert.NoError(t, s.Get(ctx, "users/u1", &got))
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestMemoryStoreUpdateMergesTopLevelFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "users/u1", record{Name: "Alice", Count: 3}))
	assert.NoError(t, s.Update(ctx, "users/u1", map[string]interface{}{"count": 4}))

	var got record
	assert.NoError(t, s.Get(ctx, "users/u1", &got))
	assert.Equal(t, "Alice", got.Name, "untouched fields survive a merge")
	assert.Equal(t, 4, got.Count)
}

func TestMemoryStoreUpdateCreatesMissingPath(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Update(ctx, "users/u2", map[string]interface{}{"name": "Bob"}))

	var got record
	assert.NoError(t, s.Get(ctx, "users/u2", &got))
	assert.Equal(t, "Bob", got.Name)
}

func TestMemoryStoreListReturnsDirectChildren(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "users/u1", record{Name: "Alice"}))
	assert.NoError(t, s.Set(ctx, "users/u2", record{Name: "Bob"}))
	assert.NoError(t, s.Set(ctx, "progress/u1", record{Name: "other tree"}))

	children, err := s.List(ctx, "users")
	assert.NoError(t, err)
	assert.Len(t, children, 2)
	assert.Contains(t, children, "u1")
	assert.Contains(t, children, "u2")
}

func TestWithNotifyPublishesWrites(t *testing.T) {
	hub := NewHub()
	s := WithNotify(NewMemoryStore(), hub)
	ctx := context.Background()

	events, cancel := hub.Subscribe("users/u1")
	defer cancel()

	assert.NoError(t, s.Set(ctx, "users/u1", record{Name: "Alice"}))
	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatal("no event after Set")
	}

	assert.NoError(t, s.Update(ctx, "users/u1", map[string]interface{}{"count": 1}))
	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatal("no event after Update")
	}

	// Other paths stay quiet.
	assert.NoError(t, s.Set(ctx, "users/u2", record{Name: "Bob"}))
	select {
	case <-events:
		t.Fatal("unexpected event for unrelated path")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe("progress/u1")
	cancel()

	hub.Publish("progress/u1")
	select {
	case <-events:
		t.Fatal("event delivered after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}
