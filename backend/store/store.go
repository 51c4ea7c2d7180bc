package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when no value exists at the path.
var ErrNotFound = errors.New("record not found")

// Store is a document tree addressed by path-like keys, the surface the
// realtime database exposes: point read, overwrite, and top-level field
// merge. List reads the direct children of a path, keyed by child name.
type Store interface {
	Get(ctx context.Context, path string, into interface{}) error
	Set(ctx context.Context, path string, value interface{}) error
	Update(ctx context.Context, path string, fields map[string]interface{}) error
	List(ctx context.Context, prefix string) (map[string]json.RawMessage, error)
}

func UserPath(uid string) string     { return "users/" + uid }
func ProgressPath(uid string) string { return "progress/" + uid }
func StatsPath(uid string) string    { return "stats/" + uid }
