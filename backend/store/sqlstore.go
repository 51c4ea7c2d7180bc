package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one node of the tree persisted relationally: full path as the
// key, the subtree as a JSON value.
type Document struct {
	Path      string `gorm:"primaryKey"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// SQLStore persists documents in Postgres through GORM. Update is a
// read-merge-write, so concurrent merges on the same path are serialized
// in-process; callers additionally hold a per-user lock (see services).
type SQLStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("sql store: migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, path string, into interface{}) error {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "path = ?", path).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("sql get %s: %w", path, err)
	}
	if err := json.Unmarshal(doc.Value, into); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *SQLStore) Set(ctx context.Context, path string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return s.put(ctx, path, raw)
}

func (s *SQLStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]interface{})
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "path = ?", path).Error
	if err == nil {
		if err := json.Unmarshal(doc.Value, &merged); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("sql update %s: %w", path, err)
	}

	for key, value := range fields {
		merged[key] = value
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return s.put(ctx, path, raw)
}

func (s *SQLStore) List(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	var docs []Document
	err := s.db.WithContext(ctx).
		Where("path LIKE ?", prefix+"/%").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("sql list %s: %w", prefix, err)
	}

	children := make(map[string]json.RawMessage, len(docs))
	for _, doc := range docs {
		rest := strings.TrimPrefix(doc.Path, prefix+"/")
		if strings.Contains(rest, "/") {
			continue
		}
		children[rest] = json.RawMessage(doc.Value)
	}
	return children, nil
}

func (s *SQLStore) put(ctx context.Context, path string, raw []byte) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&Document{Path: path, Value: raw, UpdatedAt: time.Now().UTC()}).Error
	if err != nil {
		return fmt.Errorf("sql put %s: %w", path, err)
	}
	return nil
}
