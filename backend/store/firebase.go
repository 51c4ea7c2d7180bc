package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// FirebaseStore backs the document tree with the Realtime Database. The SDK
// client handles transport-level retries internally.
type FirebaseStore struct {
	client *db.Client
}

func NewFirebaseStore(ctx context.Context, credentialsFile, databaseURL string) (*FirebaseStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("firebase store: database URL is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase store: init app: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := app.Database(initCtx)
	if err != nil {
		return nil, fmt.Errorf("firebase store: init database client: %w", err)
	}

	return &FirebaseStore{client: client}, nil
}

func (s *FirebaseStore) Get(ctx context.Context, path string, into interface{}) error {
	var raw json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &raw); err != nil {
		return fmt.Errorf("firebase get %s: %w", path, err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Set(ctx context.Context, path string, value interface{}) error {
	if err := s.client.NewRef(path).Set(ctx, value); err != nil {
		return fmt.Errorf("firebase set %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if err := s.client.NewRef(path).Update(ctx, fields); err != nil {
		return fmt.Errorf("firebase update %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) List(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	var children map[string]json.RawMessage
	if err := s.client.NewRef(prefix).Get(ctx, &children); err != nil {
		return nil, fmt.Errorf("firebase list %s: %w", prefix, err)
	}
	if children == nil {
		children = make(map[string]json.RawMessage)
	}
	return children, nil
}
