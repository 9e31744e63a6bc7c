// Package redis provides a Redis-backed document store for embedding
// applications that already run Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docylit/docylit/pkg/domain"
	"github.com/docylit/docylit/pkg/store"
)

// Store implements store.DocumentStore on a Redis instance. Entries never
// expire; the document outlives any single editing session.
type Store struct {
	client *redis.Client
}

var _ store.DocumentStore = (*Store)(nil)

// New connects to the Redis instance at the given URL and verifies the
// connection with a ping.
func New(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Store{client: client}, nil
}

// NewWithClient creates a store from an existing Redis client.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Load returns the saved document, or store.ErrNoDocument when neither key
// exists.
func (s *Store) Load(ctx context.Context) (*domain.DocumentState, error) {
	vals, err := s.client.MGet(ctx, store.KeyContent, store.KeyTitle).Result()
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if vals[0] == nil && vals[1] == nil {
		return nil, store.ErrNoDocument
	}

	doc := &domain.DocumentState{}
	if v, ok := vals[0].(string); ok {
		doc.Content = v
	}
	if v, ok := vals[1].(string); ok {
		doc.Title = v
	}
	return doc, nil
}

// SaveContent overwrites the content entry.
func (s *Store) SaveContent(ctx context.Context, content string) error {
	if err := s.client.Set(ctx, store.KeyContent, content, 0).Err(); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// SaveTitle overwrites the title entry.
func (s *Store) SaveTitle(ctx context.Context, title string) error {
	if err := s.client.Set(ctx, store.KeyTitle, title, 0).Err(); err != nil {
		return fmt.Errorf("save title: %w", err)
	}
	return nil
}
