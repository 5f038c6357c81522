package store

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// Memory is a non-persistent key-value store for throwaway sessions
type Memory struct {
	c *cache.Cache
}

// NewMemory creates an empty in-memory store. Entries never expire.
func NewMemory() *Memory {
	return &Memory{c: cache.New(cache.NoExpiration, 0)}
}

// Get retrieves a value by key
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

// Set stores a value, replacing any existing one
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.c.Set(key, value, cache.NoExpiration)
	return nil
}

// Remove deletes a key
func (m *Memory) Remove(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// Close is a no-op so Memory and SQLite can be used interchangeably
func (m *Memory) Close() error {
	return nil
}
