// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps conversion results under opaque ids for later
// retrieval. The memory store matches the disposable-lookup contract of
// the conversion API; the SQLite store is a convenience for operators who
// want results to survive a restart.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/formatacle/formatacle/pkg/types"
)

// Store persists conversion results. Get returns (nil, nil) for an
// unknown id.
type Store interface {
	Put(ctx context.Context, result types.ConversionResult) (string, error)
	Get(ctx context.Context, id string) (*types.ConversionResult, error)
	Close() error
}

// MemStore is an in-memory Store safe for concurrent use.
type MemStore struct {
	mu          sync.RWMutex
	conversions map[string]types.ConversionResult
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{conversions: make(map[string]types.ConversionResult)}
}

// Put stores the result under a fresh opaque id.
func (s *MemStore) Put(_ context.Context, result types.ConversionResult) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.conversions[id] = result
	s.mu.Unlock()
	return id, nil
}

// Get looks up a stored result.
func (s *MemStore) Get(_ context.Context, id string) (*types.ConversionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.conversions[id]; ok {
		return &r, nil
	}
	return nil, nil
}

// Close is a no-op for the memory store.
func (s *MemStore) Close() error { return nil }
