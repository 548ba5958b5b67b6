/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package reliant

import (
	"fmt"
	"sync"
)

// Stores is a small registry that holds the process-wide store handles
// (document, blob, secret) under caller-chosen keys. Its methods are not
// generic; the caller type-asserts the returned value to the concrete
// store type.
type Stores interface {
	// Register registers a store under a given key (for example, "orders" or "artifacts").
	Register(key string, store any) error
	// Get retrieves the registered store for a given key.
	Get(key string) (any, error)
}

// storeManager is a thread-safe implementation of the Stores interface.
type storeManager struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewStores creates and returns a new Stores implementation.
func NewStores() Stores {
	return &storeManager{
		stores: make(map[string]any),
	}
}

// Register stores the provided store under the given key.
func (sm *storeManager) Register(key string, store any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("store with key %q already registered", key)
	}
	sm.stores[key] = store
	return nil
}

// Get retrieves the store associated with the given key.
func (sm *storeManager) Get(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("store with key %q not found", key)
	}
	return s, nil
}
