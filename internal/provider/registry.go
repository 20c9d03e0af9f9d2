package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps stable string keys to provider instances. It is populated at
// process start and read-only afterwards; the mutex exists so that tests and
// future administrative reloads stay safe.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register inserts a provider under the given key, replacing any previous
// entry. Adding a new backend is exactly this: implement Provider, Register it.
func (r *Registry) Register(key string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[key] = p
}

// Get returns the provider registered under key.
func (r *Registry) Get(key string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, key)
	}
	return p, nil
}

// List returns the descriptors of all registered providers, sorted by key.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	descriptors := make([]Descriptor, 0, len(keys))
	for _, k := range keys {
		descriptors = append(descriptors, r.providers[k].Descriptor())
	}
	return descriptors
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
