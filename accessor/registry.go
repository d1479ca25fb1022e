package accessor

import (
	"sync"

	"property-reflector/descriptor"
)

// Config holds construction options shared by Build and Registry.
type Config struct {
	// CacheEnabled keeps built tables in the registry, one per type
	// identity.
	CacheEnabled bool

	// MaxSuggestions caps the did-you-mean names attached to missing
	// accessor errors; zero disables suggestions.
	MaxSuggestions int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheEnabled:   true,
		MaxSuggestions: 3,
	}
}

// Registry builds tables on demand and caches them per type identity.
//
// Concurrent lookups for the same type may build the table more than
// once; construction is deterministic and side-effect-free, so the losing
// build is simply discarded and exactly one table is ever published.
type Registry struct {
	provider descriptor.Provider
	cfg      Config

	mu     sync.RWMutex
	tables map[any]*Table
}

// NewRegistry creates a registry over the given provider.
func NewRegistry(p descriptor.Provider, cfg Config) *Registry {
	return &Registry{
		provider: p,
		cfg:      cfg,
		tables:   make(map[any]*Table),
	}
}

// Lookup returns the table for t, building it on first use.
func (r *Registry) Lookup(t descriptor.TypeDescriptor) (*Table, error) {
	if !r.cfg.CacheEnabled {
		return BuildWithConfig(r.provider, t, r.cfg)
	}

	key := t.Identity()

	r.mu.RLock()
	table, ok := r.tables[key]
	r.mu.RUnlock()

	if ok {
		return table, nil
	}

	table, err := BuildWithConfig(r.provider, t, r.cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if published, ok := r.tables[key]; ok {
		return published, nil
	}

	r.tables[key] = table

	return table, nil
}
