package runtimes

import (
	"sort"
	"sync"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// Sentinel errors for registry operations.
var (
	// ErrAdapterAlreadyRegistered is returned when a name is already in use.
	ErrAdapterAlreadyRegistered = errors.New("runtime already registered")

	// ErrInvalidAdapter is returned for nil adapters or empty names.
	ErrInvalidAdapter = errors.New("invalid runtime adapter")
)

// Registry holds adapters by name. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter under its Name.
func (r *Registry) Register(a Adapter) error {
	if a == nil || a.Name() == "" || a.Name() == "config" || a.Name() == "version" {
		return ErrInvalidAdapter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[a.Name()]; exists {
		return errors.Wrap(ErrAdapterAlreadyRegistered, a.Name())
	}
	r.adapters[a.Name()] = a
	return nil
}

// Get returns the adapter registered under name, or an error matching
// errors.ErrUnknownRuntime.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[name]
	if !ok {
		return nil, errors.Wrap(errors.ErrUnknownRuntime, name)
	}
	return a, nil
}

// All returns the registered adapters sorted by name.
func (r *Registry) All() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Adapter, 0, len(r.adapters))
	for _, a := range r.adapters {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.Name()
	}
	return names
}
