package plugin

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateImporterKey is returned when a key is registered twice.
var ErrDuplicateImporterKey = errors.New("duplicate importer key")

// ErrUnknownImporterKey is returned when registry lookup fails.
var ErrUnknownImporterKey = errors.New("unknown importer key")

// Registry stores importer plugins with deterministic ordering.
type Registry struct {
	mu      sync.RWMutex
	ordered []string
	index   map[string]DataModelImporter
}

// NewRegistry creates an empty importer registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]DataModelImporter),
	}
}

// Register adds an importer plugin under its descriptor key.
func (r *Registry) Register(importer DataModelImporter) error {
	key := importer.Descriptor().Key

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateImporterKey, key)
	}

	r.index[key] = importer
	r.ordered = append(r.ordered, key)

	return nil
}

// Lookup resolves a registered importer by key.
func (r *Registry) Lookup(key string) (DataModelImporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	importer, ok := r.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownImporterKey, key)
	}

	return importer, nil
}

// All returns descriptors of all registered importers in registration order.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Descriptor, 0, len(r.ordered))
	for _, key := range r.ordered {
		descriptors = append(descriptors, r.index[key].Descriptor())
	}

	return descriptors
}

// defaultRegistry is the process-wide registry importer packages register
// into from init, the Go analogue of an installed entry point.
var defaultRegistry = NewRegistry()

// Register adds an importer to the default registry.
func Register(importer DataModelImporter) error {
	return defaultRegistry.Register(importer)
}

// MustRegister adds an importer to the default registry, panicking on
// duplicate keys. Intended for init-time registration.
func MustRegister(importer DataModelImporter) {
	err := defaultRegistry.Register(importer)
	if err != nil {
		panic(err)
	}
}

// Lookup resolves an importer from the default registry.
func Lookup(key string) (DataModelImporter, error) {
	return defaultRegistry.Lookup(key)
}

// All returns descriptors from the default registry in registration order.
func All() []Descriptor {
	return defaultRegistry.All()
}
