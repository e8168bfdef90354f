package operator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/image-vault/internal/attach"
)

// Factory constructs a fresh operator instance for one pipeline invocation.
type Factory func() attach.Operator

// Registry maps operator names to factories. Resolving an unknown name is
// reported as unresolved, not as an error; only malformed registrations are
// rejected, and they are rejected up front so resolution never has to
// second-guess its inputs.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds an operator under name. Names are lowercase identifiers
// ([a-z0-9_]+). Registering a malformed name, a nil factory, or a duplicate
// name is an error.
func (r *Registry) Register(name string, f Factory) error {
	if !validName(name) {
		return fmt.Errorf("invalid operator name %q", name)
	}
	if f == nil {
		return fmt.Errorf("nil factory for operator %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("operator %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Resolve returns the operator registered under name. A false result means
// the name is not an operator here; the caller decides what that means.
// Malformed names are unresolvable without a lookup: Register rejects them,
// so no factory can exist under one.
func (r *Registry) Resolve(name string) (attach.Operator, bool) {
	if !validName(name) {
		return nil, false
	}
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the registered operator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry populated with the built-in operators.
// New operators extend it through Register without touching this package.
func Default() *Registry {
	return defaultRegistry
}

// mustRegister wires a built-in into the default registry at init time.
func mustRegister(name string, f Factory) {
	if err := defaultRegistry.Register(name, f); err != nil {
		panic(err)
	}
}

var _ attach.Resolver = (*Registry)(nil)
