package extension

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Kind names an extension point.
type Kind string

const (
	KindFields     Kind = "fields"
	KindColumns    Kind = "columns"
	KindPages      Kind = "pages"
	KindNavigation Kind = "navigation"
)

// Registry stores providers per target in registration order. Registering the
// same provider twice keeps both entries. Reads return copies so callers can
// never alter the registered sequence.
type Registry[P any] struct {
	mu        sync.RWMutex
	kind      Kind
	providers map[string][]P
	targets   []string
	frozen    bool
}

// NewRegistry creates an empty registry for the given extension kind.
func NewRegistry[P any](kind Kind) *Registry[P] {
	return &Registry[P]{
		kind:      kind,
		providers: make(map[string][]P),
	}
}

// Kind returns the extension point served by the registry.
func (r *Registry[P]) Kind() Kind {
	return r.kind
}

// Register appends provider to the sequence for target.
func (r *Registry[P]) Register(target string, provider P) error {
	key, err := r.validate(target, provider)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: %s target %q", ErrFrozen, r.kind, key)
	}
	if _, exists := r.providers[key]; !exists {
		r.targets = append(r.targets, key)
	}
	r.providers[key] = append(r.providers[key], provider)
	return nil
}

// Replace drops every provider registered for target and stores provider as
// the only one.
func (r *Registry[P]) Replace(target string, provider P) error {
	key, err := r.validate(target, provider)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: %s target %q", ErrFrozen, r.kind, key)
	}
	if _, exists := r.providers[key]; !exists {
		r.targets = append(r.targets, key)
	}
	r.providers[key] = []P{provider}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry[P]) MustRegister(target string, provider P) {
	if err := r.Register(target, provider); err != nil {
		panic(err)
	}
}

// ProvidersFor returns the providers registered for target, or an empty
// slice when none were registered.
func (r *Registry[P]) ProvidersFor(target string) []P {
	key := strings.TrimSpace(target)

	r.mu.RLock()
	defer r.mu.RUnlock()

	registered := r.providers[key]
	out := make([]P, len(registered))
	copy(out, registered)
	return out
}

// Targets lists the targets with at least one provider in the order they were
// first registered.
func (r *Registry[P]) Targets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.targets...)
}

// Len returns the number of providers registered for target.
func (r *Registry[P]) Len(target string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.providers[strings.TrimSpace(target)])
}

// Freeze ends the registration phase. Subsequent Register and Replace calls
// fail with ErrFrozen.
func (r *Registry[P]) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry[P]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}

func (r *Registry[P]) validate(target string, provider P) (string, error) {
	key := strings.TrimSpace(target)
	if key == "" {
		return "", fmt.Errorf("%w (%s)", ErrTargetRequired, r.kind)
	}
	if isNil(provider) {
		return "", fmt.Errorf("%w: %s target %q", ErrNilProvider, r.kind, key)
	}
	return key, nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
