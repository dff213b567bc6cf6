package types

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps type names to handlers. It is immutable once built.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds a registry holding hs.
func NewRegistry(hs ...Handler) (*Registry, error) {
	r := &Registry{handlers: make(map[string]Handler, len(hs))}
	for _, h := range hs {
		name := h.Type()
		if name == "" {
			return nil, fmt.Errorf("handler %T has no type name", h)
		}
		if _, exists := r.handlers[name]; exists {
			return nil, fmt.Errorf("type %q registered twice", name)
		}
		r.handlers[name] = h
	}
	return r, nil
}

// Builtins returns the built-in handlers, for building a registry that
// extends them.
func Builtins() []Handler {
	return []Handler{
		Object(),
		Array(),
		String(),
		Number(),
		Bool(),
		Any(),
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(Builtins()...)
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the shared registry of built-in handlers.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
