// Package factory holds the registry the planner uses to build pluggable
// modules, such as metrics sinks, from their configuration blocks.
package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ModuleConfig names a module implementation and carries its raw settings.
// The Conf map is handed to the module's Factory untouched; Decode turns
// it into the module's own config struct.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Factory builds one T from raw settings.
type Factory[T any] func(map[string]any) (T, error)

// Registry maps module type names to their factories. Registration
// happens in package init functions, creation at planner startup, so the
// lock is uncontended in practice.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register claims a type name. A name can be claimed once; a second
// registration is a wiring mistake and fails loudly.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	if f == nil {
		return fmt.Errorf("nil factory for module type %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("module type %q registered twice", name)
	}
	r.factories[name] = f
	return nil
}

// Create builds the module the config names. Unknown type names report
// the registered ones to make config typos easy to spot.
func (r *Registry[T]) Create(cfg ModuleConfig) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[cfg.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown module type %q (registered: %v)", cfg.Type, r.names())
	}
	return f(cfg.Conf)
}

func (r *Registry[T]) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Decode fills the module's config struct from the raw settings map,
// matching keys by json tag like the rest of the configuration layer.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
