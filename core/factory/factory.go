package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

var (
	// ErrDuplicate is returned when a tag is registered twice.
	ErrDuplicate = errors.New("tag already registered")
	// ErrUnknownType is returned when looking up a tag that was never registered.
	ErrUnknownType = errors.New("unknown type")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("registry sealed")
)

// ModuleConfig contains the type tag and raw configuration for a module.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Factory constructs an implementation of T using the provided raw config.
type Factory[T any] func(map[string]any) (T, error)

// Entry describes one registered tag.
type Entry[T any] struct {
	Tag string
	// TypeName is the Go type of the prototype, empty for plain Register.
	TypeName string
	New      Factory[T]
}

// Registry stores factories keyed by tag.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[T]
	sealed  bool
}

// NewRegistry returns an empty factory registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]Entry[T])}
}

// Register adds a factory for the given tag.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	return r.add(Entry[T]{Tag: name, New: f})
}

// RegisterType registers f under the tags given in aliases. An empty alias,
// or no alias at all, stands for the tag derived from proto's type name.
func (r *Registry[T]) RegisterType(proto any, f Factory[T], aliases ...string) error {
	if proto == nil {
		return errors.New("register: nil prototype")
	}
	typeName := typeNameOf(proto)
	if len(aliases) == 0 {
		aliases = []string{""}
	}
	for _, a := range aliases {
		tag := a
		if tag == "" {
			tag = TagFor(typeName)
		}
		if err := r.add(Entry[T]{Tag: tag, TypeName: typeName, New: f}); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry[T]) MustRegister(name string, f Factory[T]) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// MustRegisterType is RegisterType that panics on error.
func (r *Registry[T]) MustRegisterType(proto any, f Factory[T], aliases ...string) {
	if err := r.RegisterType(proto, f, aliases...); err != nil {
		panic(err)
	}
}

func (r *Registry[T]) add(e Entry[T]) error {
	if e.New == nil {
		return fmt.Errorf("factory nil for %s", e.Tag)
	}
	if e.Tag == "" {
		return errors.New("register: empty tag")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("%w: cannot add %s", ErrSealed, e.Tag)
	}
	if _, ok := r.entries[e.Tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, e.Tag)
	}
	r.entries[e.Tag] = e
	return nil
}

// Seal freezes the registry. Further registrations fail with ErrSealed.
func (r *Registry[T]) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (r *Registry[T]) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Lookup returns the entry registered under tag.
func (r *Registry[T]) Lookup(tag string) (Entry[T], error) {
	r.mu.RLock()
	e, ok := r.entries[tag]
	r.mu.RUnlock()
	if !ok {
		return Entry[T]{}, fmt.Errorf("%w %s", ErrUnknownType, tag)
	}
	return e, nil
}

// Tags returns all registered tags in lexical order.
func (r *Registry[T]) Tags() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Create instantiates a module based on its configuration.
func (r *Registry[T]) Create(cfg ModuleConfig) (T, error) {
	e, err := r.Lookup(cfg.Type)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.New(cfg.Conf)
}

// Decode fills out the provided struct using json tags. Unknown keys are
// rejected so a misspelt parameter does not silently fall back to a default.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

func typeNameOf(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
