// Package binding implements the ways a native class group reaches its
// functions: static linking or function pointers loaded from a provider.
package binding

import (
	"sort"
	"sync"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/transform"
)

// Class is implemented by bindings that store function pointers in
// per-class fields and need class-level host code.
type Class interface {
	transform.Binding
	// FunctionAddressCall returns the host expression resolving the
	// function pointer of fn from the provider.
	FunctionAddressCall(fn *decl.Function) string
	// Members returns the function pointer fields, constructor and
	// instance getters of a class.
	Members(c *decl.NativeClass) string
}

// Capabilities is implemented by bindings that generate a capabilities
// class aggregating every class of the group.
type Capabilities interface {
	transform.Binding
	// CapabilitiesPath returns the host source path of the capabilities class.
	CapabilitiesPath() string
	// Capabilities renders the capabilities class of classes.
	Capabilities(classes []*decl.NativeClass) string
}

var (
	mu       sync.RWMutex
	bindings = map[string]transform.Binding{}
)

// Register makes b available to classes declaring its name. Registering a
// name twice replaces the previous binding.
func Register(b transform.Binding) {
	mu.Lock()
	defer mu.Unlock()
	bindings[b.Name()] = b
}

// Lookup returns the binding of a class group name. The empty name is the
// static binding.
func Lookup(name string) (transform.Binding, error) {
	if name == "" {
		return transform.NoBinding, nil
	}
	mu.RLock()
	defer mu.RUnlock()
	b, ok := bindings[name]
	if !ok {
		return nil, errors.WithHintf(errors.Wrapf(errors.ErrNotFound, "binding %q", name),
			"registered bindings: %v", namesLocked())
	}
	return b, nil
}

// For returns the binding of a class.
func For(c *decl.NativeClass) (transform.Binding, error) {
	return Lookup(c.Binding)
}

// Names returns the registered binding names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(bindings))
	for n := range bindings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
