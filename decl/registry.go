package decl

import (
	"sort"

	"github.com/teranos/nativegen/errors"
)

// Registry holds every declared native class. Template packages populate
// it through Class; the generator reads it after Validate.
type Registry struct {
	classes []*NativeClass
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Class declares a native class and returns it for population.
func (r *Registry) Class(pkg, className string, opts ...ClassOption) *NativeClass {
	c := NewClass(pkg, className, opts...)
	r.classes = append(r.classes, c)
	return c
}

// Add registers an existing class.
func (r *Registry) Add(c *NativeClass) {
	r.classes = append(r.classes, c)
}

// Classes returns the classes in registration order.
func (r *Registry) Classes() []*NativeClass {
	return append([]*NativeClass(nil), r.classes...)
}

// Lookup finds a class by class name or template name.
func (r *Registry) Lookup(name string) (*NativeClass, error) {
	for _, c := range r.classes {
		if c.ClassName == name || c.TemplateName == name {
			return c, nil
		}
	}
	return nil, errors.WithHintf(errors.Wrapf(errors.ErrNotFound, "native class %q", name),
		"known classes: %v", r.Names())
}

// Names returns the sorted class names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for _, c := range r.classes {
		names = append(names, c.ClassName)
	}
	sort.Strings(names)
	return names
}

// Validate validates every class in registration order. Duplicate class
// names within a package are declaration errors.
func (r *Registry) Validate() error {
	seen := make(map[string]bool, len(r.classes))
	for _, c := range r.classes {
		key := c.Package + "." + c.ClassName
		if seen[key] {
			return errors.Wrapf(errors.ErrDeclaration, "duplicate native class %s", key)
		}
		seen[key] = true
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
