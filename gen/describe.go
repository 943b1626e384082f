package gen

import (
	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/transform"
)

// ClassDescription is the overload plan of one class.
type ClassDescription struct {
	Class     string                `yaml:"class" json:"class"`
	Package   string                `yaml:"package" json:"package"`
	Template  string                `yaml:"template,omitempty" json:"template,omitempty"`
	Binding   string                `yaml:"binding,omitempty" json:"binding,omitempty"`
	Overloads int                   `yaml:"overloads" json:"overloads"`
	Functions []FunctionDescription `yaml:"functions" json:"functions"`
}

// FunctionDescription lists the overloads resolved for one native function.
type FunctionDescription struct {
	Name      string              `yaml:"name" json:"name"`
	Native    string              `yaml:"native" json:"native"`
	Overloads []transform.Summary `yaml:"overloads" json:"overloads"`
}

// ClassInfo is one row of a registry listing.
type ClassInfo struct {
	Class     string
	Package   string
	Binding   string
	Functions int
	Overloads int
}

// Describe resolves the class registered under name and returns its overload plan.
func Describe(reg *decl.Registry, name string) (*ClassDescription, error) {
	c, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	u, err := unitFor(c)
	if err != nil {
		return nil, err
	}

	d := &ClassDescription{
		Class:     c.ClassName,
		Package:   c.Package,
		Template:  c.TemplateName,
		Binding:   c.Binding,
		Overloads: u.OverloadCount(),
		Functions: make([]FunctionDescription, 0, len(u.Functions)),
	}
	for _, f := range u.Functions {
		fd := FunctionDescription{Name: f.Func.SimpleName, Native: f.Func.Name}
		for _, o := range f.Overloads {
			fd.Overloads = append(fd.Overloads, o.Summary(f.Func))
		}
		d.Functions = append(d.Functions, fd)
	}
	return d, nil
}

// List resolves every registered class and counts its functions and overloads.
func List(reg *decl.Registry) ([]ClassInfo, error) {
	if err := reg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate templates")
	}
	infos := make([]ClassInfo, 0, len(reg.Classes()))
	for _, c := range reg.Classes() {
		u, err := unitFor(c)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ClassInfo{
			Class:     c.ClassName,
			Package:   c.Package,
			Binding:   c.Binding,
			Functions: len(c.Functions),
			Overloads: u.OverloadCount(),
		})
	}
	return infos, nil
}

func unitFor(c *decl.NativeClass) (*emit.Unit, error) {
	b, err := binding.For(c)
	if err != nil {
		return nil, errors.Wrapf(err, "class %s", c.ClassName)
	}
	return emit.NewUnit(c, b, emit.DefaultOptions())
}
