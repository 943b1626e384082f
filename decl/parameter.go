package decl

import "github.com/teranos/nativegen/native"

// Direction is the data flow direction of a parameter.
type Direction int

const (
	DirectionIn Direction = iota
	DirectionOut
	DirectionInOut
)

func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "OUT"
	case DirectionInOut:
		return "INOUT"
	}
	return "IN"
}

// Element is a declaration element that may carry modifiers and be
// replaced by a transform: a parameter or a return value.
type Element interface {
	ElementName() string
	NativeType() *native.Type
	Has(Key) bool
}

// Parameter is one native function parameter.
type Parameter struct {
	Modifiers

	Type      *native.Type
	Name      string
	Direction Direction
	Doc       string
	Links     string

	index       int
	attachErr   string
	utf16Scaled bool
}

// In declares an input parameter.
func In(t *native.Type, name, doc string, mods ...Modifier) *Parameter {
	return newParameter(t, name, DirectionIn, doc, mods)
}

// Out declares an output parameter. t must be a pointer type.
func Out(t *native.Type, name, doc string, mods ...Modifier) *Parameter {
	return newParameter(t, name, DirectionOut, doc, mods)
}

// InOut declares an input/output parameter. t must be a pointer type.
func InOut(t *native.Type, name, doc string, mods ...Modifier) *Parameter {
	return newParameter(t, name, DirectionInOut, doc, mods)
}

func newParameter(t *native.Type, name string, dir Direction, doc string, mods []Modifier) *Parameter {
	p := &Parameter{Type: t, Name: name, Direction: dir, Doc: doc, index: -1}
	p.attachErr = p.attach(TargetParameter, mods)
	return p
}

// WithLinks attaches constant links used by documentation.
func (p *Parameter) WithLinks(links string) *Parameter {
	p.Links = links
	return p
}

func (p *Parameter) ElementName() string      { return p.Name }
func (p *Parameter) NativeType() *native.Type { return p.Type }

// Index returns the position of the parameter in its function.
func (p *Parameter) Index() int { return p.index }

// IsBufferPointer reports whether the parameter points to a data buffer.
func (p *Parameter) IsBufferPointer() bool { return p.Type.IsBufferPointer() }

// IsAutoSizeResultOut reports whether the parameter is an AutoSizeResult
// written by the native function.
func (p *Parameter) IsAutoSizeResultOut() bool {
	return p.Direction != DirectionIn && p.Has(KeyAutoSizeResult)
}

// IsSpecial reports whether the parameter needs more than a plain pass-through.
func (p *Parameter) IsSpecial() bool {
	return p.Type.IsBufferPointer() || p.Type.IsStructValue() || len(p.order) != 0
}

func (p *Parameter) String() string {
	return p.Direction.String() + " " + p.Type.Declaration() + " " + p.Name
}

func (p *Parameter) clone() *Parameter {
	c := *p
	c.Modifiers = p.Modifiers.clone()
	return &c
}

// ReturnValue is the return slot of a native function.
type ReturnValue struct {
	Modifiers

	Type *native.Type
	Doc  string

	attachErr string
}

func (r *ReturnValue) ElementName() string      { return RESULT }
func (r *ReturnValue) NativeType() *native.Type { return r.Type }

// IsVoid reports whether the function returns nothing.
func (r *ReturnValue) IsVoid() bool { return r.Type.IsVoid() }

// IsBufferPointer reports whether the function returns a data buffer.
func (r *ReturnValue) IsBufferPointer() bool { return r.Type.IsBufferPointer() }

// IsSpecial reports whether the return value needs more than a plain pass-through.
func (r *ReturnValue) IsSpecial() bool {
	return r.Type.IsBufferPointer() || r.Type.IsStructValue() || r.Type.IsObject() || len(r.order) != 0
}
