// Package native models the closed set of native type categories and their
// host-language and call-signature projections.
//
// Types are immutable declaration data. They are built once by template
// packages and shared by reference across every function that uses them.
package native

import "strings"

// Kind is the category of a native type.
type Kind int

const (
	KindVoid Kind = iota
	KindPrimitive
	KindInteger
	KindPointer // typed or untyped data pointer
	KindOpaque  // handle with no accessible element layout
	KindCharSequence
	KindStruct
	KindObject // wrapper object or callback, passed by address
)

var kindNames = [...]string{"void", "primitive", "integer", "pointer", "opaque", "string", "struct", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Type is a native type declaration.
type Type struct {
	name            string
	kind            Kind
	mapping         *Mapping
	unsigned        bool
	elem            *Type
	char            *CharMapping
	nullTerminated  bool
	className       string
	includesPointer bool
	constant        bool
}

// VoidType is the native void type.
var VoidType = &Type{name: "void", kind: KindVoid, mapping: Void}

// Primitive declares a non-integer primitive (float, double, boolean).
func Primitive(name string, m *Mapping) *Type {
	return &Type{name: name, kind: KindPrimitive, mapping: m}
}

// Integer declares an integer type.
func Integer(name string, m *Mapping, unsigned bool) *Type {
	return &Type{name: name, kind: KindInteger, mapping: m, unsigned: unsigned}
}

// Typedef declares a new name for an existing type.
func Typedef(t *Type, name string) *Type {
	c := *t
	c.name = name
	c.includesPointer = false
	return &c
}

// Opaque declares an opaque handle type, e.g. EGLDisplay.
func Opaque(name string) *Type {
	return &Type{name: name, kind: KindOpaque, mapping: OpaquePointer}
}

// Untyped declares an untyped data pointer, e.g. void *.
func Untyped(elemName string) *Type {
	return &Type{name: elemName + " *", kind: KindPointer, mapping: Data, includesPointer: true}
}

// CharSequence declares a null-terminated string pointer of the given encoding.
func CharSequence(elemName string, cm *CharMapping) *Type {
	return &Type{
		name:            elemName + " *",
		kind:            KindCharSequence,
		mapping:         DataByte,
		char:            cm,
		nullTerminated:  true,
		includesPointer: true,
	}
}

// NotTerminated returns a copy of a string type that is not null-terminated.
func NotTerminated(t *Type) *Type {
	c := *t
	c.nullTerminated = false
	return &c
}

// Struct declares a struct passed by value. className is the generated
// host-language wrapper class.
func Struct(name, className string) *Type {
	return &Type{name: name, kind: KindStruct, mapping: Data, className: className}
}

// Object declares a pointer that surfaces as a wrapper object in the host
// language (callbacks, generated wrappers).
func Object(name, className string) *Type {
	return &Type{name: name, kind: KindObject, mapping: OpaquePointer, className: className}
}

// Callback declares a function pointer type with a generated callback class.
func Callback(name, className string) *Type {
	return Object(name, className)
}

// PointerTo derives the pointer type of t.
func PointerTo(t *Type) *Type {
	p := &Type{name: pointerName(t.name), kind: KindPointer, elem: t, includesPointer: true}
	switch t.kind {
	case KindVoid:
		p.mapping = Data
		p.elem = nil
	case KindPrimitive, KindInteger:
		p.mapping = DataMappingOf(t.mapping)
	case KindStruct:
		if !t.includesPointer {
			p.kind = KindStruct
			p.mapping = Data
			p.className = t.className
			p.elem = nil
			return p
		}
		p.mapping = DataPointer
	default:
		p.mapping = DataPointer
	}
	return p
}

func pointerName(name string) string {
	if strings.HasSuffix(name, "*") {
		return name + "*"
	}
	return name + " *"
}

// Const returns a const-qualified copy of t.
func Const(t *Type) *Type {
	c := *t
	c.constant = true
	return &c
}

// Name returns the native type name without qualifiers.
func (t *Type) Name() string { return t.name }

// Declaration returns the native type as written in C, qualifiers included.
func (t *Type) Declaration() string {
	if t.constant {
		return "const " + t.name
	}
	return t.name
}

func (t *Type) Kind() Kind { return t.kind }
func (t *Type) Mapping() *Mapping { return t.mapping }
func (t *Type) Unsigned() bool { return t.unsigned }
func (t *Type) Elem() *Type { return t.elem }
func (t *Type) Char() *CharMapping { return t.char }
func (t *Type) NullTerminated() bool { return t.nullTerminated }
func (t *Type) ClassName() string { return t.className }
func (t *Type) IncludesPointer() bool { return t.includesPointer }
func (t *Type) IsConst() bool { return t.constant }
func (t *Type) IsVoid() bool { return t.kind == KindVoid }
func (t *Type) IsCharSequence() bool { return t.kind == KindCharSequence }
func (t *Type) IsStruct() bool { return t.kind == KindStruct }
func (t *Type) IsObject() bool { return t.kind == KindObject }
func (t *Type) IsOpaque() bool { return t.mapping == OpaquePointer }
func (t *Type) IsInteger() bool { return t.kind == KindInteger }
func (t *Type) IsPrimitiveValue() bool { return t.kind == KindPrimitive || t.kind == KindInteger }
func (t *Type) IsPointer() bool { return t.mapping.pointer }
func (t *Type) IsStructValue() bool { return t.kind == KindStruct && !t.includesPointer }
func (t *Type) IsMultiByte() bool { return t.IsBufferPointer() && t.mapping.IsMultiByte() }
func (t *Type) ByteShift() string { return t.mapping.shift }
func (t *Type) String() string { return t.Declaration() }

// IsBufferPointer reports whether t points to a multi-element data buffer
// as opposed to an opaque handle.
func (t *Type) IsBufferPointer() bool {
	return t.mapping.pointer && t.mapping != OpaquePointer && !t.IsStructValue()
}

// ElementBytes returns the byte width of one buffer element, or 0 for
// types that are not buffer pointers.
func (t *Type) ElementBytes() int {
	if !t.IsBufferPointer() {
		return 0
	}
	if t.kind == KindCharSequence {
		return t.char.bytes
	}
	return t.mapping.bytes
}
