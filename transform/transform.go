// Package transform derives the overload family of a native function.
//
// A Transform replaces the declaration, call-site expression or return
// expression of one element (parameter or return value). Resolve runs an
// ordered phase pipeline over one shared, insertion-ordered Set and
// snapshots it every time a phase emits an overload.
package transform

import (
	"fmt"

	"github.com/teranos/nativegen/decl"
)

// Generated code identifiers
const (
	ResultVar          = decl.RESULT
	APIBufferVar       = "__buffer"
	FunctionAddressVar = "__functionAddress"
	JNIEnvVar          = "__env"
	PointerPostfix     = "Address"
	MapOld             = "old_buffer"
	MapLength          = "length"
)

// Mode is the generation mode of an overload.
type Mode int

const (
	// ModeNormal renders buffers as byte views and sizes through explicit byte counts.
	ModeNormal Mode = iota
	// ModeAlternative renders buffers with their typed views.
	ModeAlternative
)

func (m Mode) String() string {
	if m == ModeNormal {
		return "normal"
	}
	return "alternative"
}

// ApplyTo converts the mode to the code statement selector.
func (m Mode) ApplyTo() decl.ApplyTo {
	if m == ModeNormal {
		return decl.ApplyNormal
	}
	return decl.ApplyAlternative
}

// Context is the rendering context of one overload.
type Context struct {
	Func *decl.Function
	Mode Mode
	Set  *Set
}

// Transform returns the active transform of e, or nil.
func (c *Context) Transform(e decl.Element) Transform {
	if c.Set == nil {
		return nil
	}
	return c.Set.Get(e)
}

// Transform replaces how one element is declared and passed.
type Transform interface {
	fmt.Stringer
	// Declaration returns the host declaration of e, or "" to hide it. For
	// return values it returns the host return type.
	Declaration(ctx *Context, e decl.Element, original string) string
	// Call returns the call-site expression of a parameter, or the returned
	// expression of a return value.
	Call(ctx *Context, e decl.Element, original string) string
}

// CheckSkipper is implemented by transforms whose element needs no buffer check.
type CheckSkipper interface {
	SkipsCheck() bool
}

// ScratchUser is implemented by transforms that stage values in the
// scratch APIBuffer before the native call.
type ScratchUser interface {
	Scratch(ctx *Context, e decl.Element) []string
}

// CodeInjector is implemented by transforms that add host statements around the call.
type CodeInjector interface {
	Inject(ctx *Context, e decl.Element, code *decl.Code) *decl.Code
}

// Counter is implemented by transforms that replace a buffer with a value
// of known element count.
type Counter interface {
	Count(ctx *Context, e decl.Element) string
}

// ExtraParameters is implemented by return transforms that append host parameters.
type ExtraParameters interface {
	ExtraParams(ctx *Context) []string
}

// SkipsCheck reports whether t suppresses the checks of its element.
func SkipsCheck(t Transform) bool {
	s, ok := t.(CheckSkipper)
	return ok && s.SkipsCheck()
}

// Declaration applies the active transform of e to a declaration.
func Declaration(ctx *Context, e decl.Element, original string) string {
	if t := ctx.Transform(e); t != nil {
		return t.Declaration(ctx, e, original)
	}
	return original
}

// Call applies the active transform of e to a call-site expression.
func Call(ctx *Context, e decl.Element, original string) string {
	if t := ctx.Transform(e); t != nil {
		return t.Call(ctx, e, original)
	}
	return original
}
