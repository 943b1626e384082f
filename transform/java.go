package transform

import (
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

// JavaType returns the host type of a parameter in public method signatures.
func JavaType(p *decl.Parameter) string {
	return javaType(p.Type, p.Has(decl.KeyStructBuffer))
}

func javaType(t *native.Type, structBuffer bool) string {
	switch {
	case t.IsStruct():
		if structBuffer {
			return t.ClassName() + ".Buffer"
		}
		return t.ClassName()
	case t.IsObject():
		return t.ClassName()
	case t.IsCharSequence():
		return "ByteBuffer"
	}
	return t.Mapping().JavaType()
}

// JavaParam returns "<type> <name>" for a public method signature.
func JavaParam(p *decl.Parameter) string {
	return JavaType(p) + " " + p.Name
}

// ByteView reports whether p is rendered as a ByteBuffer in ctx: normal
// mode exposes every untransformed data buffer as bytes.
func ByteView(ctx *Context, p *decl.Parameter) bool {
	return ctx.Mode == ModeNormal && ctx.Transform(p) == nil &&
		p.IsBufferPointer() && !p.Type.IsStruct()
}

// BaseParam returns the untransformed declaration of p in ctx.
func BaseParam(ctx *Context, p *decl.Parameter) string {
	if ByteView(ctx, p) {
		return "ByteBuffer " + p.Name
	}
	return JavaParam(p)
}

// NativeParamName is the name of p in native method signatures.
func NativeParamName(p *decl.Parameter) string {
	if p.Type.IsPointer() {
		return p.Name + PointerPostfix
	}
	return p.Name
}

// NativeParam returns "<type> <name>" for native and unsafe method signatures.
func NativeParam(p *decl.Parameter) string {
	return p.Type.Mapping().NativeMethodType() + " " + NativeParamName(p)
}

// NativeCallArg returns the untransformed argument passing p to the native method.
func NativeCallArg(fn *decl.Function, p *decl.Parameter, mode Mode) string {
	t := p.Type
	switch {
	case t.IsStruct() || t.IsObject():
		if p.Has(decl.KeyNullable) {
			return p.Name + " == null ? NULL : " + p.Name + ".address()"
		}
		return p.Name + ".address()"
	case t.IsBufferPointer():
		switch {
		case p.IsAutoSizeResultOut() && fn.HidesAutoSizeResult():
			return APIBufferVar + ".address() + " + p.Name
		case p.Has(decl.KeyNullable) || (p.Has(decl.KeyOptional) && mode == ModeNormal):
			return "memAddressSafe(" + p.Name + ")"
		}
		return "memAddress(" + p.Name + ")"
	}
	return p.Name
}

// ReturnJavaType returns the untransformed host return type of fn.
func ReturnJavaType(fn *decl.Function) string {
	if fn.ReturnsStructValue() {
		return "void"
	}
	t := fn.Returns.Type
	switch {
	case t.IsVoid():
		return "void"
	case t.IsStruct() || t.IsObject():
		return javaType(t, fn.Returns.Has(decl.KeyStructBuffer))
	case t.IsCharSequence() || t.Mapping() == native.Data:
		return "ByteBuffer"
	}
	return t.Mapping().JavaType()
}

// ReturnNativeType returns the native method return type of fn.
func ReturnNativeType(fn *decl.Function) string {
	if fn.ReturnsStructValue() {
		return "void"
	}
	return fn.Returns.Type.Mapping().NativeMethodType()
}

// ScratchType returns the APIBuffer accessor prefix for elements of a data
// mapping, e.g. "int" for intParam/intValue.
func ScratchType(m *native.Mapping) string {
	if m == native.DataPointer {
		return "pointer"
	}
	if m.PrimitiveName() == "" {
		return "byte"
	}
	return m.PrimitiveName()
}

// PrimitiveJavaType maps a primitive element name to its host type.
func PrimitiveJavaType(primitive string) string {
	if primitive == "pointer" {
		return "long"
	}
	return primitive
}

// ByteShifted scales an element count expression to bytes for mapping m.
func ByteShifted(expr string, m *native.Mapping) string {
	if !m.IsMultiByte() {
		return expr
	}
	return paren(expr) + " << " + m.ByteShift()
}

func paren(expr string) string {
	if strings.ContainsAny(expr, " ?") {
		return "(" + expr + ")"
	}
	return expr
}

// intCast narrows an expression to int when m is wider than 4 bytes.
func intCast(expr string, m *native.Mapping) string {
	if m.Bytes() > 4 {
		return "(int)" + paren(expr)
	}
	return expr
}
