package transform

import (
	"strconv"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

// StringReturn decodes a returned null-terminated string.
type StringReturn struct{}

func (StringReturn) Declaration(*Context, decl.Element, string) string { return "String" }

func (StringReturn) Call(_ *Context, e decl.Element, original string) string {
	return "memDecode" + e.NativeType().Char().Charset() + "(" + original + ")"
}

func (StringReturn) String() string { return "StringReturn" }

// PrimitiveValueReturn returns the single element written to a hidden out parameter.
type PrimitiveValueReturn struct {
	JavaType  string
	Primitive string
	Param     string
}

// NewPrimitiveValueReturn returns the pointee value of p.
func NewPrimitiveValueReturn(p *decl.Parameter) *PrimitiveValueReturn {
	primitive := ScratchType(p.Type.Mapping())
	return &PrimitiveValueReturn{JavaType: PrimitiveJavaType(primitive), Primitive: primitive, Param: p.Name}
}

func (t *PrimitiveValueReturn) Declaration(*Context, decl.Element, string) string { return t.JavaType }

func (t *PrimitiveValueReturn) Call(*Context, decl.Element, string) string {
	return "\t\treturn " + APIBufferVar + "." + t.Primitive + "Value(" + t.Param + ");"
}

func (t *PrimitiveValueReturn) String() string {
	return "PrimitiveValueReturn(" + t.JavaType + " " + t.Param + ")"
}

// BufferAutoSizeReturn returns a scratch buffer sized by an expression over the native result.
type BufferAutoSizeReturn struct {
	Param  *decl.Parameter
	Length string
}

func (t *BufferAutoSizeReturn) Declaration(*Context, decl.Element, string) string { return "ByteBuffer" }

func (t *BufferAutoSizeReturn) Call(*Context, decl.Element, string) string {
	size := ByteShifted(t.Length, t.Param.Type.Mapping())
	return "\t\treturn memByteBuffer(" + APIBufferVar + ".address() + " + t.Param.Name + ", " + size + ");"
}

func (t *BufferAutoSizeReturn) String() string {
	return "BufferAutoSizeReturn(" + t.Param.Name + ", " + t.Length + ")"
}

// BufferReturn returns a scratch buffer, or the string decoded from it,
// whose length the native function wrote to a hidden length parameter.
type BufferReturn struct {
	Param     *decl.Parameter
	Length    *decl.Parameter // nil returns MaxLength elements
	MaxLength string
	Charset   string
}

func (t *BufferReturn) Declaration(*Context, decl.Element, string) string {
	if t.Charset != "" {
		return "String"
	}
	return "ByteBuffer"
}

func (t *BufferReturn) length() string {
	if t.Length == nil {
		return t.MaxLength
	}
	if t.Length.Type.Mapping() == native.DataPointer {
		return "(int)" + APIBufferVar + ".pointerValue(" + t.Length.Name + ")"
	}
	return APIBufferVar + ".intValue(" + t.Length.Name + ")"
}

func (t *BufferReturn) Call(*Context, decl.Element, string) string {
	if t.Charset != "" {
		return "\t\treturn " + APIBufferVar + ".string" + t.Charset + "(" + t.Param.Name + ", " + t.length() + ");"
	}
	return "\t\treturn " + APIBufferVar + ".buffer(" + t.Param.Name + ", " + t.length() + ");"
}

func (t *BufferReturn) String() string {
	return "BufferReturn(" + t.Param.Name + ", " + t.length() + ")"
}

// BufferReturnNT returns the null-terminated string written to a scratch buffer.
type BufferReturnNT struct {
	Param     *decl.Parameter
	MaxLength string
	Charset   string
}

func (t *BufferReturnNT) Declaration(*Context, decl.Element, string) string { return "String" }

func (t *BufferReturnNT) Call(*Context, decl.Element, string) string {
	bytes := strconv.Itoa(t.Param.Type.ElementBytes())
	return "\t\treturn memDecode" + t.Charset + "(memByteBufferNT" + bytes + "(" +
		APIBufferVar + ".address() + " + t.Param.Name + ", " + t.MaxLength + "));"
}

func (t *BufferReturnNT) String() string {
	return "BufferReturnNT(" + t.Param.Name + ", " + t.MaxLength + ")"
}

// MapPointer lets the caller pass the previously mapped buffer for reuse.
type MapPointer struct {
	Size string
}

func (t *MapPointer) Declaration(_ *Context, _ decl.Element, original string) string { return original }

func (t *MapPointer) Call(_ *Context, _ decl.Element, original string) string {
	return MapOld + " == null ? " + original + " : memSetupBuffer(" + MapOld + ", " + ResultVar + ", " + t.Size + ")"
}

func (t *MapPointer) ExtraParams(*Context) []string { return []string{"ByteBuffer " + MapOld} }

func (t *MapPointer) String() string { return "MapPointer(" + t.Size + ")" }

// MapPointerExplicit maps a returned pointer with an explicit size.
type MapPointerExplicit struct {
	LengthParam string
	AddParam    bool
}

func (t *MapPointerExplicit) Declaration(_ *Context, _ decl.Element, original string) string {
	return original
}

func (t *MapPointerExplicit) Call(*Context, decl.Element, string) string {
	return MapOld + " == null ? memByteBuffer(" + ResultVar + ", (int)" + t.LengthParam + ") : memSetupBuffer(" +
		MapOld + ", " + ResultVar + ", (int)" + t.LengthParam + ")"
}

func (t *MapPointerExplicit) ExtraParams(*Context) []string {
	if t.AddParam {
		return []string{"long " + t.LengthParam, "ByteBuffer " + MapOld}
	}
	return []string{"ByteBuffer " + MapOld}
}

func (t *MapPointerExplicit) String() string {
	if t.AddParam {
		return "MapPointerExplicit(long " + t.LengthParam + ")"
	}
	return "MapPointerExplicit(" + t.LengthParam + ")"
}
