package transform

import (
	"strconv"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

func scratchAddress(name string) string {
	return APIBufferVar + ".address() + " + name
}

func asParam(e decl.Element) *decl.Parameter {
	p, _ := e.(*decl.Parameter)
	return p
}

// ElementCount returns the element count expression of buffer in ctx: the
// count of its active transform or its remaining elements.
func ElementCount(ctx *Context, buffer *decl.Parameter) string {
	if c, ok := ctx.Transform(buffer).(Counter); ok {
		return c.Count(ctx, buffer)
	}
	return buffer.Name + ".remaining()"
}

// sizeCast narrows expr to the host type of an AutoSize parameter.
func sizeCast(p *decl.Parameter, expr string) string {
	switch p.Type.Mapping().Bytes() {
	case 1:
		return "(byte)" + paren(expr)
	case 2:
		return "(short)" + paren(expr)
	}
	return expr
}

// AutoSize computes a size argument from the element count of a buffer.
type AutoSize struct {
	Buffer      *decl.Parameter
	ApplyTo     decl.ApplyTo
	ByteShift   string // shift of a typed view replacing an untyped buffer
	ApplyFactor bool
}

// NewAutoSize sizes a parameter by buffer using the modifier's factor.
func NewAutoSize(buffer *decl.Parameter, applyTo decl.ApplyTo) *AutoSize {
	return &AutoSize{Buffer: buffer, ApplyTo: applyTo, ApplyFactor: true}
}

func (t *AutoSize) applies(ctx *Context) bool {
	if ctx.Mode == ModeNormal {
		return t.ApplyTo.Normal()
	}
	return t.ApplyTo.Alternative()
}

func (t *AutoSize) Declaration(ctx *Context, e decl.Element, original string) string {
	if !t.applies(ctx) {
		return original
	}
	return ""
}

func (t *AutoSize) Call(ctx *Context, e decl.Element, original string) string {
	if !t.applies(ctx) {
		return original
	}
	p := asParam(e)
	expr := ElementCount(ctx, t.Buffer)
	switch {
	case t.ByteShift != "" && t.ByteShift != "0":
		expr = expr + " << " + t.ByteShift
	case ByteView(ctx, t.Buffer) && t.Buffer.Type.IsMultiByte():
		expr = expr + " >> " + t.Buffer.Type.ByteShift()
	}
	if t.ApplyFactor {
		if f := p.AutoSize().Factor; f != nil {
			expr = paren(expr) + " " + f.Expression()
		}
	}
	if t.Buffer.Has(decl.KeyNullable) {
		expr = t.Buffer.Name + " == null ? 0 : " + expr
	}
	return sizeCast(p, expr)
}

func (t *AutoSize) String() string {
	s := "AutoSize(" + t.Buffer.Name
	if t.ByteShift != "" {
		s += " << " + t.ByteShift
	}
	if !t.ApplyFactor {
		s += ", no factor"
	}
	return s + ")"
}

// AutoSizeCharSequence sizes a parameter by the encoded length of a string argument.
type AutoSizeCharSequence struct {
	Buffer *decl.Parameter
}

func (t *AutoSizeCharSequence) Declaration(*Context, decl.Element, string) string { return "" }

func (t *AutoSizeCharSequence) Call(ctx *Context, e decl.Element, _ string) string {
	p := asParam(e)
	expr := t.Buffer.Name + "EncodedLen"
	if f := p.AutoSize().Factor; f != nil {
		expr = expr + " " + f.Expression()
	}
	return sizeCast(p, expr)
}

func (t *AutoSizeCharSequence) String() string {
	return "AutoSizeCharSequence(" + t.Buffer.Name + ")"
}

// Expression replaces a parameter with a fixed expression. The declaration
// of a kept parameter comes from the transform it replaced.
type Expression struct {
	Value     string
	KeepParam bool
	Inner     Transform
}

func (t *Expression) Declaration(ctx *Context, e decl.Element, original string) string {
	if !t.KeepParam {
		return ""
	}
	if t.Inner != nil {
		return t.Inner.Declaration(ctx, e, original)
	}
	return original
}

func (t *Expression) Call(*Context, decl.Element, string) string { return t.Value }

func (t *Expression) SkipsCheck() bool { return !t.KeepParam }

func (t *Expression) String() string { return "Expression(" + t.Value + ")" }

// Expression1 replaces a size parameter with 1.
var Expression1 = &Expression{Value: "1"}

// ExpressionLocal hides a parameter and initialises it from an expression
// in a local variable of the same name.
type ExpressionLocal struct {
	Value string
}

func (t *ExpressionLocal) Declaration(*Context, decl.Element, string) string { return "" }

func (t *ExpressionLocal) Call(_ *Context, e decl.Element, _ string) string { return e.ElementName() }

func (t *ExpressionLocal) Inject(_ *Context, e decl.Element, code *decl.Code) *decl.Code {
	p := asParam(e)
	return code.Append([]decl.Statement{decl.Stmt("\t\t" + JavaParam(p) + " = " + t.Value + ";")}, nil, nil, nil)
}

func (t *ExpressionLocal) String() string { return "ExpressionLocal(" + t.Value + ")" }

// CharSequence accepts a host string and encodes it into scratch memory.
type CharSequence struct {
	NullTerminated bool
	WithLength     bool
}

func (t *CharSequence) Declaration(_ *Context, e decl.Element, _ string) string {
	return "CharSequence " + e.ElementName()
}

func (t *CharSequence) Call(_ *Context, e decl.Element, _ string) string {
	p := asParam(e)
	addr := scratchAddress(p.Name + "Encoded")
	if p.Has(decl.KeyNullable) {
		return p.Name + " == null ? NULL : " + addr
	}
	return addr
}

func (t *CharSequence) Scratch(_ *Context, e decl.Element) []string {
	p := asParam(e)
	lines := []string{"int " + p.Name + "Encoded = " + APIBufferVar + ".stringParam" + p.Type.Char().Charset() +
		"(" + p.Name + ", " + strconv.FormatBool(t.NullTerminated) + ");"}
	if t.WithLength {
		lines = append(lines, "int "+p.Name+"EncodedLen = "+APIBufferVar+".getOffset() - "+p.Name+"Encoded;")
	}
	return lines
}

func (t *CharSequence) SkipsCheck() bool { return true }

func (t *CharSequence) String() string {
	if t.NullTerminated {
		return "CharSequence(null-terminated)"
	}
	return "CharSequence"
}

// PrimitiveValue hides an out parameter and backs it with one scratch element.
type PrimitiveValue struct {
	Primitive string
}

// NewPrimitiveValue backs p with a scratch element of its pointee type.
func NewPrimitiveValue(p *decl.Parameter) *PrimitiveValue {
	return &PrimitiveValue{Primitive: ScratchType(p.Type.Mapping())}
}

func (t *PrimitiveValue) Declaration(*Context, decl.Element, string) string { return "" }

func (t *PrimitiveValue) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (t *PrimitiveValue) Scratch(_ *Context, e decl.Element) []string {
	return []string{"int " + e.ElementName() + " = " + APIBufferVar + "." + t.Primitive + "Param();"}
}

func (t *PrimitiveValue) SkipsCheck() bool { return true }

func (t *PrimitiveValue) Count(*Context, decl.Element) string { return "1" }

func (t *PrimitiveValue) String() string { return "PrimitiveValue(" + t.Primitive + ")" }

// BufferReplaceReturn hides a buffer that becomes the returned buffer,
// backing it with scratch memory of its checked size.
type BufferReplaceReturn struct{}

func (BufferReplaceReturn) Declaration(*Context, decl.Element, string) string { return "" }

func (BufferReplaceReturn) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (BufferReplaceReturn) Scratch(_ *Context, e decl.Element) []string {
	p := asParam(e)
	size := ByteShifted(p.Check().Expression, p.Type.Mapping())
	return []string{"int " + p.Name + " = " + APIBufferVar + ".bufferParam(" + size + ");"}
}

func (BufferReplaceReturn) SkipsCheck() bool { return true }

func (BufferReplaceReturn) String() string { return "BufferReplaceReturn" }

// BufferLength hides the length out parameter of a returned buffer.
type BufferLength struct{}

func (BufferLength) Declaration(*Context, decl.Element, string) string { return "" }

func (BufferLength) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (BufferLength) Scratch(_ *Context, e decl.Element) []string {
	p := asParam(e)
	return []string{"int " + p.Name + " = " + APIBufferVar + "." + ScratchType(p.Type.Mapping()) + "Param();"}
}

func (BufferLength) SkipsCheck() bool { return true }

func (BufferLength) String() string { return "BufferLength" }

// BufferAutoSize hides a returned buffer and allocates it in scratch memory
// sized by its max length parameter.
type BufferAutoSize struct {
	MaxLength *decl.Parameter
}

func (t *BufferAutoSize) Declaration(*Context, decl.Element, string) string { return "" }

func (t *BufferAutoSize) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (t *BufferAutoSize) Scratch(_ *Context, e decl.Element) []string {
	p := asParam(e)
	size := intCast(t.MaxLength.Name, t.MaxLength.Type.Mapping())
	size = ByteShifted(size, p.Type.Mapping())
	return []string{"int " + p.Name + " = " + APIBufferVar + ".bufferParam(" + size + ");"}
}

func (t *BufferAutoSize) SkipsCheck() bool { return true }

func (t *BufferAutoSize) String() string { return "BufferAutoSize(" + t.MaxLength.Name + ")" }

// AutoTypeTarget renders an untyped buffer with a typed view.
type AutoTypeTarget struct {
	Mapping *native.Mapping
}

func (t *AutoTypeTarget) Declaration(_ *Context, e decl.Element, _ string) string {
	return t.Mapping.JavaType() + " " + e.ElementName()
}

func (t *AutoTypeTarget) Call(_ *Context, e decl.Element, _ string) string {
	if e.Has(decl.KeyNullable) {
		return "memAddressSafe(" + e.ElementName() + ")"
	}
	return "memAddress(" + e.ElementName() + ")"
}

func (t *AutoTypeTarget) String() string { return "AutoTypeTarget(" + t.Mapping.JavaType() + ")" }

// AutoTypeParam hides a type enum parameter and passes a constant.
type AutoTypeParam struct {
	Expr string
}

func (t *AutoTypeParam) Declaration(*Context, decl.Element, string) string { return "" }

func (t *AutoTypeParam) Call(*Context, decl.Element, string) string { return t.Expr }

func (t *AutoTypeParam) String() string { return "AutoTypeParam(" + t.Expr + ")" }

// VectorValue replaces a buffer with Size scalar parameters.
type VectorValue struct {
	ParamType string
	Primitive string
	NewName   string
	Size      int
}

func (t *VectorValue) names() []string {
	if t.Size == 1 {
		return []string{t.NewName}
	}
	names := make([]string, t.Size)
	for i := range names {
		names[i] = t.NewName + strconv.Itoa(i)
	}
	return names
}

func (t *VectorValue) Declaration(*Context, decl.Element, string) string {
	names := t.names()
	for i, n := range names {
		names[i] = t.ParamType + " " + n
	}
	return strings.Join(names, ", ")
}

func (t *VectorValue) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (t *VectorValue) Scratch(_ *Context, e decl.Element) []string {
	names := t.names()
	lines := make([]string, len(names))
	for i, n := range names {
		call := APIBufferVar + "." + ScratchType(native.DataMappingOf(primitiveMapping(t.Primitive))) + "Param(" + n + ");"
		if i == 0 {
			call = "int " + e.ElementName() + " = " + call
		}
		lines[i] = call
	}
	return lines
}

func (t *VectorValue) SkipsCheck() bool { return true }

func (t *VectorValue) Count(*Context, decl.Element) string { return strconv.Itoa(t.Size) }

func (t *VectorValue) String() string {
	return "VectorValue(" + t.Primitive + " x" + strconv.Itoa(t.Size) + ")"
}

var primitiveMappings = map[string]*native.Mapping{
	"boolean": native.Boolean,
	"byte":    native.Byte,
	"short":   native.Short,
	"int":     native.Int,
	"long":    native.Long,
	"pointer": native.Pointer,
	"float":   native.Float,
	"double":  native.Double,
}

func primitiveMapping(name string) *native.Mapping {
	if m, ok := primitiveMappings[name]; ok {
		return m
	}
	return native.Byte
}

// SingleValue replaces a buffer with one value of its element type.
type SingleValue struct {
	ParamType string
	Primitive string
	NewName   string
	Value     string // expression stored into scratch memory
}

// NewSingleValue builds the single value transform of a pointer parameter.
func NewSingleValue(p *decl.Parameter) *SingleValue {
	sv := p.SingleValue()
	primitive := p.Type.Mapping().PrimitiveName()
	t := &SingleValue{Primitive: primitive, NewName: sv.NewName, Value: sv.NewName}
	elem := p.Type.Elem()
	switch {
	case elem == nil:
		t.ParamType = PrimitiveJavaType(primitive)
	case elem.IsCharSequence():
		t.ParamType = "CharSequence"
		t.Value = "memAddress(memEncode" + elem.Char().Charset() + "(" + sv.NewName + "))"
	case elem.IsObject() || elem.IsStruct():
		t.ParamType = elem.ClassName()
		t.Value = sv.NewName + ".address()"
	case elem.IsPointer():
		t.ParamType = "long"
	default:
		t.ParamType = elem.Mapping().JavaType()
	}
	return t
}

func (t *SingleValue) Declaration(*Context, decl.Element, string) string {
	return t.ParamType + " " + t.NewName
}

func (t *SingleValue) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (t *SingleValue) Scratch(_ *Context, e decl.Element) []string {
	return []string{"int " + e.ElementName() + " = " + APIBufferVar + "." +
		ScratchType(native.DataMappingOf(primitiveMapping(t.Primitive))) + "Param(" + t.Value + ");"}
}

func (t *SingleValue) SkipsCheck() bool { return true }

func (t *SingleValue) Count(*Context, decl.Element) string { return "1" }

func (t *SingleValue) String() string { return "SingleValue(" + t.ParamType + " " + t.NewName + ")" }

// PointerArrayKind selects the host shape of a pointer array parameter.
type PointerArrayKind int

const (
	PointerArrayArray PointerArrayKind = iota
	PointerArrayVararg
	PointerArraySingle
)

// PointerArray builds a pointer array in scratch memory from host buffers or strings.
type PointerArray struct {
	Kind PointerArrayKind
}

func pointerArrayOf(e decl.Element) (*decl.Parameter, *decl.PointerArray) {
	p := asParam(e)
	return p, p.PointerArray()
}

func pointerArrayElem(pa *decl.PointerArray) (javaType, encoding string) {
	if pa.ElementType != nil && pa.ElementType.IsCharSequence() {
		return "CharSequence", pa.ElementType.Char().Charset()
	}
	return "ByteBuffer", ""
}

func (t *PointerArray) Declaration(_ *Context, e decl.Element, _ string) string {
	p, pa := pointerArrayOf(e)
	elem, _ := pointerArrayElem(pa)
	switch t.Kind {
	case PointerArrayVararg:
		return elem + "... " + p.Name
	case PointerArraySingle:
		return elem + " " + pa.SingleName
	}
	return elem + "[] " + p.Name
}

func (t *PointerArray) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName() + PointerPostfix)
}

func (t *PointerArray) source(e decl.Element) string {
	p, pa := pointerArrayOf(e)
	if t.Kind == PointerArraySingle {
		return pa.SingleName
	}
	return p.Name
}

func (t *PointerArray) Scratch(_ *Context, e decl.Element) []string {
	_, pa := pointerArrayOf(e)
	_, encoding := pointerArrayElem(pa)
	return []string{"int " + e.ElementName() + PointerPostfix + " = " + APIBufferVar +
		".pointerArrayParam" + encoding + "(" + t.source(e) + ");"}
}

func (t *PointerArray) Inject(ctx *Context, e decl.Element, code *decl.Code) *decl.Code {
	_, pa := pointerArrayOf(e)
	if _, encoding := pointerArrayElem(pa); encoding == "" {
		return code
	}
	free := decl.Stmt("\t\t\t" + APIBufferVar + ".pointerArrayFree(" + e.ElementName() + PointerPostfix + ", " + t.Count(ctx, e) + ");")
	return code.Append(nil, nil, nil, []decl.Statement{free})
}

func (t *PointerArray) SkipsCheck() bool { return true }

func (t *PointerArray) Count(_ *Context, e decl.Element) string {
	if t.Kind == PointerArraySingle {
		return "1"
	}
	return e.ElementName() + ".length"
}

func (t *PointerArray) String() string {
	return [...]string{"PointerArray(array)", "PointerArray(vararg)", "PointerArray(single)"}[t.Kind]
}

// PointerArrayLengths hides the lengths parameter of a pointer array and
// fills it from the host elements.
type PointerArrayLengths struct {
	Array *decl.Parameter
	Multi bool
}

func (t *PointerArrayLengths) Declaration(*Context, decl.Element, string) string { return "" }

func (t *PointerArrayLengths) Call(_ *Context, e decl.Element, _ string) string {
	return scratchAddress(e.ElementName())
}

func (t *PointerArrayLengths) Scratch(_ *Context, e decl.Element) []string {
	p := asParam(e)
	pa := t.Array.PointerArray()
	elem, encoding := pointerArrayElem(pa)
	var value string
	switch {
	case t.Multi:
		return []string{"int " + p.Name + " = " + APIBufferVar + ".pointerArrayLengthsParam" + encoding + "(" + t.Array.Name + ");"}
	case elem == "CharSequence":
		value = "memEncodedLength" + encoding + "(" + pa.SingleName + ")"
	default:
		value = pa.SingleName + ".remaining()"
	}
	return []string{"int " + p.Name + " = " + APIBufferVar + "." + ScratchType(p.Type.Mapping()) + "Param(" + value + ");"}
}

func (t *PointerArrayLengths) SkipsCheck() bool { return true }

func (t *PointerArrayLengths) String() string {
	if t.Multi {
		return "PointerArrayLengths(" + t.Array.Name + ")"
	}
	return "PointerArrayLengths(" + t.Array.Name + ", single)"
}
