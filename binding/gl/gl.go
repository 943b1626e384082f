// Package gl is the OpenGL binding: function pointers are loaded per
// context, deprecated functions are skipped in forward compatible
// contexts, and pointer parameters bound to buffer objects get an offset
// overload.
package gl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/transform"
)

// Name is the binding name used by OpenGL class declarations.
const Name = "GL"

const (
	capabilitiesClass = "GLCapabilities"
	glPackage         = "org.lwjgl.opengl"
)

// Modifier keys
const (
	KeyBufferObject decl.Key = "BufferObject"
	KeyDeprecated   decl.Key = "DeprecatedGL"
)

// BufferObject marks a pointer parameter that is interpreted as an offset
// when a buffer object is bound to Binding.
type BufferObject struct {
	Binding string
}

func (*BufferObject) Key() decl.Key { return KeyBufferObject }
func (*BufferObject) Targets() decl.Target { return decl.TargetParameter }

// Buffer object bindings
var (
	ArrayBuffer        = &BufferObject{Binding: "GL15.GL_ARRAY_BUFFER_BINDING"}
	ElementArrayBuffer = &BufferObject{Binding: "GL15.GL_ELEMENT_ARRAY_BUFFER_BINDING"}
	PixelPackBuffer    = &BufferObject{Binding: "GL21.GL_PIXEL_PACK_BUFFER_BINDING"}
	PixelUnpackBuffer  = &BufferObject{Binding: "GL21.GL_PIXEL_UNPACK_BUFFER_BINDING"}
	DrawIndirectBuffer = &BufferObject{Binding: "GL40.GL_DRAW_INDIRECT_BUFFER_BINDING"}
	DispatchIndirect   = &BufferObject{Binding: "GL43.GL_DISPATCH_INDIRECT_BUFFER_BINDING"}
	QueryBuffer        = &BufferObject{Binding: "GL44.GL_QUERY_BUFFER_BINDING"}
)

type deprecated struct{}

func (deprecated) Key() decl.Key { return KeyDeprecated }
func (deprecated) Targets() decl.Target { return decl.TargetFunction }

func (deprecated) Validate(f *decl.Function, _ *decl.Parameter) string {
	if f.Class.Postfix != "" {
		return "The deprecated modifier can only be applied on core functionality."
	}
	return ""
}

// Deprecated marks a core function whose pointer is not loaded in a forward
// compatible context.
var Deprecated decl.Modifier = deprecated{}

// BufferOffset replaces a buffer with an offset into the bound buffer object.
type BufferOffset struct{}

func (BufferOffset) Declaration(_ *transform.Context, e decl.Element, _ string) string {
	return "long " + e.ElementName() + "Offset"
}

func (BufferOffset) Call(_ *transform.Context, e decl.Element, _ string) string {
	return e.ElementName() + "Offset"
}

func (BufferOffset) SkipsCheck() bool { return true }

func (BufferOffset) String() string { return "BufferOffset" }

// Binding is the OpenGL function pointer binding.
type Binding struct {
	*binding.Provider
}

// New creates the OpenGL binding.
func New() *Binding {
	return &Binding{Provider: binding.NewProvider(Name, "GL", capabilitiesClass, glPackage)}
}

func init() {
	binding.Register(New())
}

func bufferObject(p *decl.Parameter) *BufferObject {
	bo, _ := p.Modifier(KeyBufferObject).(*BufferObject)
	return bo
}

// ShouldCheckFunctionAddress is true for deprecated functions, which may
// be absent from forward compatible contexts.
func (b *Binding) ShouldCheckFunctionAddress(fn *decl.Function) bool {
	return fn.Has(KeyDeprecated) || fn.Has(decl.KeyIgnoreMissing)
}

// ParameterChecks verifies the buffer object state matching the overload.
func (b *Binding) ParameterChecks(ctx *transform.Context, p *decl.Parameter) []string {
	bo := bufferObject(p)
	if bo == nil {
		return nil
	}
	isPointer := p.Type.Mapping() == native.Pointer
	switch {
	case ctx.Mode == transform.ModeNormal:
		return []string{fmt.Sprintf("GLChecks.ensureBufferObject(%s, %t);", bo.Binding, isPointer)}
	case !isPointer:
		_, offset := ctx.Transform(p).(BufferOffset)
		return []string{fmt.Sprintf("GLChecks.ensureBufferObject(%s, %t);", bo.Binding, offset)}
	}
	return nil
}

// Alternatives emits the buffer object offset overload.
func (b *Binding) Alternatives(fn *decl.Function, set *transform.Set, emit transform.EmitFunc) error {
	var params []*decl.Parameter
	for _, p := range fn.ParamsWith(KeyBufferObject) {
		if p.Type.Mapping() != native.Pointer {
			params = append(params, p)
		}
	}
	if len(params) == 0 {
		return nil
	}
	for _, p := range params {
		set.Put(p, BufferOffset{})
	}
	err := emit(fn.Name, "Buffer object offset version of:")
	for _, p := range params {
		set.Remove(p)
	}
	return err
}

// FunctionAddressCall checks the forward compatible flag for deprecated functions.
func (b *Binding) FunctionAddressCall(fn *decl.Function) string {
	if fn.Has(KeyDeprecated) {
		return fmt.Sprintf("GL.getFunctionAddress(provider, %q, fc)", fn.NativeName())
	}
	return b.Provider.FunctionAddressCall(fn)
}

func hasDeprecated(c *decl.NativeClass) bool {
	for _, fn := range c.Functions {
		if fn.Has(KeyDeprecated) {
			return true
		}
	}
	return false
}

// CapName returns the capability flag name of a class: "OpenGL11" for
// core classes, the extension template name otherwise.
func CapName(c *decl.NativeClass) string {
	prefix := strings.TrimSuffix(c.Prefix, "_")
	if prefix == "" {
		prefix = "GL"
	}
	if !strings.HasPrefix(c.TemplateName, prefix) {
		return prefix + "_" + c.TemplateName
	}
	if prefix == "GL" {
		return "OpenGL" + c.TemplateName[len(prefix):]
	}
	return c.TemplateName
}

// Members renders the pointer fields, constructor and getters of c.
func (b *Binding) Members(c *decl.NativeClass) string {
	fc := hasDeprecated(c)
	var sb strings.Builder
	binding.WriteFields(&sb, c)

	ctorParams := ""
	if fc {
		ctorParams = ", boolean fc"
	}
	binding.WriteConstructor(&sb, c, ctorParams, b.FunctionAddressCall)

	sb.WriteString("\t// --- [ Function Addresses ] ---\n\n")
	fmt.Fprintf(&sb, "\t/** Returns the {@link %s} instance of the current context. */\n", c.ClassName)
	fmt.Fprintf(&sb, "\tpublic static %s getInstance() {\n", c.ClassName)
	sb.WriteString("\t\treturn getInstance(GL.getCapabilities());\n\t}\n\n")
	fmt.Fprintf(&sb, "\t/** Returns the {@link %s} instance of the specified {@link %s}. */\n", c.ClassName, capabilitiesClass)
	fmt.Fprintf(&sb, "\tpublic static %s getInstance(%s caps) {\n", c.ClassName, capabilitiesClass)
	fmt.Fprintf(&sb, "\t\treturn checkFunctionality(caps.__%s);\n\t}\n\n", c.ClassName)

	fmt.Fprintf(&sb, "\tstatic %s create(java.util.Set<String> ext, FunctionProvider provider%s) {\n", c.ClassName, ctorParams)
	fmt.Fprintf(&sb, "\t\tif ( !ext.contains(%q) ) return null;\n\n", CapName(c))
	args := "provider"
	if fc {
		args += ", fc"
	}
	fmt.Fprintf(&sb, "\t\t%s funcs = new %s(%s);\n\n", c.ClassName, c.ClassName, args)
	sb.WriteString("\t\tboolean supported = ")
	if fc {
		sb.WriteString("(fc || checkFunctions(")
		sb.WriteString(binding.PointerList(c, func(fn *decl.Function) bool { return fn.Has(KeyDeprecated) }))
		sb.WriteString(")) && ")
	}
	sb.WriteString("checkFunctions(")
	sb.WriteString(binding.PointerList(c, func(fn *decl.Function) bool {
		return !fn.Has(KeyDeprecated) && !fn.Has(decl.KeyIgnoreMissing)
	}))
	sb.WriteString(");\n\n")
	fmt.Fprintf(&sb, "\t\treturn GL.checkExtension(%q, funcs, supported);\n\t}\n\n", CapName(c))
	return sb.String()
}

// Capabilities renders GLCapabilities: core classes first, then extensions
// by template name.
func (b *Binding) Capabilities(classes []*decl.NativeClass) string {
	sorted := append([]*decl.NativeClass(nil), classes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := isCore(sorted[i]), isCore(sorted[j])
		if ci != cj {
			return ci
		}
		return strings.ToLower(sorted[i].TemplateName) < strings.ToLower(sorted[j].TemplateName)
	})
	return binding.RenderCapabilities(glPackage, capabilitiesClass, "OpenGL", sorted, hasDeprecated, CapName)
}

func isCore(c *decl.NativeClass) bool { return strings.HasPrefix(c.TemplateName, "GL") }
