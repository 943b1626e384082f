package gl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/transform"
)

var (
	tInt   = native.Integer("GLint", native.Int, false)
	tEnum  = native.Integer("GLenum", native.Int, true)
	tVoidP = native.Untyped("void")
)

func gl11() *decl.NativeClass {
	c := decl.NewClass("org.lwjgl.opengl", "GL11", decl.WithPrefix("GL_", "gl"), decl.WithBinding(Name))
	c.Func(native.VoidType, "ReadPixels", "",
		decl.In(tInt, "x", ""),
		decl.Out(tVoidP, "pixels", "", PixelPackBuffer),
	)
	c.Func(native.VoidType, "Begin", "", decl.In(tEnum, "mode", "")).With(Deprecated)
	return c
}

func TestRegistered(t *testing.T) {
	b, err := binding.Lookup(Name)
	require.NoError(t, err)
	assert.IsType(t, &Binding{}, b)
}

func TestBufferOffsetAlternative(t *testing.T) {
	fn := gl11().Function("ReadPixels")
	require.NoError(t, fn.Validate())
	b := New()

	out, err := transform.Resolve(fn, b)
	require.NoError(t, err)
	require.Len(t, out, 2)

	base, offset := out[0], out[1]
	assert.Equal(t, "Buffer object offset version of:", offset.Description)
	assert.Equal(t, []string{"int x", "long pixelsOffset"}, transform.Signature(offset.Context(fn)))
	assert.True(t, transform.SkipsCheck(offset.Set.Get(fn.Param("pixels"))))

	pixels := fn.Param("pixels")
	assert.Equal(t, []string{"GLChecks.ensureBufferObject(GL21.GL_PIXEL_PACK_BUFFER_BINDING, false);"},
		b.ParameterChecks(base.Context(fn), pixels))
	assert.Equal(t, []string{"GLChecks.ensureBufferObject(GL21.GL_PIXEL_PACK_BUFFER_BINDING, true);"},
		b.ParameterChecks(offset.Context(fn), pixels))
	assert.Nil(t, b.ParameterChecks(base.Context(fn), fn.Param("x")))
}

func TestDeprecated(t *testing.T) {
	c := gl11()
	b := New()
	begin := c.Function("Begin")
	require.NoError(t, begin.Validate())

	assert.True(t, b.ShouldCheckFunctionAddress(begin))
	assert.False(t, b.ShouldCheckFunctionAddress(c.Function("ReadPixels")))
	assert.Equal(t, `GL.getFunctionAddress(provider, "glBegin", fc)`, b.FunctionAddressCall(begin))
	assert.Equal(t, `provider.getFunctionAddress("glReadPixels")`, b.FunctionAddressCall(c.Function("ReadPixels")))

	ext := decl.NewClass("org.lwjgl.opengl", "ARBFoo", decl.WithPrefix("GL_", "gl"), decl.WithPostfix("ARB"), decl.WithBinding(Name))
	err := ext.Func(native.VoidType, "FooARB", "").With(Deprecated).Validate()
	require.Error(t, err)
	assert.True(t, errors.IsDeclarationError(err))
	assert.Contains(t, err.Error(), "The deprecated modifier can only be applied on core functionality.")
}

func TestMembers(t *testing.T) {
	out := New().Members(gl11())

	assert.Contains(t, out, "\tpublic GL11(FunctionProvider provider, boolean fc) {\n")
	assert.Contains(t, out, "\t\tBegin = GL.getFunctionAddress(provider, \"glBegin\", fc);\n")
	assert.Contains(t, out, "boolean supported = (fc || checkFunctions(funcs.Begin)) && checkFunctions(funcs.ReadPixels);")
	assert.Contains(t, out, "if ( !ext.contains(\"OpenGL11\") ) return null;")
	assert.Contains(t, out, "return checkFunctionality(caps.__GL11);")
}

func TestCapName(t *testing.T) {
	tests := []struct {
		template string
		prefix   string
		want     string
	}{
		{template: "GL11", prefix: "GL_", want: "OpenGL11"},
		{template: "ARB_vertex_buffer_object", prefix: "GL_", want: "GL_ARB_vertex_buffer_object"},
		{template: "WGL_ARB_pixel_format", prefix: "WGL_", want: "WGL_ARB_pixel_format"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c := decl.NewClass("org.lwjgl.opengl", "X", decl.WithTemplate(tt.template), decl.WithPrefix(tt.prefix, "gl"))
			assert.Equal(t, tt.want, CapName(c))
		})
	}
}

func TestCapabilitiesOrder(t *testing.T) {
	ext := decl.NewClass("org.lwjgl.opengl", "ARBFoo", decl.WithTemplate("ARB_foo"), decl.WithPrefix("GL_", "gl"))
	out := New().Capabilities([]*decl.NativeClass{ext, gl11()})

	assert.Contains(t, out, "GLCapabilities(FunctionProvider provider, Set<String> ext, boolean fc) {")
	assert.Less(t, strings.Index(out, "public final boolean OpenGL11;"), strings.Index(out, "public final boolean GL_ARB_foo;"))
	assert.Contains(t, out, "create(ext, provider, fc)) != null;")
}
