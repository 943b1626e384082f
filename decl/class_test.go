package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/native"
)

func TestFuncCopiesParameters(t *testing.T) {
	c := testClass()
	shared := In(tVoidP, "data", "", Nullable)

	a := c.Func(native.VoidType, "A", "", shared)
	b := c.Func(native.VoidType, "B", "", In(tInt, "x", ""), shared)

	assert.NotSame(t, shared, a.Parameters[0])
	assert.Equal(t, 0, a.Param("data").Index())
	assert.Equal(t, 1, b.Param("data").Index())
	assert.Equal(t, -1, shared.Index())
	assert.Equal(t, "tlA", a.Name)
	assert.Equal(t, "A", a.SimpleName)
	assert.Same(t, a, c.Function("A"))
	assert.Same(t, b, c.Function("tlB"))
	assert.Nil(t, c.Function("C"))
}

func TestFunctionQueries(t *testing.T) {
	static := testClass()
	simple := static.Func(tInt, "Add", "", In(tInt, "a", ""), In(tInt, "b", ""))
	require.NoError(t, simple.Validate())
	assert.True(t, simple.IsSimple())
	assert.True(t, simple.HasCustomJNI())
	assert.False(t, simple.HasUnsafeMethod())

	bound := NewClass("org.lwjgl.egl", "EGL10", WithBinding("egl"))
	query := bound.Func(tVoidP, "Query", "", In(tHandle, "dpy", ""), Out(tIntP, "value", ""))
	require.NoError(t, query.Validate())
	assert.False(t, query.IsSimple())
	assert.False(t, query.HasCustomJNI())
	assert.True(t, query.HasUnsafeMethod())

	virtual := bound.Func(native.VoidType, "Hint", "", In(tInt, "target", ""), In(tInt, "hidden", "", Virtual))
	require.NoError(t, virtual.Validate())
	assert.Len(t, virtual.NativeParams(), 1)

	renamed := bound.Func(native.VoidType, "Flush", "").With(NativeNameOf("eglFlushNative"), Private)
	assert.Equal(t, "eglFlushNative", renamed.NativeName())
	assert.Equal(t, "private", renamed.Access())

	byValue := static.Func(tStruct, "Make", "")
	require.NoError(t, byValue.Validate())
	assert.True(t, byValue.ReturnsStructValue())
}

func TestReturningRejectsParameterModifiers(t *testing.T) {
	fn := testClass().Func(tVoidP, "Map", "").Returning(Optional)
	err := fn.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDeclaration))
	assert.Contains(t, err.Error(), "return value")
}

func TestConstants(t *testing.T) {
	c := NewClass("org.lwjgl.system.libffi", "LibFFI", WithPrefix("FFI_", "ffi_"))
	abi := c.EnumConstant("ABI enumeration.", 1, C("SYSV", ""), C("WIN64", "1"), C("UNIX64", ""))
	types := c.IntConstant("Types.", Hex("TYPE_STRUCT", 13)).WithoutPrefix()

	assert.Equal(t, "1", abi.Constants[0].Value)
	assert.Equal(t, "1", abi.Constants[1].Value)
	assert.Equal(t, "2", abi.Constants[2].Value)
	assert.Equal(t, "FFI_SYSV", c.ConstantName(abi, abi.Constants[0]))
	assert.Equal(t, "TYPE_STRUCT", c.ConstantName(types, types.Constants[0]))
	assert.Equal(t, "0xd", types.Constants[0].Value)
	assert.Equal(t, "int", types.Type.String())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Class("org.lwjgl.egl", "NVStreamSync", WithTemplate("NV_stream_sync"))
	r.Class("org.lwjgl.egl", "ANGLEQuerySurfacePointer")

	c, err := r.Lookup("NV_stream_sync")
	require.NoError(t, err)
	assert.Equal(t, "NVStreamSync", c.ClassName)

	_, err = r.Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Equal(t, []string{"ANGLEQuerySurfacePointer", "NVStreamSync"}, r.Names())
	require.NoError(t, r.Validate())

	r.Class("org.lwjgl.egl", "NVStreamSync")
	err = r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDeclaration))
}
