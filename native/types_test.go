package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testInt    = Integer("GLint", Int, false)
	testUint   = Integer("GLuint", Int, true)
	testFloat  = Primitive("GLfloat", Float)
	testSize   = Integer("size_t", Pointer, true)
	testHandle = Opaque("EGLDisplay")
	testStruct = Struct("ffi_cif", "FFICIF")
)

func TestPointerTo(t *testing.T) {
	tests := []struct {
		name      string
		base      *Type
		wantName  string
		wantMap   *Mapping
		wantKind  Kind
		wantBytes int
	}{
		{"integer", testInt, "GLint *", DataInt, KindPointer, 4},
		{"unsigned", testUint, "GLuint *", DataInt, KindPointer, 4},
		{"float", testFloat, "GLfloat *", DataFloat, KindPointer, 4},
		{"size", testSize, "size_t *", DataPointer, KindPointer, 8},
		{"void", VoidType, "void *", Data, KindPointer, 1},
		{"opaque", testHandle, "EGLDisplay *", DataPointer, KindPointer, 8},
		{"struct", testStruct, "ffi_cif *", Data, KindStruct, 1},
		{"pointer to pointer", PointerTo(testInt), "GLint **", DataPointer, KindPointer, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointerTo(tt.base)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Same(t, tt.wantMap, p.Mapping())
			assert.Equal(t, tt.wantKind, p.Kind())
			assert.True(t, p.IsPointer())
			assert.True(t, p.IsBufferPointer())
			assert.Equal(t, tt.wantBytes, p.ElementBytes())
		})
	}
}

func TestBufferPointerQueries(t *testing.T) {
	assert.False(t, testHandle.IsBufferPointer(), "opaque handles are not buffers")
	assert.True(t, testHandle.IsPointer())
	assert.True(t, testHandle.IsOpaque())
	assert.Equal(t, 0, testHandle.ElementBytes())

	assert.False(t, testStruct.IsBufferPointer(), "struct values are not buffers")
	assert.True(t, testStruct.IsStructValue())
	assert.False(t, PointerTo(testStruct).IsStructValue())

	assert.False(t, testInt.IsPointer())
	assert.Equal(t, 0, testInt.ElementBytes())

	obj := Callback("ffi_closure_fun", "FFIClosureFun")
	assert.True(t, obj.IsObject())
	assert.False(t, obj.IsBufferPointer())
}

func TestMultiByte(t *testing.T) {
	assert.True(t, PointerTo(testInt).IsMultiByte())
	assert.True(t, PointerTo(testSize).IsMultiByte())
	assert.False(t, Untyped("void").IsMultiByte())
	assert.False(t, PointerTo(Integer("GLbyte", Byte, false)).IsMultiByte())
	assert.Equal(t, "2", PointerTo(testInt).ByteShift())
	assert.Equal(t, "POINTER_SHIFT", PointerTo(testSize).ByteShift())
}

func TestCharSequence(t *testing.T) {
	utf8 := CharSequence("GLchar", UTF8)
	utf16 := CharSequence("ALchar", UTF16)

	assert.True(t, utf8.IsCharSequence())
	assert.True(t, utf8.NullTerminated())
	assert.Equal(t, "GLchar *", utf8.Name())
	assert.Equal(t, 1, utf8.ElementBytes())
	assert.Equal(t, 2, utf16.ElementBytes())
	assert.Same(t, DataByte, utf16.Mapping())
	assert.False(t, NotTerminated(utf8).NullTerminated())
	assert.True(t, utf8.NullTerminated(), "NotTerminated must copy")
}

func TestConstAndTypedef(t *testing.T) {
	c := Const(PointerTo(testInt))
	assert.Equal(t, "const GLint *", c.Declaration())
	assert.Equal(t, "GLint *", c.Name())
	assert.True(t, c.IsConst())

	td := Typedef(testInt, "EGLint")
	assert.Equal(t, "EGLint", td.Name())
	assert.Same(t, Int, td.Mapping())
	assert.Equal(t, "GLint", testInt.Name())
}

func TestDataMappingOf(t *testing.T) {
	assert.Same(t, DataDouble, DataMappingOf(Double))
	assert.Same(t, DataBoolean, DataMappingOf(Boolean))
	assert.Same(t, Data, DataMappingOf(Void))
	assert.True(t, DataInt.IsPointerSize())
	assert.True(t, DataPointer.IsPointerSize())
	assert.False(t, DataShort.IsPointerSize())
	assert.Equal(t, "float", DataFloat.PrimitiveName())
}
