package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/native"
)

var (
	tInt    = native.Integer("GLint", native.Int, false)
	tSizei  = native.Integer("GLsizei", native.Int, false)
	tEnum   = native.Integer("GLenum", native.Int, true)
	tVoidP  = native.Untyped("void")
	tIntP   = native.PointerTo(tInt)
	tHandle = native.Opaque("TLhandle")
	tUTF8   = native.CharSequence("GLchar", native.UTF8)
	tALuint = native.Integer("ALuint", native.Int, true)
)

func staticClass() *decl.NativeClass {
	return decl.NewClass("org.lwjgl.test", "TestLib", decl.WithPrefix("TL_", "tl"), decl.WithPostfix("EXT"))
}

func render(t *testing.T, c *decl.NativeClass, opts emit.Options) string {
	t.Helper()
	require.NoError(t, c.Validate())
	b, err := binding.For(c)
	require.NoError(t, err)
	u, err := emit.NewUnit(c, b, opts)
	require.NoError(t, err)
	out, err := GenerateClass(u)
	require.NoError(t, err)
	return out
}

func TestGenerator(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "java", g.Language())
	assert.Equal(t, "java", g.FileExtension())

	c := staticClass()
	c.Func(tInt, "GetError", "Returns the error.")
	require.NoError(t, c.Validate())
	u, err := emit.NewUnit(c, nil, emit.DefaultOptions())
	require.NoError(t, err)

	files, err := g.Generate(u)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, emit.RootJava, files[0].Root)
	assert.Equal(t, "org/lwjgl/test/TestLib.java", files[0].Path)
}

func TestClassLayout(t *testing.T) {
	c := staticClass()
	c.Doc = "Native bindings to the test library."
	c.IntConstant("Error codes.", decl.Hex("NO_ERROR", 0), decl.Hex("INVALID_ENUM", 0x500))
	c.IntConstant("", decl.C("VERSION", "3"))
	c.Func(tInt, "GetError", "Returns the error.")

	out := render(t, c, emit.Options{LicenseHeader: "Copyright nativegen authors", Timestamp: "2026-10-14"})

	assert.Contains(t, out, "/*\n * Copyright nativegen authors\n * MACHINE GENERATED FILE, DO NOT EDIT\n * Generated: 2026-10-14\n */\n")
	assert.Contains(t, out, "package org.lwjgl.test;\n\n")
	assert.Contains(t, out, "/** Native bindings to the test library. */\npublic class TestLib {\n")
	assert.Contains(t, out, "\t/** Error codes. */\n\tpublic static final int\n\t\tTL_NO_ERROR = 0x0,\n\t\tTL_INVALID_ENUM = 0x500;\n")
	assert.Contains(t, out, "\tpublic static final int TL_VERSION = 3;\n")
	assert.Contains(t, out, "\tprotected TestLib() {\n")
	assert.NotContains(t, out, "APIUtil")

	// A simple function maps to one public native method.
	assert.Contains(t, out, "\t/** Returns the error. */\n\tpublic static native int tlGetError();\n")
}

func TestAutoSizedBuffer(t *testing.T) {
	c := staticClass()
	c.Func(native.VoidType, "Get", "",
		decl.Out(tVoidP, "buffer", ""),
		decl.In(tSizei, "size", "", decl.AutoSizeOf("buffer")),
	)
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "\t/** JNI method for {@link #tlGet} */\n\t@JavadocExclude\n\tpublic static native void ntlGet(long bufferAddress, int size);\n")
	assert.Contains(t, out, "\tpublic static void tlGet(ByteBuffer buffer) {\n\t\tntlGet(memAddress(buffer), buffer.remaining());\n\t}\n")
}

func TestScratchSizedResult(t *testing.T) {
	c := staticClass()
	c.Func(tVoidP, "Query", "",
		decl.In(tHandle, "name", ""),
		decl.Out(tIntP, "value", "", decl.AutoSizeResult),
		decl.In(tSizei, "count", "", decl.AutoSizeOf("value")),
	)
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "import static org.lwjgl.system.APIUtil.*;\n")
	assert.Contains(t, out, "\tpublic static ByteBuffer tlQuery(long name, int count) {\n"+
		"\t\tif ( LWJGLUtil.CHECKS )\n"+
		"\t\t\tcheckPointer(name);\n"+
		"\t\tAPIBuffer __buffer = apiBuffer();\n"+
		"\t\tint value = __buffer.intParam();\n"+
		"\t\tlong __result = ntlQuery(name, __buffer.address() + value, count);\n"+
		"\t\treturn memByteBuffer(__result, __buffer.intValue(value));\n"+
		"\t}\n")
	assert.Contains(t, out, "\t/** Scratch size version of: {@link #tlQuery} */\n\tpublic static ByteBuffer tlQuery(long name) {\n")
	assert.Contains(t, out, "\t\tlong __result = ntlQuery(name, __buffer.address() + value, 1);\n")
}

func TestCharSequenceAlternative(t *testing.T) {
	c := staticClass()
	c.Func(native.VoidType, "Label", "", decl.In(tUTF8, "label", ""))
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "\tpublic static void tlLabel(ByteBuffer label) {\n"+
		"\t\tif ( LWJGLUtil.CHECKS )\n"+
		"\t\t\tcheckNT1(label);\n"+
		"\t\tntlLabel(memAddress(label));\n"+
		"\t}\n")
	assert.Contains(t, out, "\t/** CharSequence version of: {@link #tlLabel} */\n"+
		"\tpublic static void tlLabel(CharSequence label) {\n"+
		"\t\tAPIBuffer __buffer = apiBuffer();\n"+
		"\t\tint labelEncoded = __buffer.stringParamUTF8(label, true);\n"+
		"\t\tntlLabel(__buffer.address() + labelEncoded);\n"+
		"\t}\n")
}

func TestSingleReturnValue(t *testing.T) {
	c := staticClass()
	c.Func(native.VoidType, "GetIntegervEXT", "",
		decl.In(tEnum, "pname", ""),
		decl.Out(tIntP, "params", "", decl.ReturnParam),
	)
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "\tpublic static void tlGetIntegervEXT(int pname, ByteBuffer params) {\n")
	assert.Contains(t, out, "\t/** Alternative version of: {@link #tlGetIntegervEXT} */\n\tpublic static void tlGetIntegervEXT(int pname, IntBuffer params) {\n")
	assert.Contains(t, out, "\t/** Single return value version of: {@link #tlGetIntegervEXT} */\n"+
		"\tpublic static int tlGetIntegerEXT(int pname) {\n"+
		"\t\tAPIBuffer __buffer = apiBuffer();\n"+
		"\t\tint params = __buffer.intParam();\n"+
		"\t\tntlGetIntegervEXT(pname, __buffer.address() + params);\n"+
		"\t\treturn __buffer.intValue(params);\n"+
		"\t}\n")
}

func TestStructValueResult(t *testing.T) {
	vec := native.Struct("ovrVector3f", "OVRVector3f")
	c := staticClass()
	c.Func(vec, "GetPosition", "",
		decl.In(tInt, "id", ""),
		decl.In(vec, "offset", ""),
	)
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "static native void ntlGetPosition(int id, long offsetAddress, long __result);\n")
	assert.Contains(t, out, "\tpublic static void tlGetPosition(int id, OVRVector3f offset, OVRVector3f __result) {\n")
	assert.Contains(t, out, "\t\tntlGetPosition(id, offset.address(), __result.address());\n")
	assert.NotContains(t, out, "return ntlGetPosition")
}

func TestBufferChecks(t *testing.T) {
	tests := []struct {
		name  string
		param *decl.Parameter
		want  string
	}{
		{
			name:  "byte buffer",
			param: decl.In(tVoidP, "data", "", decl.CheckN(16)),
			want:  "\t\t\tcheckBuffer(data, 16);\n",
		},
		{
			name:  "int buffer as bytes",
			param: decl.In(tIntP, "data", "", decl.CheckN(4)),
			want:  "\t\t\tcheckBuffer(data, 4 << 2);\n",
		},
		{
			name:  "nullable",
			param: decl.In(tIntP, "data", "", decl.CheckN(4), decl.Nullable),
			want:  "\t\t\tif ( data != null ) checkBuffer(data, 4 << 2);\n",
		},
		{
			name:  "debug only",
			param: decl.In(tIntP, "data", "", decl.DebugCheck("count")),
			want:  "\t\t\tif ( LWJGLUtil.DEBUG )\n\t\t\t\tcheckBuffer(data, count << 2);\n",
		},
		{
			name:  "terminated",
			param: decl.In(tIntP, "attribs", "", decl.NoneTerminated),
			want:  "\t\t\tcheckNT4(attribs, EGL10.EGL_NONE);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := staticClass()
			c.Func(native.VoidType, "Use", "", decl.In(tSizei, "count", ""), tt.param)
			out := render(t, c, emit.DefaultOptions())
			assert.Contains(t, out, "\t\tif ( LWJGLUtil.CHECKS )\n"+tt.want)
		})
	}
}

func TestDebugChecksDisabled(t *testing.T) {
	c := staticClass()
	c.Func(native.VoidType, "Use", "", decl.In(tIntP, "data", "", decl.DebugCheck("4")))
	out := render(t, c, emit.Options{})
	assert.NotContains(t, out, "LWJGLUtil.DEBUG")
}

func alClass() *decl.NativeClass {
	binding.Register(binding.NewProvider("AL", "AL", "ALCapabilities", "org.lwjgl.openal"))
	return decl.NewClass("org.lwjgl.openal", "SOFTBufferSamples",
		decl.WithTemplate("AL_SOFT_buffer_samples"), decl.WithPrefix("AL_", "al"), decl.WithBinding("AL"))
}

func TestBoundFunctions(t *testing.T) {
	c := alClass()
	c.Func(native.VoidType, "GetBufferSamplesSOFT", "",
		decl.In(tALuint, "buffer", ""),
		decl.Out(tVoidP, "data", ""),
		decl.In(tSizei, "size", "", decl.AutoSizeOf("data")),
	)
	c.Func(native.VoidType, "ProcessSOFT", "").With(decl.IgnoreMissing)
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "import static org.lwjgl.system.JNI.*;\n")
	assert.Contains(t, out, "\tpublic SOFTBufferSamples(FunctionProvider provider) {\n")
	assert.NotContains(t, out, "static native")

	assert.Contains(t, out, "\t/** Unsafe version of {@link #alGetBufferSamplesSOFT} */\n"+
		"\t@JavadocExclude\n"+
		"\tpublic static void nalGetBufferSamplesSOFT(int buffer, long dataAddress, int size) {\n"+
		"\t\tlong __functionAddress = getInstance().GetBufferSamplesSOFT;\n"+
		"\t\tcallIPIV(__functionAddress, buffer, dataAddress, size);\n"+
		"\t}\n")
	assert.Contains(t, out, "\tpublic static void alGetBufferSamplesSOFT(int buffer, ByteBuffer data) {\n"+
		"\t\tnalGetBufferSamplesSOFT(buffer, memAddress(data), data.remaining());\n"+
		"\t}\n")

	assert.Contains(t, out, "\tpublic static void alProcessSOFT() {\n"+
		"\t\tlong __functionAddress = getInstance().ProcessSOFT;\n"+
		"\t\tif ( LWJGLUtil.CHECKS )\n"+
		"\t\t\tcheckFunctionAddress(__functionAddress);\n"+
		"\t\tcallV(__functionAddress);\n"+
		"\t}\n")
}

func TestCodeInjection(t *testing.T) {
	c := staticClass()
	c.Func(tInt, "Compute", "", decl.In(tVoidP, "data", "", decl.CheckN(1))).With(&decl.Code{
		JavaBeforeNative: []decl.Statement{decl.Stmt("\t\tlock();")},
		JavaAfterNative:  []decl.Statement{decl.Stmt("\t\tlog(__result);")},
		JavaFinally:      []decl.Statement{decl.Stmt("\t\t\tunlock();")},
	})
	out := render(t, c, emit.DefaultOptions())

	assert.Contains(t, out, "\t\tlock();\n"+
		"\t\ttry {\n"+
		"\t\t\tint __result = ntlCompute(memAddress(data));\n"+
		"\t\t\tlog(__result);\n"+
		"\t\t} finally {\n"+
		"\t\t\tunlock();\n"+
		"\t\t}\n"+
		"\t\treturn __result;\n")
}
