package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/native"
)

func TestNaming(t *testing.T) {
	c := decl.NewClass("org.lwjgl.system.libffi", "Lib_FFI")

	assert.Equal(t, "org/lwjgl/system/libffi/Lib_FFI.java", JavaPath(c))
	assert.Equal(t, "org/lwjgl/system/libffi/Lib_FFI.c", NativePath(c, "c"))
	assert.Equal(t, "ffi_1call", JNIName("ffi_call"))
	assert.Equal(t, "org_lwjgl_system_libffi_Lib_1FFI", JNIClassName(c))
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "bare",
			want: "/*\n * MACHINE GENERATED FILE, DO NOT EDIT\n */\n",
		},
		{
			name: "license and timestamp",
			opts: Options{LicenseHeader: "Copyright nativegen authors\n\nLicense terms.\n", Timestamp: "2026-10-14T10:00:00Z"},
			want: "/*\n * Copyright nativegen authors\n *\n * License terms.\n * MACHINE GENERATED FILE, DO NOT EDIT\n" +
				" * Generated: 2026-10-14T10:00:00Z\n */\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Header(tt.opts))
		})
	}
}

func TestNewUnit(t *testing.T) {
	c := decl.NewClass("org.lwjgl.test", "TestLib", decl.WithPrefix("TL_", "tl"))
	c.Func(native.VoidType, "Get", "",
		decl.Out(native.Untyped("void"), "buffer", ""),
		decl.In(native.Integer("GLsizei", native.Int, false), "size", "", decl.AutoSizeOf("buffer")),
	)
	c.Func(native.Integer("GLint", native.Int, false), "GetError", "")

	_, err := NewUnit(c, nil, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsResolutionError(err))

	require.NoError(t, c.Validate())
	u, err := NewUnit(c, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, u.Functions, 2)
	assert.Equal(t, 2, u.OverloadCount())
	assert.True(t, u.HasCustomJNI())
	assert.True(t, u.Options.DebugChecks)
}

func TestSortFiles(t *testing.T) {
	files := []OutputFile{
		{Root: RootNative, Path: "b.c"},
		{Root: RootJava, Path: "b.java"},
		{Root: RootNative, Path: "a.c"},
		{Root: RootJava, Path: "a.java"},
	}
	SortFiles(files)

	var got []string
	for _, f := range files {
		got = append(got, f.Root.String()+":"+f.Path)
	}
	assert.Equal(t, []string{"java:a.java", "java:b.java", "native:a.c", "native:b.c"}, got)
}
