package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/templates"
)

func run(t *testing.T, opts Options) *Result {
	t.Helper()
	res, err := Run(context.Background(), templates.NewRegistry(), opts)
	require.NoError(t, err)
	return res
}

func TestRunBundledTemplates(t *testing.T) {
	res := run(t, Options{Workers: 2, Emit: emit.DefaultOptions()})

	sink := NewMemorySink()
	require.NoError(t, sink.Write(res.Files))

	for _, key := range []string{
		"java/org/lwjgl/egl/EGL10.java",
		"native/org/lwjgl/egl/EGL10.c",
		"java/org/lwjgl/system/libffi/LibFFI.java",
		"native/org/lwjgl/system/libffi/LibFFI.c",
		"java/org/lwjgl/openal/AL10.java",
		"java/org/lwjgl/openal/SOFTBufferSamples.java",
		"java/org/lwjgl/openal/ALCapabilities.java",
		"java/org/lwjgl/opengl/GL11.java",
		"java/org/lwjgl/opengl/ARBVertexArrayObject.java",
		"java/org/lwjgl/opengl/GLCapabilities.java",
	} {
		assert.Contains(t, sink.Files, key)
	}
	// Bound classes without native code injection need no shims.
	assert.NotContains(t, sink.Files, "native/org/lwjgl/openal/AL10.c")

	assert.Len(t, res.Classes, 6)
	assert.Greater(t, res.Overloads, len(res.Classes))
	assert.Contains(t, sink.Files["java/org/lwjgl/openal/ALCapabilities.java"], "SOFTBufferSamples")
}

func TestRunIsDeterministic(t *testing.T) {
	first := run(t, Options{Workers: 1})
	second := run(t, Options{Workers: 8})
	assert.Equal(t, first.Files, second.Files)
}

func TestRunClassFilter(t *testing.T) {
	res := run(t, Options{Classes: []string{"EGL10"}})
	assert.Equal(t, []string{"EGL10"}, res.Classes)
	for _, f := range res.Files {
		assert.True(t, strings.HasPrefix(f.Path, "org/lwjgl/egl/"), f.Path)
	}

	// A filtered bound class still aggregates its whole group.
	res = run(t, Options{Classes: []string{"AL_SOFT_buffer_samples"}})
	var caps string
	for _, f := range res.Files {
		if f.Path == "org/lwjgl/openal/ALCapabilities.java" {
			caps = f.Content
		}
	}
	assert.Contains(t, caps, "AL10")

	_, err := Run(context.Background(), templates.NewRegistry(), Options{Classes: []string{"Missing"}})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRunRejectsInvalidDeclarations(t *testing.T) {
	reg := templates.NewRegistry()
	c := reg.Class("org.lwjgl.test", "Broken", decl.WithPrefix("B_", "b"))
	c.Func(native.VoidType, "Get", "",
		decl.In(native.Integer("int", native.Int, false), "size", "", decl.AutoSizeOf("missing")),
	)

	// Filtering does not skip validation of the rest of the registry.
	_, err := Run(context.Background(), reg, Options{Classes: []string{"EGL10"}})
	require.Error(t, err)
	assert.True(t, errors.IsDeclarationError(err))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, templates.NewRegistry(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirSinkAndCompare(t *testing.T) {
	dir := t.TempDir()
	sink := DirSink{JavaDir: filepath.Join(dir, "java"), NativeDir: filepath.Join(dir, "native")}

	opts := emit.DefaultOptions()
	opts.Timestamp = "2026-10-14T10:00:00Z"
	res := run(t, Options{Classes: []string{"EGL10"}, Emit: opts})

	before, err := Compare(res.Files, sink)
	require.NoError(t, err)
	assert.Len(t, before.Missing, len(res.Files))
	assert.True(t, errors.Is(before.Err(), errors.ErrStale))

	require.NoError(t, sink.Write(res.Files))
	_, err = os.Stat(filepath.Join(dir, "java", "org", "lwjgl", "egl", "EGL10.java"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "native", "org", "lwjgl", "egl", "EGL10.c"))
	require.NoError(t, err)

	// A later timestamp alone does not make the files stale.
	opts.Timestamp = "2026-10-15T08:30:00Z"
	again := run(t, Options{Classes: []string{"EGL10"}, Emit: opts})
	after, err := Compare(again.Files, sink)
	require.NoError(t, err)
	assert.True(t, after.UpToDate())
	assert.NoError(t, after.Err())

	path := filepath.Join(dir, "java", "org", "lwjgl", "egl", "EGL10.java")
	require.NoError(t, os.WriteFile(path, []byte("edited\n"), 0o644))
	stale, err := Compare(again.Files, sink)
	require.NoError(t, err)
	assert.Equal(t, []string{"java/org/lwjgl/egl/EGL10.java"}, stale.Stale)
	assert.Empty(t, stale.Missing)
}

func TestFilterTimestamp(t *testing.T) {
	a := "/*\n * MACHINE GENERATED FILE, DO NOT EDIT\n" + emit.TimestampPrefix + "one\n */\nbody\n"
	b := "/*\n * MACHINE GENERATED FILE, DO NOT EDIT\n" + emit.TimestampPrefix + "two\n */\nbody\n"
	assert.Equal(t, filterTimestamp([]byte(a)), filterTimestamp([]byte(b)))
	assert.NotEqual(t, filterTimestamp([]byte(a)), filterTimestamp([]byte("body\n")))
}
