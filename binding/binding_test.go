package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/transform"
)

func alClass() *decl.NativeClass {
	c := decl.NewClass("org.lwjgl.openal", "SOFTBufferSamples",
		decl.WithTemplate("AL_SOFT_buffer_samples"), decl.WithPrefix("AL_", "al"), decl.WithBinding("AL"))
	c.Func(native.VoidType, "BufferSamplesSOFT", "", decl.In(native.Integer("ALuint", native.Int, true), "buffer", ""))
	c.Func(native.VoidType, "GetStringiSOFT", "").With(decl.IgnoreMissing)
	return c
}

func TestLookup(t *testing.T) {
	b, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, transform.NoBinding, b)

	_, err = Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, errors.FlattenHints(err), "registered bindings")

	al := NewProvider("AL", "AL", "ALCapabilities", "org.lwjgl.openal")
	Register(al)
	got, err := For(alClass())
	require.NoError(t, err)
	assert.Same(t, al, got)
	assert.Contains(t, Names(), "AL")
}

func TestProviderAddresses(t *testing.T) {
	p := NewProvider("AL", "AL", "ALCapabilities", "org.lwjgl.openal")
	c := alClass()
	samples := c.Function("BufferSamplesSOFT")
	missing := c.Function("GetStringiSOFT")

	assert.Equal(t, "getInstance().BufferSamplesSOFT", p.FunctionAddress(samples))
	assert.Equal(t, `provider.getFunctionAddress("alBufferSamplesSOFT")`, p.FunctionAddressCall(samples))
	assert.False(t, p.ShouldCheckFunctionAddress(samples))
	assert.True(t, p.ShouldCheckFunctionAddress(missing))
}

func TestProviderMembers(t *testing.T) {
	p := NewProvider("AL", "AL", "ALCapabilities", "org.lwjgl.openal")
	out := p.Members(alClass())

	assert.Contains(t, out, "\tpublic final long\n\t\tBufferSamplesSOFT,\n\t\tGetStringiSOFT;\n")
	assert.Contains(t, out, "\tpublic SOFTBufferSamples(FunctionProvider provider) {\n")
	assert.Contains(t, out, "\t\tBufferSamplesSOFT = provider.getFunctionAddress(\"alBufferSamplesSOFT\");\n")
	assert.Contains(t, out, "boolean supported = checkFunctions(funcs.BufferSamplesSOFT);")
	assert.Contains(t, out, "return AL.checkExtension(\"AL_SOFT_buffer_samples\", funcs, supported);")
}

func TestProviderCapabilities(t *testing.T) {
	p := NewProvider("AL", "AL", "ALCapabilities", "org.lwjgl.openal")
	empty := decl.NewClass("org.lwjgl.openal", "EXTFloat32", decl.WithTemplate("AL_EXT_float32"))
	out := p.Capabilities([]*decl.NativeClass{alClass(), empty})

	assert.Equal(t, "org/lwjgl/openal/ALCapabilities.java", p.CapabilitiesPath())
	assert.Contains(t, out, "public final class ALCapabilities {")
	assert.Contains(t, out, "\tfinal SOFTBufferSamples __SOFTBufferSamples;\n")
	assert.Contains(t, out, "\tpublic final boolean AL_EXT_float32;\n")
	assert.Contains(t, out, "AL_SOFT_buffer_samples = (__SOFTBufferSamples = org.lwjgl.openal.SOFTBufferSamples.create(ext, provider)) != null;")
	assert.Contains(t, out, "AL_EXT_float32 = ext.contains(\"AL_EXT_float32\");")
}
