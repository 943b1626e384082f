package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/transform"
)

func TestRegistryValidates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Validate())
	assert.Equal(t, []string{"AL10", "ARBVertexArrayObject", "EGL10", "GL11", "LibFFI", "SOFTBufferSamples"}, reg.Names())

	c, err := reg.Lookup("AL_SOFT_buffer_samples")
	require.NoError(t, err)
	assert.Equal(t, "SOFTBufferSamples", c.ClassName)
}

func TestBindingsRegistered(t *testing.T) {
	reg := NewRegistry()
	for _, c := range reg.Classes() {
		_, err := binding.For(c)
		assert.NoError(t, err, c.ClassName)
	}
}

func TestOverloadCounts(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Validate())

	tests := []struct {
		class string
		fn    string
		want  []string
	}{
		{class: "AL10", fn: "GetError", want: []string{""}},
		{class: "AL10", fn: "IsExtensionPresent", want: []string{"", "CharSequence version of:"}},
		{class: "AL10", fn: "GenSources", want: []string{"", "Alternative version of:", "Single return value version of:"}},
		{class: "AL10", fn: "DeleteSources", want: []string{"", "Alternative version of:", "Single value version of:"}},
		{class: "EGL10", fn: "Initialize", want: []string{"", "Alternative version of:"}},
		{class: "EGL10", fn: "QueryString", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.class+"."+tt.fn, func(t *testing.T) {
			c, err := reg.Lookup(tt.class)
			require.NoError(t, err)
			fn := c.Function(tt.fn)
			require.NotNil(t, fn)
			b, err := binding.For(c)
			require.NoError(t, err)

			overloads, err := transform.Resolve(fn, b)
			require.NoError(t, err)
			var got []string
			for _, o := range overloads {
				got = append(got, o.Description)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
