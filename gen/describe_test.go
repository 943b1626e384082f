package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/templates"
)

func TestDescribe(t *testing.T) {
	d, err := Describe(templates.NewRegistry(), "AL10")
	require.NoError(t, err)
	assert.Equal(t, "AL10", d.Class)
	assert.Equal(t, "org.lwjgl.openal", d.Package)
	assert.Equal(t, "AL", d.Binding)

	var total int
	var sources *FunctionDescription
	for i := range d.Functions {
		total += len(d.Functions[i].Overloads)
		if d.Functions[i].Name == "GenSources" {
			sources = &d.Functions[i]
		}
	}
	assert.Equal(t, d.Overloads, total)

	require.NotNil(t, sources)
	assert.Equal(t, "alGenSources", sources.Native)
	require.Len(t, sources.Overloads, 3)
	assert.Equal(t, "normal", sources.Overloads[0].Mode)
	assert.Equal(t, "alternative", sources.Overloads[2].Mode)
	assert.Equal(t, "Single return value version of:", sources.Overloads[2].Description)
	assert.NotEmpty(t, sources.Overloads[2].Transforms)

	_, err = Describe(templates.NewRegistry(), "Nope")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestList(t *testing.T) {
	infos, err := List(templates.NewRegistry())
	require.NoError(t, err)
	require.Len(t, infos, 6)

	byClass := make(map[string]ClassInfo)
	for _, info := range infos {
		byClass[info.Class] = info
		assert.GreaterOrEqual(t, info.Overloads, info.Functions, info.Class)
	}
	assert.Equal(t, "EGL10", infos[0].Class, "registration order")
	assert.Empty(t, byClass["LibFFI"].Binding)
	assert.Equal(t, "AL", byClass["SOFTBufferSamples"].Binding)
}
