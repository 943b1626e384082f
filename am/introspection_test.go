package am

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSettingsFromSource(t *testing.T) {
	settings := map[string]interface{}{
		"output": map[string]interface{}{
			"java_dir": "a",
			"nested":   map[string]interface{}{"deep": 1},
		},
		"flat": true,
	}

	sources := map[string]SourceInfo{}
	markSettingsFromSource(settings, "", SourceUser, "/home/u/.nativegen/config.toml", sources)

	assert.Len(t, sources, 3)
	for _, key := range []string{"output.java_dir", "output.nested.deep", "flat"} {
		assert.Equal(t, SourceUser, sources[key].Source, key)
		assert.Equal(t, "/home/u/.nativegen/config.toml", sources[key].Path, key)
	}
}

func TestIntrospect(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("generate.workers", 6)

	t.Setenv(EnvKey("output.headers"), "true")

	ci := Introspect(v, map[string]SourceInfo{
		"generate.workers": {Source: SourceProject, Path: "/p/nativegen.toml"},
	})

	byKey := make(map[string]SettingInfo)
	var keys []string
	for _, s := range ci.Settings {
		byKey[s.Key] = s
		keys = append(keys, s.Key)
	}
	assert.IsIncreasing(t, keys)

	require.Contains(t, byKey, "generate.workers")
	assert.Equal(t, SourceProject, byKey["generate.workers"].Source)
	assert.Equal(t, 6, byKey["generate.workers"].Value)

	assert.Equal(t, SourceEnvironment, byKey["output.headers"].Source)
	assert.Equal(t, "NATIVEGEN_OUTPUT_HEADERS", byKey["output.headers"].SourcePath)

	assert.Equal(t, SourceDefault, byKey["output.java_dir"].Source)

	summary := ci.Summary()
	assert.Equal(t, 1, summary[SourceProject])
	assert.Equal(t, 1, summary[SourceEnvironment])
	assert.Equal(t, len(ci.Settings)-2, summary[SourceDefault])
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "NATIVEGEN_GENERATE_DEBUG_CHECKS", EnvKey("generate.debug_checks"))
}
