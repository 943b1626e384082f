package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/nativegen/am"
	"github.com/teranos/nativegen/gen"
	"github.com/teranos/nativegen/templates"
	"github.com/teranos/nativegen/version"
)

func TestOutputFlagsApply(t *testing.T) {
	base := am.DefaultConfig()

	t.Run("no flags", func(t *testing.T) {
		f := outputFlags{}
		assert.Equal(t, base, f.apply(base))
	})

	t.Run("overrides", func(t *testing.T) {
		f := outputFlags{classes: []string{"GL11"}, output: "build/gen"}
		got := f.apply(base)
		assert.Equal(t, []string{"GL11"}, got.Generate.Classes)
		assert.Equal(t, filepath.Join("build/gen", "java"), got.Output.JavaDir)
		assert.Equal(t, filepath.Join("build/gen", "native"), got.Output.NativeDir)
		assert.Equal(t, am.DefaultJavaDir, base.Output.JavaDir, "base config is not modified")
	})
}

func TestWriteDescription(t *testing.T) {
	d, err := gen.Describe(templates.NewRegistry(), "EGL10")
	require.NoError(t, err)

	tests := []struct {
		format    string
		unmarshal func([]byte, interface{}) error
	}{
		{format: "yaml", unmarshal: yaml.Unmarshal},
		{format: "json", unmarshal: json.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeDescription(&buf, d, tt.format))

			var back gen.ClassDescription
			require.NoError(t, tt.unmarshal(buf.Bytes(), &back))
			assert.Equal(t, "EGL10", back.Class)
			assert.Equal(t, d.Overloads, back.Overloads)
			assert.Len(t, back.Functions, len(d.Functions))
		})
	}

	assert.Error(t, writeDescription(&bytes.Buffer{}, d, "xml"))
}

func TestWriteOverloadPlan(t *testing.T) {
	d, err := gen.Describe(templates.NewRegistry(), "EGL10")
	require.NoError(t, err)
	require.NotEmpty(t, d.Functions)

	var buf bytes.Buffer
	require.NoError(t, writeDescription(&buf, d, "plan"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# overload-plan EGL10 ("))
	first := d.Functions[0]
	assert.Contains(t, out, "\n"+first.Native+"\n")
	require.NotEmpty(t, first.Overloads)
	assert.Contains(t, out, "  "+first.Overloads[0].Returns+" "+first.Overloads[0].Name+"(")

	lines := strings.Count(out, "\n")
	assert.Equal(t, 1+len(d.Functions)+d.Overloads, lines)
}

func TestPrintOverloadPlans(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printOverloadPlans(&buf, []string{"EGL10", "AL10"}))
	assert.Contains(t, buf.String(), "# overload-plan EGL10 (")
	assert.Contains(t, buf.String(), "# overload-plan AL10 (")

	err := printOverloadPlans(&buf, []string{"NoSuchClass"})
	assert.Error(t, err)
}

func TestWriteConfig(t *testing.T) {
	cfg := am.DefaultConfig()
	cfg.Generate.Workers = 7

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, cfg, "toml"))
	var fromTOML am.Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &fromTOML))
	assert.Equal(t, 7, fromTOML.Generate.Workers)

	buf.Reset()
	require.NoError(t, writeConfig(&buf, cfg, "json"))
	var fromJSON map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, am.DefaultJavaDir, fromJSON["output"]["java_dir"])

	buf.Reset()
	require.NoError(t, writeConfig(&buf, cfg, "yaml"))
	assert.Contains(t, buf.String(), "debug_checks: true")

	assert.Error(t, writeConfig(&buf, cfg, "ini"))
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	defer VersionCmd.SetOut(nil)

	require.NoError(t, VersionCmd.Flags().Set("json", "true"))
	defer VersionCmd.Flags().Set("json", "false")
	require.NoError(t, VersionCmd.RunE(VersionCmd, nil))

	var info version.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, version.Get(), info)
}
