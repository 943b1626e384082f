package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-14T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("fills unset values", func(t *testing.T) {
		info := Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"}
		info.fromBuildInfo(bi)
		assert.Equal(t, "v0.3.0", info.Version)
		assert.Equal(t, "0123456789abcdef", info.CommitHash)
		assert.True(t, info.Modified)
		assert.Equal(t, "nativegen v0.3.0 (commit 0123456-dirty, built 2026-10-14T10:00:00Z)", info.String())
	})

	t.Run("ldflags win", func(t *testing.T) {
		info := Info{CommitHash: "feedbeef", BuildTime: "yesterday", Version: "v1.0.0"}
		info.fromBuildInfo(bi)
		assert.Equal(t, "v1.0.0", info.Version)
		assert.Equal(t, "feedbeef", info.CommitHash)
		assert.Equal(t, "yesterday", info.BuildTime)
	})

	t.Run("devel module version is ignored", func(t *testing.T) {
		info := Info{Version: "dev"}
		info.fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		assert.Equal(t, "dev", info.Version)
	})
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc", Info{CommitHash: "abc"}.Short())
	assert.Equal(t, "abcdefg", Info{CommitHash: "abcdefghij"}.Short())
}
