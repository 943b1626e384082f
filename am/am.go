// Package am loads the nativegen configuration.
//
// Settings are merged from, lowest precedence first:
//
//	built-in defaults
//	/etc/nativegen/config.toml
//	~/.nativegen/config.toml
//	nativegen.toml in the working directory or the nearest parent
//	NATIVEGEN_* environment variables
package am

import (
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/gen"
)

// File permissions for configuration files and directories
const (
	DefaultDirPermissions  = 0o750
	DefaultFilePermissions = 0o644
)

// ProjectConfigName is the file searched for from the working directory upwards.
const ProjectConfigName = "nativegen.toml"

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "NATIVEGEN"

// Config is the complete nativegen configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// OutputConfig controls where and how files are written.
type OutputConfig struct {
	JavaDir       string `mapstructure:"java_dir" toml:"java_dir" json:"java_dir" yaml:"java_dir"`
	NativeDir     string `mapstructure:"native_dir" toml:"native_dir" json:"native_dir" yaml:"native_dir"`
	Headers       bool   `mapstructure:"headers" toml:"headers" json:"headers" yaml:"headers"`
	LicenseHeader string `mapstructure:"license_header" toml:"license_header" json:"license_header" yaml:"license_header"`
}

// GenerateConfig controls which classes are generated and how.
type GenerateConfig struct {
	// Classes restricts generation to these class or template names; empty means all.
	Classes     []string `mapstructure:"classes" toml:"classes" json:"classes" yaml:"classes"`
	Workers     int      `mapstructure:"workers" toml:"workers" json:"workers" yaml:"workers"`
	DebugChecks bool     `mapstructure:"debug_checks" toml:"debug_checks" json:"debug_checks" yaml:"debug_checks"`
}

// LogConfig controls log output.
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// GenOptions converts the configuration into generation options.
func (c *Config) GenOptions() gen.Options {
	return gen.Options{
		Classes: c.Generate.Classes,
		Workers: c.Generate.Workers,
		Emit: emit.Options{
			LicenseHeader: c.Output.LicenseHeader,
			DebugChecks:   c.Generate.DebugChecks,
			Headers:       c.Output.Headers,
		},
	}
}

// Sink returns the directory sink for the configured output directories.
func (c *Config) Sink() gen.DirSink {
	return gen.DirSink{JavaDir: c.Output.JavaDir, NativeDir: c.Output.NativeDir}
}
