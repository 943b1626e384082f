package am

import "github.com/spf13/viper"

// Default values
const (
	DefaultJavaDir   = "generated/java"
	DefaultNativeDir = "generated/native"
)

// SetDefaults configures default values for all settings
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.java_dir", DefaultJavaDir)
	v.SetDefault("output.native_dir", DefaultNativeDir)
	v.SetDefault("output.headers", false)
	v.SetDefault("output.license_header", "")

	v.SetDefault("generate.classes", []string{})
	v.SetDefault("generate.workers", 0) // 0 means GOMAXPROCS
	v.SetDefault("generate.debug_checks", true)

	v.SetDefault("log.json", false)
}

// DefaultConfig returns the configuration made of built-in defaults only.
func DefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode.
		panic(err)
	}
	return cfg
}
