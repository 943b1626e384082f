package am

import (
	"strings"

	"github.com/teranos/nativegen/errors"
)

// Validate checks the configuration for values generation cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.JavaDir) == "" {
		return errors.NewInvalidConfigError("output.java_dir must not be empty")
	}
	if strings.TrimSpace(c.Output.NativeDir) == "" {
		return errors.NewInvalidConfigError("output.native_dir must not be empty")
	}
	if c.Generate.Workers < 0 {
		return errors.WithHint(
			errors.NewInvalidConfigError("generate.workers must be >= 0, got %d", c.Generate.Workers),
			"use 0 to run one worker per CPU")
	}
	for _, name := range c.Generate.Classes {
		if strings.TrimSpace(name) == "" {
			return errors.NewInvalidConfigError("generate.classes contains an empty name")
		}
	}
	return nil
}
