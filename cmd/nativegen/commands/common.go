// Package commands implements the nativegen subcommands.
package commands

import (
	"context"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/nativegen/am"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/gen"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/templates"
)

// verbosity returns the -v count of the invocation.
func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// loadConfig loads and validates the configuration.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputFlags are the generation overrides shared by generate and check.
type outputFlags struct {
	classes []string
	output  string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.classes, "class", "c", nil, "Class or template names to generate (default: generate.classes or all)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output root; Java goes to <root>/java and C to <root>/native")
}

// apply overrides the configuration with the flags that were set.
func (f *outputFlags) apply(cfg *am.Config) *am.Config {
	out := *cfg
	if len(f.classes) > 0 {
		out.Generate.Classes = f.classes
	}
	if f.output != "" {
		out.Output.JavaDir = filepath.Join(f.output, "java")
		out.Output.NativeDir = filepath.Join(f.output, "native")
	}
	return &out
}

// generate runs the bundled templates through the generator.
func generate(ctx context.Context, cfg *am.Config, timestamp string) (*gen.Result, time.Duration, error) {
	opts := cfg.GenOptions()
	opts.Emit.Timestamp = timestamp

	start := time.Now()
	res, err := gen.Run(ctx, templates.NewRegistry(), opts)
	return res, time.Since(start), err
}

// PrintError prints err with any hints attached to it.
func PrintError(err error) {
	pterm.Error.Println(err.Error())
	if hint := errors.FlattenHints(err); hint != "" {
		pterm.Info.Println(hint)
	}
	logger.Logger.Debugw("Command failed", logger.FieldError, err)
}
