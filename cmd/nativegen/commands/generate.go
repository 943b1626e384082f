package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/nativegen/am"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/gen"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/templates"
)

var (
	generateFlags outputFlags
	generateWatch bool
)

// GenerateCmd writes the generated sources.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Java host classes and JNI shims",
	Long: `Generate Java host classes, JNI shims and capabilities classes for the
bundled native class declarations.

Nothing is written unless every selected class generates successfully.

Examples:
  nativegen generate                       # Every class, configured output
  nativegen generate --class GL11,EGL10    # Selected classes only
  nativegen generate --output build/gen    # Write under build/gen/{java,native}
  nativegen generate --watch               # Regenerate when nativegen.toml changes
  nativegen generate -vvv                  # Also print the overload plan of every class`,
	RunE: runGenerate,
}

func init() {
	generateFlags.register(GenerateCmd)
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever the project config changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v := verbosity(cmd)

	if err := generateOnce(cmd.Context(), generateFlags.apply(cfg), v); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}
	return watchAndGenerate(cmd.Context(), v)
}

func generateOnce(ctx context.Context, cfg *am.Config, v int) error {
	if logger.ShouldOutput(v, logger.OutputConfig) {
		pterm.Info.Printf("Verbosity: %s\n", logger.LevelName(v))
		pterm.Info.Printf("Java output: %s\n", cfg.Output.JavaDir)
		pterm.Info.Printf("Native output: %s\n", cfg.Output.NativeDir)
	}

	res, elapsed, err := generate(ctx, cfg, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	sink := cfg.Sink()
	if err := sink.Write(res.Files); err != nil {
		return err
	}

	if logger.ShouldOutput(v, logger.OutputFiles) {
		for _, f := range res.Files {
			pterm.Printf("  %s\n", sink.Path(f))
		}
	}
	if logger.ShouldOutput(v, logger.OutputRunSummary) {
		pterm.Info.Printf("%d classes, %d overloads\n", len(res.Classes), res.Overloads)
	}
	if logger.ShouldOutput(v, logger.OutputTiming) {
		pterm.Info.Printf("Generated in %s\n", elapsed.Round(time.Millisecond))
	}
	if logger.ShouldOutput(v, logger.OutputOverloadPlan) {
		if err := printOverloadPlans(os.Stdout, res.Classes); err != nil {
			return err
		}
	}
	if logger.ShouldOutput(v, logger.OutputUserStatus) {
		pterm.Success.Printf("Generated %d files\n", len(res.Files))
	}
	return nil
}

// printOverloadPlans writes the overload plan of every generated class.
func printOverloadPlans(w io.Writer, classes []string) error {
	reg := templates.NewRegistry()
	for _, name := range classes {
		d, err := gen.Describe(reg, name)
		if err != nil {
			return err
		}
		if err := writeOverloadPlan(w, d); err != nil {
			return err
		}
	}
	return nil
}

// watchAndGenerate regenerates on every change of the project config until interrupted.
func watchAndGenerate(ctx context.Context, v int) error {
	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to determine working directory")
	}
	path := am.FindProjectConfig(wd)
	if path == "" {
		return errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "no %s found from %s", am.ProjectConfigName, wd),
			"create one with 'nativegen am init'")
	}

	watcher, err := am.NewConfigWatcher(path)
	if err != nil {
		return err
	}
	am.SetGlobalWatcher(watcher)
	defer am.SetGlobalWatcher(nil)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher.OnReload(func(cfg *am.Config) error {
		return generateOnce(ctx, generateFlags.apply(cfg), v)
	})
	watcher.Start()

	pterm.Info.Printf("Watching %s (press Ctrl+C to stop)\n", path)
	<-ctx.Done()
	pterm.Info.Println("Stopped watching")
	return watcher.Stop()
}
