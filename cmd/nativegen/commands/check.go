package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/nativegen/gen"
	"github.com/teranos/nativegen/logger"
)

var checkFlags outputFlags

// CheckCmd verifies the generated sources on disk.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated sources are up to date",
	Long: `Regenerate in memory and compare the result with the files on disk.
Generation timestamps are ignored. Exits non-zero when any file is stale
or missing.

Examples:
  nativegen check                   # Check the configured output
  nativegen check --class AL10 -v   # Check one class and list stale files`,
	RunE: runCheck,
}

func init() {
	checkFlags.register(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = checkFlags.apply(cfg)
	v := verbosity(cmd)

	res, _, err := generate(cmd.Context(), cfg, "")
	if err != nil {
		return err
	}
	result, err := gen.Compare(res.Files, cfg.Sink())
	if err != nil {
		return err
	}

	for _, key := range result.Stale {
		pterm.Warning.Printf("stale: %s\n", key)
	}
	for _, key := range result.Missing {
		pterm.Warning.Printf("missing: %s\n", key)
	}
	if err := result.Err(); err != nil {
		return err
	}
	if logger.ShouldOutput(v, logger.OutputFiles) {
		for _, f := range res.Files {
			pterm.Printf("  %s\n", cfg.Sink().Path(f))
		}
	}
	if logger.ShouldOutput(v, logger.OutputUserStatus) {
		pterm.Success.Printf("%d generated files are up to date\n", len(res.Files))
	}
	return nil
}
