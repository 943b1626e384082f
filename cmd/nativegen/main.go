package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/nativegen/am"
	"github.com/teranos/nativegen/cmd/nativegen/commands"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "nativegen",
	Short: "Generate Java and JNI bindings from native API declarations",
	Long: `nativegen - binding generator for native libraries.

nativegen turns declarative descriptions of C APIs into Java host classes
and JNI C shims, deriving every convenience overload from the parameter
modifiers of each function.

Available commands:
  generate - Write the generated sources
  check    - Verify generated sources are up to date
  list     - List the bundled native classes
  describe - Show the overload plan of a class
  am       - Manage nativegen configuration
  version  - Show version information

Examples:
  nativegen generate                  # Generate every bundled class
  nativegen generate --class GL11     # Generate one class
  nativegen check                     # Fail when sources are stale
  nativegen describe AL10 -vvv        # Show the overload plan of AL10`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if !cmd.Flags().Changed("json-logs") {
			jsonLogs = am.GetBool("log.json")
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.DescribeCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(1)
	}
}
