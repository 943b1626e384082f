package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/nativegen/am"
	"github.com/teranos/nativegen/errors"
)

// AmCmd manages the configuration.
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage nativegen configuration",
	Long: `Display and manage nativegen configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (NATIVEGEN_* prefix)
3. Project config (nativegen.toml in this or a parent directory)
4. User config (~/.nativegen/config.toml)
5. System config (/etc/nativegen/config.toml)
6. Default values

Examples:
  nativegen am show                 # Show current configuration
  nativegen am show --format json   # Show configuration as JSON
  nativegen am show --sources       # Show where each setting comes from
  nativegen am init                 # Write ./nativegen.toml with defaults`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective nativegen configuration merged from all sources",
	Args:  cobra.NoArgs,
	RunE:  runAmShow,
}

var amInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default project config",
	Long:  "Write the built-in defaults to nativegen.toml (or the given path). Existing files are backed up.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmInit,
}

var (
	configFormat  string
	configSources bool
	initForce     bool
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amShowCmd.Flags().BoolVar(&configSources, "sources", false, "Show the source of every setting")
	amInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amInitCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	if configSources {
		return showSources()
	}
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return writeConfig(cmd.OutOrStdout(), cfg, configFormat)
}

func writeConfig(w io.Writer, cfg *am.Config, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal config to %s", format)
	}
	if format != "json" {
		fmt.Fprintln(w, "# nativegen configuration")
	}
	_, err = w.Write(data)
	return err
}

func showSources() error {
	ci := am.GetConfigIntrospection()
	data := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range ci.Settings {
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path := am.ProjectConfigName
	if len(args) == 1 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", path)
	}

	if _, err := os.Stat(abs); err == nil && !initForce {
		return errors.WithHint(
			errors.Newf("%s already exists", abs),
			"use --force to overwrite it; the old file is kept as .back1")
	}
	if err := am.WriteDefault(abs); err != nil {
		return err
	}
	pterm.Success.Printf("Wrote %s\n", abs)
	return nil
}
