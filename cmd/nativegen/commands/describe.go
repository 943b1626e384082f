package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/gen"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/templates"
)

var describeFormat string

// DescribeCmd prints the overload plan of one class.
var DescribeCmd = &cobra.Command{
	Use:   "describe <class>",
	Short: "Show the overloads derived for a class",
	Long: `Resolve every function of a class and print the overloads it produces,
with the transform applied to each parameter.

The class may be named by its class name or its template name.

Examples:
  nativegen describe AL10
  nativegen describe ARB_vertex_array_object --format json
  nativegen describe GL15 --format plan`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	DescribeCmd.Flags().StringVarP(&describeFormat, "format", "f", "yaml", "Output format: yaml, json, plan")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	d, err := gen.Describe(templates.NewRegistry(), args[0])
	if err != nil {
		return err
	}
	return writeDescription(cmd.OutOrStdout(), d, describeFormat)
}

func writeDescription(w io.Writer, d *gen.ClassDescription, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(err, "failed to marshal description to YAML")
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal description to JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "plan":
		return writeOverloadPlan(w, d)
	default:
		return errors.Newf("unsupported format: %s (supported: yaml, json, plan)", format)
	}
}

// writeOverloadPlan prints one line per overload, grouped by function.
func writeOverloadPlan(w io.Writer, d *gen.ClassDescription) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s %s (%d overloads)\n", logger.CategoryName(logger.OutputOverloadPlan), d.Class, d.Overloads)
	for _, f := range d.Functions {
		fmt.Fprintf(&sb, "%s\n", f.Native)
		for _, o := range f.Overloads {
			fmt.Fprintf(&sb, "  %s %s(%s)", o.Returns, o.Name, strings.Join(o.Params, ", "))
			if o.Description != "" {
				fmt.Fprintf(&sb, "  // %s", o.Description)
			}
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
