package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/nativegen/gen"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/templates"
)

// ListCmd lists the bundled native classes.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled native classes",
	Long:  "List every bundled native class with its binding, function count and derived overload count.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	infos, err := gen.List(templates.NewRegistry())
	if err != nil {
		return err
	}

	data := pterm.TableData{{"Class", "Package", "Binding", "Functions", "Overloads"}}
	var functions, overloads int
	for _, info := range infos {
		b := info.Binding
		if b == "" {
			b = "static"
		}
		data = append(data, []string{
			info.Class,
			info.Package,
			b,
			strconv.Itoa(info.Functions),
			strconv.Itoa(info.Overloads),
		})
		functions += info.Functions
		overloads += info.Overloads
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if logger.ShouldOutput(verbosity(cmd), logger.OutputRunSummary) {
		pterm.Info.Printf("%d classes, %d functions, %d overloads\n", len(infos), functions, overloads)
	}
	return nil
}
