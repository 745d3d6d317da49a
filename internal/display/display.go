// Package display renders user-facing output: the startup banner and the
// plan summary table shown in dry-run and verbose modes.
package display

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cytagen/internal/planner"
)

// PrintBanner prints the startup banner.
func PrintBanner(version string) {
	fmt.Fprintf(os.Stdout, "cytagen v%s\n", version)
}

// Summarize renders the plan's stream operations as a table.
func Summarize(plan *planner.Plan) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Track", "Kind", "Action", "Codec", "Output"})

	for _, op := range plan.Operations {
		action, codec := "copy", ""
		if op.Action == planner.ActionEncode {
			action = "encode"
			codec = op.Encoder
		}
		tw.AppendRow(table.Row{op.TrackIndex, string(op.Kind), action, codec, op.Destination})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return tw.Render()
}
