package cmd

import (
	"fmt"
	"io"
	"mindmap/terminal"
	"mindmap/ui"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the key and mouse bindings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printKeys(color.Output)
		},
	}
}

func printKeys(w io.Writer) {
	for i, mode := range terminal.Modes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		ui.Heading(w, headingFor(mode))

		rows := make([][]string, 0, len(terminal.Bindings[mode]))
		for _, b := range terminal.Bindings[mode] {
			rows = append(rows, []string{ui.Brand.Sprint(b.Keys), b.Action})
		}
		ui.Table(w, []string{"Keys", "Action"}, rows)
	}
}

func headingFor(mode string) string {
	switch mode {
	case "any":
		return "Anywhere"
	default:
		return strings.ToUpper(mode[:1]) + mode[1:] + " mode"
	}
}
