package cmd

import (
	"encoding/json"
	"os"

	calendaradapter "github.com/bnema/scdc-smart-cli/internal/adapters/render/calendar"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// renderOptions drops colors unless stdout is a terminal.
func renderOptions(cmd *cobra.Command) calendaradapter.RenderOptions {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return calendaradapter.RenderOptions{Plain: true}
	}

	fd := f.Fd()
	return calendaradapter.RenderOptions{Plain: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)}
}
