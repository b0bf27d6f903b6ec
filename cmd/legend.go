package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLegendCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Show session types with their labels and colors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := app.calendar.Legend()
			if asJSON {
				return writeJSON(cmd, entries)
			}

			rendered, err := app.legendRenderer(entries, renderOptions(cmd))
			if err != nil {
				return fmt.Errorf("render legend: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}
