package cmd

import (
	"fmt"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *app) *cobra.Command {
	var (
		query  application.CalendarQuery
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the color-coded session calendar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := app.calendar.Calendar(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, calendarJSON(view))
			}

			rendered, err := app.calendarRenderer(view, renderOptions(cmd))
			if err != nil {
				return fmt.Errorf("render calendar: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&query.From, "from", "", "First date to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.To, "to", "", "Last date to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.Month, "month", "", "Show a single month (YYYY-MM) with a day grid")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

type calendarOutput struct {
	MarkedDates domain.Marking           `json:"markedDates"`
	Legend      []domain.SessionTypeInfo `json:"legend"`
	Diagnostics []diagnosticJSON         `json:"diagnostics"`
}

type diagnosticJSON struct {
	Index       int    `json:"index"`
	Date        string `json:"date"`
	SessionType string `json:"sessionType"`
	Error       string `json:"error"`
}

func calendarJSON(view application.CalendarView) calendarOutput {
	marking := view.Marking
	if marking == nil {
		marking = domain.Marking{}
	}

	diagnostics := make([]diagnosticJSON, 0, len(view.Diagnostics))
	for _, d := range view.Diagnostics {
		diagnostics = append(diagnostics, diagnosticJSON{
			Index:       d.Index,
			Date:        d.Record.Date,
			SessionType: string(d.Record.SessionType),
			Error:       d.Err.Error(),
		})
	}

	return calendarOutput{
		MarkedDates: marking,
		Legend:      view.Legend,
		Diagnostics: diagnostics,
	}
}
