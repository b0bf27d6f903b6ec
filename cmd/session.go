package cmd

import (
	"fmt"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage session records",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *app) *cobra.Command {
	var (
		date        string
		sessionType string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a session record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := app.calendar.AddSession(cmd.Context(), application.AddSessionCommand{
				Date:        date,
				SessionType: domain.SessionType(sessionType),
				Description: description,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added session %s on %s (%s)\n", record.ID, record.Date, record.SessionType)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sessionType, "type", "", "Session type, see `scdc legend`")
	cmd.Flags().StringVar(&description, "description", "", "Optional free text")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newSessionListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List session records in store order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.calendar.ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, sessionsJSON(records))
			}

			for _, record := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", record.ID, record.Date, record.SessionType, record.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

func newSessionRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.calendar.RemoveSession(cmd.Context(), domain.SessionID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed session %s\n", args[0])
			return err
		},
	}
}

type sessionJSON struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	SessionType string `json:"sessionType"`
	Description string `json:"description,omitempty"`
}

func sessionsJSON(records []domain.SessionRecord) []sessionJSON {
	out := make([]sessionJSON, 0, len(records))
	for _, record := range records {
		out = append(out, sessionJSON{
			ID:          string(record.ID),
			Date:        record.Date,
			SessionType: string(record.SessionType),
			Description: record.Description,
		})
	}
	return out
}
