package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/spf13/cobra"
)

func newAnnouncementCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "announcement",
		Aliases: []string{"announcements"},
		Short:   "Post and read announcements",
	}

	cmd.AddCommand(
		newAnnouncementAddCmd(app),
		newAnnouncementListCmd(app),
	)

	return cmd
}

func newAnnouncementAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT",
		Short: "Post an announcement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			announcement, err := app.bulletin.PostAnnouncement(cmd.Context(), application.PostAnnouncementCommand{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "posted announcement %s\n", announcement.ID)
			return err
		},
	}
}

func newAnnouncementListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			announcements, err := app.bulletin.ListAnnouncements(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]announcementJSON, 0, len(announcements))
				for _, a := range announcements {
					out = append(out, announcementJSON{ID: string(a.ID), Text: a.Text, CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339)})
				}
				return writeJSON(cmd, out)
			}

			if len(announcements) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No announcements available.")
				return err
			}

			for _, a := range announcements {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.CreatedAt.UTC().Format(time.RFC3339), a.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

type announcementJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}
