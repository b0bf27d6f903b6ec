package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newVideoCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "video",
		Aliases: []string{"videos"},
		Short:   "Manage sport videos",
	}

	cmd.AddCommand(
		newVideoAddCmd(app),
		newVideoListCmd(app),
	)

	return cmd
}

func newVideoAddCmd(app *app) *cobra.Command {
	var input application.AddVideoCommand
	var kind string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a sport video",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Kind = domain.VideoKind(kind)
			video, err := app.bulletin.AddVideo(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added video %s: %s\n", video.ID, video.Title)
			return err
		},
	}

	cmd.Flags().StringVar(&input.Sport, "sport", "", "Sport name")
	cmd.Flags().StringVar(&kind, "kind", "", "Video kind: howToPlay or howToAssist")
	cmd.Flags().StringVar(&input.Title, "title", "", "Video title")
	cmd.Flags().StringVar(&input.URL, "url", "", "Video URL")
	_ = cmd.MarkFlagRequired("sport")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func newVideoListCmd(app *app) *cobra.Command {
	var (
		sport  string
		kind   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List videos for a sport and kind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseVideoKind(kind)
			if err != nil {
				return err
			}

			videos, err := app.bulletin.FindVideos(cmd.Context(), sport, parsed)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]videoJSON, 0, len(videos))
				for _, v := range videos {
					out = append(out, videoJSON{ID: string(v.ID), Sport: v.Sport, Kind: string(v.Kind), Title: v.Title, URL: v.URL})
				}
				return writeJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s: %s\n", parsed.Label(), strings.TrimSpace(sport))
			if len(videos) == 0 {
				_, err = fmt.Fprintln(w, "No videos available.")
				return err
			}
			for _, v := range videos {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", v.Title, v.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sport, "sport", "", "Sport name")
	cmd.Flags().StringVar(&kind, "kind", "", "Video kind: howToPlay or howToAssist")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("sport")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

type videoJSON struct {
	ID    string `json:"id"`
	Sport string `json:"sport"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
