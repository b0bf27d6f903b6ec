package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var input application.SubmitRegistrationCommand

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Submit a volunteer registration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registration, err := app.bulletin.SubmitRegistration(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "Registration submitted successfully!")
			_, _ = fmt.Fprintf(w, "Name: %s\n", registration.Name)
			_, _ = fmt.Fprintf(w, "Email: %s\n", registration.Email)
			_, _ = fmt.Fprintf(w, "Location: %s\n", registration.Location)
			_, _ = fmt.Fprintf(w, "Start date: %s\n", registration.StartDate)
			_, err = fmt.Fprintf(w, "Nearest MTR: %s\n", registration.NearestMTR)
			return err
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Volunteer name")
	cmd.Flags().StringVar(&input.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&input.Location, "location", "", "Preferred location")
	cmd.Flags().StringVar(&input.StartDate, "start-date", "", "Start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&input.NearestMTR, "nearest-mtr", "", "Nearest MTR station")

	return cmd
}

func newRegistrationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "registration",
		Aliases: []string{"registrations"},
		Short:   "Inspect submitted registrations",
	}

	cmd.AddCommand(newRegistrationListCmd(app))

	return cmd
}

func newRegistrationListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submitted registrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registrations, err := app.bulletin.ListRegistrations(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, registrationsJSON(registrations))
			}

			for _, r := range registrations {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Email, r.StartDate, r.NearestMTR)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

type registrationJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	NearestMTR  string `json:"nearestMtr"`
	SubmittedAt string `json:"submittedAt"`
}

func registrationsJSON(registrations []domain.Registration) []registrationJSON {
	out := make([]registrationJSON, 0, len(registrations))
	for _, r := range registrations {
		out = append(out, registrationJSON{
			ID:          string(r.ID),
			Name:        r.Name,
			Email:       r.Email,
			Location:    r.Location,
			StartDate:   r.StartDate,
			NearestMTR:  r.NearestMTR,
			SubmittedAt: r.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
