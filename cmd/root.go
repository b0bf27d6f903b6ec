package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scdc",
		Short:         "SCDC SMART volunteer CLI: sessions calendar, announcements and registration",
		Long:          "scdc keeps the SCDC SMART volunteer data in a local store: session records shown as a color-coded calendar, announcements, sport videos and volunteer registrations.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(stderrWriter{cmd: rootCmd})
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(app),
		newCalendarCmd(app),
		newLegendCmd(app),
		newAnnouncementCmd(app),
		newVideoCmd(app),
		newRegisterCmd(app),
		newRegistrationCmd(app),
	)

	return rootCmd
}
