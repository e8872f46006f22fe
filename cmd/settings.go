package cmd

import (
	"fmt"

	"reading-app-backend/models"
	"reading-app-backend/utils"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the resolved settings with secrets redacted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := utils.GetConfig()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), utils.PrintPrettyJSON(newSettingsView(settings)))
		for _, warning := range utils.Lint(settings) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
		}
		return nil
	},
}

// settingsView is the printable form of the settings
type settingsView struct {
	models.Settings
	CORSOrigins []string `json:"cors_origins"`
}

func newSettingsView(settings *models.Settings) settingsView {
	return settingsView{
		Settings:    settings.Redacted(),
		CORSOrigins: settings.CORSOrigins(),
	}
}
