package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reading-app-backend/controller"
	"reading-app-backend/models"
	"reading-app-backend/utils"
	"reading-app-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reading-app",
	Short: "Reading App backend",
	Long: `Reading App backend serves the application identity and health endpoints.

Settings come from the process environment, with an optional .env file in the
working directory overriding individual variables.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server on 0.0.0.0:8000",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := utils.GetConfig()
	if err != nil {
		return err
	}

	log := logger.NewLogger(settings.LogLevel, settings.LogFormat)
	for _, warning := range utils.Lint(settings) {
		log.Warn(warning)
	}

	setGinMode(settings)
	r := controller.NewRouter(settings, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("%s %s starting in %s environment", settings.AppName, settings.AppVersion, settings.Environment)
	return controller.Serve(ctx, controller.ServerAddr(), r, log)
}

func setGinMode(settings *models.Settings) {
	if settings.Debug {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
