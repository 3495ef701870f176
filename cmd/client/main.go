package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-story-keeper/internal/client"
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(buildInfo()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

// runClient loads the configuration from the command's flags and runs the
// client until ctx is canceled or the user quits.
func runClient(cmd *cobra.Command, opts client.Options) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = opts.BuildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("story-keeper-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cmd.Context(), cfg, opts, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}
	defer app.Close()

	if err = app.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}
