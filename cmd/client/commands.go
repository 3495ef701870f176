package main

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/client"
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/spf13/cobra"
)

const flagPage = "page"

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "story-keeper",
		Short: "Local-first client for the story sharing API",
		Long: `Local-first client for the story sharing API.

Runs the terminal UI together with the caching proxy and the push receiver.
Favorites and stories shared while offline are kept in a local database.

Examples:
  story-keeper
  story-keeper --page /favorites
  story-keeper serve -l localhost:8787
  story-keeper keys`,
		SilenceUsage: true,
		Version:      info.BuildVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetString(flagPage)
			return runClient(cmd, client.Options{StartPage: page, BuildInfo: info})
		},
	}
	config.BindFlags(root.PersistentFlags())
	root.Flags().String(flagPage, "/", "page the UI opens on, e.g. /favorites")

	root.AddCommand(newServeCmd(info), newKeysCmd(), newVersionCmd(info))
	return root
}

func newServeCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the caching proxy and the push receiver without the UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(cmd, client.Options{Headless: true, BuildInfo: info})
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Generate a VAPID key pair for a push-sending server",
		Long: `Generate a VAPID key pair for a push-sending server.

The public key goes into --vapid-public-key; the private key stays with
the server that sends the pushes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := push.GenerateVAPIDKeys()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(keys)
		},
	}
}

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
		},
	}
}
