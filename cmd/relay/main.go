package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set by -ldflags "-X main.version=...".
var version = "dev"

// @title       Webhook Relay API
// @description Relays GitHub webhook events to chat sinks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "relay",
		Short:         "Relay GitHub webhooks to Slack, Telegram, IRC and friends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: search ./config, ., /etc/app/)")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newFormatCmd(&configPath),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
