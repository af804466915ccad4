// Package cmd contains the feedengine CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "feedengine",
	Short: "Feed ranking, search hydration and hide/report service",
	Long: `feedengine serves the post feed over HTTP.

Example usage:
  feedengine serve               # Start the HTTP server
  feedengine healthcheck         # Probe a running server (container healthcheck)
  feedengine version --short     # Print the version`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the CLI and OTel resource.
func SetVersion(v string) {
	version = v
}
