// Isminet is a command-line companion for UniFi Network controllers.
//
// It reads controller access settings from the environment (UNIFI_API_KEY,
// UNIFI_HOST and friends), queries the controller through the typed client,
// and prints the results as plain text.
//
// Usage:
//
//	isminet [command] [flags]
//
// See 'isminet --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isminet",
	Short: "UniFi Network controller companion",
	Long: `Query a UniFi Network controller from the command line.

Controller access is configured through the environment:

  UNIFI_API_KEY      API key (required)
  UNIFI_HOST         controller host (required)
  UNIFI_PORT         controller port (default 8443)
  UNIFI_SITE         site name (default "default")
  UNIFI_VERIFY_SSL   verify the controller certificate (default false)

A YAML settings file can supply the same values; environment variables win.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
