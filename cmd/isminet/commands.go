package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isminet/isminet/observability"
	"github.com/isminet/isminet/recommend"
	"github.com/isminet/isminet/settings"
	"github.com/isminet/isminet/unifi"
)

var settingsFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "Path to a YAML settings file (environment wins)")

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(checkCmd)
}

// connect loads settings, builds the logger, and constructs the client.
func connect() (unifi.Client, observability.Logger, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	logger, err := observability.NewLogger(s.LoggerConfig())
	if err != nil {
		return nil, nil, err
	}
	s.LogWarnings(logger)

	client, err := unifi.NewWithConfig(&unifi.Config{
		ControllerURL: s.BaseURL(),
		APIKey:        s.APIKey,
		Site:          s.Site,
		APIVersion:    s.APIVersion,
		VerifySSL:     s.VerifySSL,
		Timeout:       s.TimeoutDuration(),
		Logger:        logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, logger, nil
}

func loadSettings() (*settings.Settings, error) {
	if settingsFile != "" {
		return settings.LoadFile(settingsFile)
	}
	return settings.Load()
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the site's devices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, logger, err := connect()
		if err != nil {
			return err
		}
		defer observability.Sync(logger)

		devices, err := client.ListDevices(cmd.Context())
		if err != nil {
			return err
		}
		for i := range devices {
			d := &devices[i]
			fmt.Printf("%-18s %-8s %-20s %s\n", d.MAC, d.Type, d.Name, d.Version)
		}
		fmt.Printf("\n%d device(s)\n", len(devices))
		return nil
	},
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List the site's connected clients",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, logger, err := connect()
		if err != nil {
			return err
		}
		defer observability.Sync(logger)

		stations, err := client.ListClients(cmd.Context())
		if err != nil {
			return err
		}
		for i := range stations {
			c := &stations[i]
			fmt.Printf("%-18s %-16s %s\n", c.MAC, c.IP, c.Hostname)
		}
		fmt.Printf("\n%d client(s)\n", len(stations))
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show controller subsystem health",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, logger, err := connect()
		if err != nil {
			return err
		}
		defer observability.Sync(logger)

		reports, err := client.ListHealth(cmd.Context())
		if err != nil {
			return err
		}
		for i := range reports {
			h := &reports[i]
			fmt.Printf("%-12s %s\n", h.Subsystem, h.Status)
		}
		return nil
	},
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List sites visible to the API key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, logger, err := connect()
		if err != nil {
			return err
		}
		defer observability.Sync(logger)

		sites, err := client.ListSites(cmd.Context())
		if err != nil {
			return err
		}
		for i := range sites {
			s := &sites[i]
			fmt.Printf("%-16s %s\n", s.Name, s.Description)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the wireless configuration against Apple's recommendations",
	Long: `Gather the site's wireless configuration and evaluate it against
Apple's Wi-Fi network recommendations. Each check prints pass, warn, or
fail with a short explanation; the command exits non-zero when any check
fails.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, logger, err := connect()
		if err != nil {
			return err
		}
		defer observability.Sync(logger)

		report, err := runChecks(cmd.Context(), client)
		if err != nil {
			return err
		}
		for _, res := range report.Results {
			fmt.Printf("%-4s %-22s %s\n", res.Severity, res.Check, res.Detail)
		}
		if failed := report.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d check(s) failed", len(failed))
		}
		return nil
	},
}

func runChecks(ctx context.Context, client unifi.Client) (*recommend.Report, error) {
	snap, err := recommend.Collect(ctx, client)
	if err != nil {
		return nil, err
	}
	return recommend.Evaluate(snap), nil
}
