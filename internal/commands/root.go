package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/roadlog/internal/app"
	"github.com/balkashynov/roadlog/internal/config"
	"github.com/balkashynov/roadlog/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "roadlog",
	Short: "A CLI driving-hours logbook",
	Long: `roadlog tracks supervised driving sessions toward your license goals.
Log drives, watch day and night hour totals grow, and keep a daily streak
alive with monthly freeze days.`,
}

// openApp wires config, storage and the state coordinator. Callers must
// Close the coordinator so queued saves reach disk.
func openApp() (*app.Coordinator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log := cfg.Logger()
	st := store.New(store.OSStorage{}, cfg.DataDir, log)
	return app.New(st, time.Now, log), nil
}

// requireOnboarding prints a setup hint when the wizard has not been
// completed yet.
func requireOnboarding(c *app.Coordinator) bool {
	if c.Document().User.OnboardingComplete {
		return true
	}
	fmt.Println("roadlog is not set up yet. Run 'roadlog setup' first.")
	return false
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roadlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(freezeCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
