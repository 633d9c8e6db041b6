// Package cli implements the taskdeck command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "taskdeck",
	Short:   "Terminal dashboard for task reviews",
	Long:    `Taskdeck is a terminal client for the task management backend: browse the review queue, inspect task audit history, and record quality reviews.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newClient loads configuration and builds an API client from it.
func newClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return api.NewClient(cfg.APIURL, cfg.Token), nil
}
