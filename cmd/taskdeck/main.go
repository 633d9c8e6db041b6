package main

import (
	"fmt"
	"os"

	"taskdeck/internal/api"
	"taskdeck/internal/cli"
	"taskdeck/internal/config"
	"taskdeck/internal/session"
	"taskdeck/internal/tui"
)

func main() {
	// If no args, launch TUI; otherwise route to CLI
	if len(os.Args) == 1 {
		if err := runTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sess, err := session.FromToken(cfg.Token)
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIURL, cfg.Token)
	return tui.Run(client, sess)
}
