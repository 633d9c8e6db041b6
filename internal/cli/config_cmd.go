package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/config"
	"taskdeck/internal/session"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, err := config.Path()
	if err != nil {
		return err
	}

	fmt.Printf("config file: %s\n", path)
	fmt.Printf("api_url: %s\n", cfg.APIURL)
	if cfg.Token == "" {
		fmt.Println("token: (not set)")
		return nil
	}
	fmt.Println("token: (set)")

	sess, err := session.FromToken(cfg.Token)
	if err != nil {
		fmt.Printf("session: invalid token (%v)\n", err)
		return nil
	}
	fmt.Printf("session: %s (%s), role %s\n", sess.FullName, sess.UserID, sess.Role)
	return nil
}
