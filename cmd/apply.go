package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Switch the network service to a static address",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := createNetworkConfigurationManager(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		ip, err := manager.Enable(ctx)
		if err != nil {
			return fmt.Errorf("%w; try running with sudo", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: static %s\n", manager.GetServiceName(), ip)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
