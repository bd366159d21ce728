package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Switch the network service back to DHCP",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := createNetworkConfigurationManager(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if err := manager.Disable(ctx); err != nil {
			return fmt.Errorf("%w; try running with sudo", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: DHCP\n", manager.GetServiceName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
