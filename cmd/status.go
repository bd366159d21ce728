package cmd

import (
	"context"
	"fmt"
	"strings"

	"macnetconfig/internal/adapter/infrastructure/command"
	"macnetconfig/internal/adapter/infrastructure/networksetup"
	"macnetconfig/internal/types"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current configuration of the network service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		networkMgr := networksetup.NewManagerAdapter(command.NewRunnerAdapter())

		info, err := networkMgr.GetInfo(ctx, cfg.Network.Service)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Service: %s\nMode: %s\nIP: %s\nMask: %s\nRouter: %s\n",
			cfg.Network.Service, mode(info),
			orNone(info.IP), orNone(info.Mask), orNone(info.Router))

		services, err := networkMgr.ListServices(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Services: %s\n", strings.Join(services, ", "))

		return nil
	},
}

func mode(info types.NetworkInfo) string {
	if info.IsDHCP {
		return "DHCP"
	}
	return "Static"
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
