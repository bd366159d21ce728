package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"macnetconfig/internal/adapter/infrastructure/file"
	"macnetconfig/internal/adapter/infrastructure/launchd"
	"macnetconfig/internal/pkg/config"

	"github.com/spf13/cobra"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage starting the menu-bar app at login",
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the menu-bar app at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		agents, err := newAgentManager()
		if err != nil {
			return err
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}

		programArgs := []string{exe, "tray"}
		if configFlag != "" {
			abs, err := filepath.Abs(configFlag)
			if err != nil {
				return err
			}
			programArgs = append(programArgs, "--config", abs)
		}

		logFile, err := config.LogFilePath(cfg.State.AppName)
		if err != nil {
			return err
		}

		verb := "Installed"
		if agents.Installed() {
			verb = "Updated"
		}

		if err := agents.Install(programArgs, logFile); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, agents.Path())
		return nil
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting the menu-bar app at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		agents, err := newAgentManager()
		if err != nil {
			return err
		}

		if !agents.Installed() {
			fmt.Fprintln(cmd.OutOrStdout(), "Autostart is not enabled")
			return nil
		}

		if err := agents.Uninstall(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", agents.Path())
		return nil
	},
}

func newAgentManager() (*launchd.AgentManager, error) {
	dir, err := config.LaunchAgentsDir()
	if err != nil {
		return nil, err
	}

	return launchd.NewAgentManager(dir, launchd.DefaultLabel, file.NewManagerAdapter()), nil
}

func init() {
	autostartCmd.AddCommand(autostartEnableCmd, autostartDisableCmd)
	rootCmd.AddCommand(autostartCmd)
}
