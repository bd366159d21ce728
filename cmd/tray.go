package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"macnetconfig/internal/adapter/infrastructure/command"
	"macnetconfig/internal/adapter/infrastructure/networksetup"
	"macnetconfig/internal/pkg/config"
	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/tray"

	"github.com/spf13/cobra"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Run the menu-bar app",
	RunE:  runTray,
}

// isTrayCommand reports whether cmd starts the menu-bar app, which is also
// what the root command does.
func isTrayCommand(cmd *cobra.Command) bool {
	return cmd.Name() == "tray" || !cmd.HasParent()
}

func runTray(cmd *cobra.Command, args []string) error {
	logger := logging.WithComponentAndService("tray", cfg.Network.Service)
	logger.WithField("config_file", configPath).Info("Starting menu-bar app")

	manager, err := createNetworkConfigurationManager(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	warnUnknownService(ctx, networksetup.NewManagerAdapter(command.NewRunnerAdapter()), cfg.Network.Service)

	reloads := make(chan tray.Event)
	go watchConfig(ctx, reloads)

	err = tray.Run(ctx, func(t tray.Tray) *tray.App {
		return tray.NewApp(t, manager)
	}, reloads)
	if err != nil {
		return err
	}

	logger.Info("Menu-bar app stopped")

	return nil
}

// watchConfig rebuilds the manager whenever the config file changes and
// hands it to the event loop.
func watchConfig(ctx context.Context, reloads chan<- tray.Event) {
	logger := logging.WithComponent("config")

	if configPath == "" {
		return
	}
	if _, err := os.Stat(filepath.Dir(configPath)); err != nil {
		logger.WithField("path", configPath).Debug("Config directory missing, not watching")
		return
	}

	err := config.Watch(ctx, configPath, func(c *config.Config) {
		manager, err := createNetworkConfigurationManager(c)
		if err != nil {
			logger.WithError(err).Warn("Ignoring config change")
			return
		}

		select {
		case reloads <- tray.Event{Kind: tray.EventReconfigure, Manager: manager}:
		case <-ctx.Done():
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Warn("Config watcher stopped")
	}
}

func init() {
	rootCmd.AddCommand(trayCmd)
}
