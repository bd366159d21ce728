package cmd

import (
	"fmt"

	"macnetconfig/internal/pkg/config"
	"macnetconfig/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag string

	// Resolved by loadConfig before any command runs.
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "macnetconfig",
	Short: "macnetconfig toggles a macOS network service between DHCP and a static address",
	Long: `macnetconfig switches a network service such as Wi-Fi between DHCP and a
static IPv4 address in a fixed /24 subnet. Run without a command to start
the menu-bar app.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runTray,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadConfig reads the config file, falling back to the defaults when the
// default file does not exist, and initializes logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error

	configPath = configFlag
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else if configPath, err = config.DefaultConfigPath(); err != nil {
		// Without HOME there is no default file to read.
		configPath = ""
		cfg, err = config.Default(), nil
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	logCfg := cfg.Logging
	if isTrayCommand(cmd) && logCfg.File == "" {
		// A menu-bar app has no terminal to log to.
		if path, err := config.LogFilePath(cfg.State.AppName); err == nil {
			logCfg.File = path
		}
	}
	logging.InitLogger(logCfg)

	logging.GetLogger().WithField("config_file", configPath).Debug("Configuration loaded")

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
}
