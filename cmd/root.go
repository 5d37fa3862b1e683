// Package cmd implements the personal-site CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"personal-site/config"
	"personal-site/logging"
)

var (
	flagConfig string
	flagDebug  bool
	flagLocale string
	flagJSON   bool
)

// cfg is loaded once per invocation by the root pre-run hook.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "personal-site",
	Short: "Personal site backend and financial calculators",
	Long: "Serve the financial projection API, run SIP, lump sum, inflation and goal\n" +
		"calculations from the terminal, and manage tasks, videos, quotes and blogs.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Locale for amounts, e.g. en-IN or en-US")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
}

func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded
	if flagLocale != "" {
		cfg.Display.Locale = flagLocale
	}

	_, err = logging.Setup(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Debug:  flagDebug,
	}, os.Stderr)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	slog.Debug("config loaded", "path", configPath(), "exists", config.Exists(flagConfig))
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}
