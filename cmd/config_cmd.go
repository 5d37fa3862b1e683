package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"personal-site/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# Config file: %s\n", configPath())
	if config.Exists(flagConfig) {
		fmt.Fprintln(out, "# Status: loaded (environment overrides applied)")
	} else {
		fmt.Fprintln(out, "# Status: using defaults (no config file)")
	}
	shown := cfg
	if shown.Cache.RedisPassword != "" {
		shown.Cache.RedisPassword = "********"
	}
	return toml.NewEncoder(out).Encode(shown)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if config.Exists(flagConfig) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath())
	}
	if err := config.Save(flagConfig, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", configPath())
	return nil
}
