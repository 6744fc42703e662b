// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the grantscout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/grantscout/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the grantscout CLI.
var rootCmd = &cobra.Command{
	Use:   "grantscout",
	Short: "Look up active NIH and NSF funding for a principal investigator",
	Long: `grantscout queries the NIH RePORTER and NSF award-search APIs for funded
projects matching a principal investigator's exact first name, last name,
and institution names, and prints the matching awards.

Use "search" for the combined NIH + NSF lookup or "reporter" for an
NIH-only paginated search with support-year deduplication.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./grantscout.yaml or ~/.config/grantscout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("grantscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "grantscout"))
		}
	}

	viper.SetDefault("http.timeout", "60s")
	viper.SetDefault("http.user_agent", "grantscout/0.1")
	viper.SetDefault("search.page_size", 50)
	viper.SetDefault("search.max_records", 0)
	viper.SetDefault("sources.reporter", true)
	viper.SetDefault("sources.nsf", true)

	viper.SetEnvPrefix("GRANTSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
