// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the list-outputs CLI. Run with no
// arguments it prints a Markdown image reference for every file in ./outputs.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/list-outputs/internal/gallery"
	"github.com/pdiddy/list-outputs/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	keySourceDir = "source_dir"
	keyLogLevel  = "log_level"
)

// rootCmd is the base command for the list-outputs CLI.
var rootCmd = &cobra.Command{
	Use:   "list-outputs",
	Short: "Print Markdown image references for files in an output directory",
	Long: `list-outputs reads the direct children of the output directory
(./outputs by default) and prints one Markdown image reference per entry:

  ![cat](outputs/cat.png)

The label is the file name without its last extension; the link target is
the entry path with a leading "./" removed. Entries are listed in file name
order and are not filtered or recursed into.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(viper.GetString(keyLogLevel))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		_, err := gallery.Run(listerConfig(), cmd.OutOrStdout())
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./list-outputs.yaml or ~/.config/list-outputs/config.yaml)")
	rootCmd.PersistentFlags().String("dir", types.DefaultSourceDir, "directory whose entries are listed")
	rootCmd.PersistentFlags().String("log-level", "warn", "stderr log level: debug, info, warn, error")

	_ = viper.BindPFlag(keySourceDir, rootCmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetDefault(keySourceDir, types.DefaultSourceDir)
	viper.SetDefault(keyLogLevel, "warn")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("list-outputs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "list-outputs"))
		}
	}

	viper.SetEnvPrefix("LIST_OUTPUTS")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		logrus.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	case !errors.As(err, &notFound):
		logrus.WithError(err).Warn("Could not read config file")
	}
}

// listerConfig assembles the lister settings from flags, environment, and
// the config file.
func listerConfig() types.ListerConfig {
	return types.ListerConfig{
		SourceDir: viper.GetString(keySourceDir),
	}.WithDefaults()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
