// Package main provides the entry point for the ivtree CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/ivtree/cmd/ivtree/commands"
	"github.com/Sumatoshi-tech/ivtree/pkg/version"
)

var (
	verbose    bool
	quiet      bool
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ivtree",
		Short: "ivtree - build and query an in-memory interval tree",
		Long: `ivtree is a demonstration and debugging harness around the
pkg/ivtree augmented red-black interval tree container.

Commands:
  insert    Insert a list of intervals and report the resulting size
  find      Print every interval overlapping a query range
  dump      Print the tree shape and audit its invariants`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log only warnings and errors")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (viper: yaml/json/toml)")

	rootCmd.AddCommand(commands.NewInsertCommand())
	rootCmd.AddCommand(commands.NewFindCommand())
	rootCmd.AddCommand(commands.NewDumpCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() error {
	if configFile == "" {
		return nil
	}

	viper.SetConfigFile(configFile)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("ivtree: reading config file %s: %w", configFile, err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ivtree %s\n", version.String())
		},
	}
}
