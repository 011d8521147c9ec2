// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pubforge/cli/internal/config"
	oerrors "github.com/pubforge/cli/internal/errors"
	"github.com/pubforge/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded user defaults (set during PersistentPreRunE)
	userConfig *config.Config
)

// NewRootCmd creates the root command for the pubforge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pubforge",
		Short:         "Scaffold and validate pub packages",
		Long: `pubforge generates pub package projects from built-in templates and
validates existing ones against a pub-readiness rule set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PUBFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads user defaults.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.Load(config.LoaderOptions{ConfigFlag: configFlag})
	if err != nil {
		return wrapExit(oerrors.NewConfigurationError(
			err.Error(), configFlag,
			"Check the config file path and YAML syntax.",
		))
	}
	userConfig = loaded

	// Timestamps: flag (if explicitly set) > config > default (off).
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if userConfig.Log.Timestamps != nil {
		logCfg.Timestamps = userConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initialized CLI",
			"config", configFlag,
			"author", userConfig.Author,
			"organization", userConfig.Organization,
		)
	}

	return nil
}

// GetUserConfig returns the loaded user defaults.
func GetUserConfig() *config.Config {
	if userConfig == nil {
		return &config.Config{}
	}
	return userConfig
}
