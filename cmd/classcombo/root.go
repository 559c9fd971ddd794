package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classcombo [path]",
	Short: "Find repeated CSS class combinations in HTML files",
	Long: `Scan a directory of HTML files and report every combination of classes
that appears on more than one element. Class order and duplicates are ignored,
so class="btn btn--primary" and class="btn--primary btn" are the same combination.`,
	// Default behavior: analyze the given path when no subcommand is given.
	// loadConfig runs here because PreRunE of analyzeCmd is not triggered
	// when delegating via rootCmd.RunE.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("you must provide the path argument")
		}
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runAnalyze(cmd, args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	addAnalyzeFlags(rootCmd)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
