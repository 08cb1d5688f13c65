package main

import (
	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

type enrichFlags struct {
	delay     float64
	verbose   bool
	dryRun    bool
	force     bool
	noRelated bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &enrichFlags{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "marquee <file>",
		Short: "Add trailer links and related films to movie CSV files",
		Long: `Marquee enriches movie CSV files in place. It detects the delimiter and
the title, director, and year columns, then fills blank trailer cells with
YouTube links and blank related films cells with the director's most
popular films from TMDB. Existing values are never overwritten.`,
		Version:       appVersion,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runEnrich(cmd, cfg, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().Float64VarP(&flags.delay, "delay", "d", 2.0, "Delay between lookups in seconds")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show detailed progress and search results")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Preview processing without making changes")
	rootCmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip confirmation prompts")
	rootCmd.Flags().BoolVar(&flags.noRelated, "no-related", false, "Skip related films lookups")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))

	return rootCmd
}
