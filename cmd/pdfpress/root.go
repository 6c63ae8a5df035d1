package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	enginePath string
	verbose    bool
	noColor    bool

	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "pdfpress",
	Short: "Drive a document-formatting engine from the command line",
	Long: `pdfpress wraps an external document-formatting engine: it assembles the
engine command line, streams input and output, and renders the engine's
structured diagnostics.

The engine executable is taken from --engine, the PDFPRESS_ENGINE
environment variable, or the config file, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default $HOME/.pdfpress.yaml)")
	rootCmd.PersistentFlags().StringVar(&enginePath, "engine", "", "engine executable path (overrides PDFPRESS_ENGINE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine invocations")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conv, err := newConverter()
		if err != nil {
			return err
		}
		v, err := conv.EngineVersion(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

func execute() error {
	rootCmd.AddCommand(versionCmd)
	return rootCmd.Execute()
}
