package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scantab",
	Short: "Convert scanned PDF tables into structured spreadsheets",
	Long: `Scantab converts scanned or photographed PDF tables into structured
XLSX workbooks without document-specific hardcoding.

The pipeline rasterizes each page, runs OCR to obtain positioned text
fragments, then reconstructs table structure adaptively:
  - Density-based clustering groups fragments into table regions
  - Lexical scoring finds the header row and derives column bands
  - Remaining fragments are aligned into a row-major grid
  - Each column's data type is inferred and OCR errors repaired per type`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.scantab/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scantab %s\n", Version)
	},
}
