// Package cmd defines the command-line interface for milestones.
package cmd

import (
	"strings"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(yearCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for parquet)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for the weekly average (1 or 2)")
	rootCmd.PersistentFlags().String("locale", "", "BCP 47 locale for dates and numbers ("+strings.Join(calendar.SupportedLocales(), ", ")+")")
	rootCmd.PersistentFlags().String("color", contract.DefaultColor, "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", contract.DefaultEmoji, "Enable emojis in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("placeholder", schema.DefaultPlaceholder, "Text shown for values that cannot be estimated")
	rootCmd.PersistentFlags().String("today", "", "Observation date as YYYY-MM-DD (defaults to the local date)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log resolved configuration and results to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of calcCmd to Viper
	calcCmd.Flags().IntP("count", "c", 0, "Number of qualifying days counted so far")
	calcCmd.Flags().String("start", "", "Start date as YYYY-MM-DD (defaults to January 1 of today's year)")
	calcCmd.Flags().String("thresholds", schema.FormatThresholds(schema.DefaultThresholds, ","), "Comma-separated ascending milestone thresholds")
	if err := viper.BindPFlags(calcCmd.Flags()); err != nil {
		contract.LogFatal("Error binding calc flags", err)
	}

	// Bind all flags of yearCmd to Viper
	yearCmd.Flags().Int("year", 0, "Year to describe (defaults to the year of --today)")
	if err := viper.BindPFlags(yearCmd.Flags()); err != nil {
		contract.LogFatal("Error binding year flags", err)
	}
}
