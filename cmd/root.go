package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firstfu/app-store-crawler/internal/config"
	"github.com/firstfu/app-store-crawler/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagCountry string
	flagLimit   int
	flagReviews int
	flagFormat  string
	flagOut     string
	flagVerbose bool
	flagCheck   bool
)

var rootCmd = &cobra.Command{
	Use:   "appscan [keyword]",
	Short: "Search the App Store and rank apps by credibility",
	Long: `appscan searches the App Store catalog for a keyword, collects customer
reviews for every hit, scores each app's credibility from its rating volume,
review quality, rating distribution, and update recency, and exports the
ranked results to a spreadsheet, JSON, or report document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file")
	pf.StringVar(&flagCountry, "country", "", "two-letter storefront country code")
	pf.IntVar(&flagReviews, "reviews", 0, "max reviews collected per app")
	pf.StringVar(&flagFormat, "format", "", "export format: xlsx, json, or docx")
	pf.StringVar(&flagOut, "out", "", "output directory")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "print a detail card per app")

	rootCmd.Flags().IntVar(&flagLimit, "limit", 0, "max search results")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(topCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("appscan %s (commit: %s, built: %s)\n", version, commit, date)
		if flagCheck {
			if latest, ok := update.Check(context.Background(), version); ok {
				fmt.Printf("A newer release is available: %s\n", latest)
			} else {
				fmt.Println("Up to date.")
			}
		}
	},
}

// loadConfig reads the config file and layers any explicitly-set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("country") {
		cfg.Country = flagCountry
	}
	if cmd.Flags().Changed("limit") {
		cfg.SearchLimit = flagLimit
	}
	if cmd.Flags().Changed("reviews") {
		cfg.ReviewLimit = flagReviews
	}
	if cmd.Flags().Changed("format") {
		cfg.Export.Format = flagFormat
	}
	if cmd.Flags().Changed("out") {
		cfg.Export.Dir = flagOut
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
