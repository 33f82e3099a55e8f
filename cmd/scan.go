package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firstfu/app-store-crawler/internal/config"
	"github.com/firstfu/app-store-crawler/internal/export"
	"github.com/firstfu/app-store-crawler/internal/itunes"
	"github.com/firstfu/app-store-crawler/internal/prompt"
	"github.com/firstfu/app-store-crawler/internal/review"
	"github.com/firstfu/app-store-crawler/internal/scan"
	"github.com/firstfu/app-store-crawler/internal/ui"
)

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	keyword := ""
	if len(args) > 0 {
		keyword = args[0]
	}
	if keyword == "" {
		keyword, err = prompt.Keyword("Search keyword")
		if err != nil {
			return err
		}
	}

	fmt.Printf("Searching %q on the %s storefront...\n", keyword, cfg.Country)

	collector := review.NewCollector()
	collector.Delay = cfg.RequestDelayDuration()

	scored, err := scan.Run(context.Background(), itunes.NewClient(), collector, keyword, scanOptions(cfg))
	if err != nil {
		return err
	}
	if len(scored) == 0 {
		fmt.Println("No matching apps found.")
		return nil
	}

	return report(cmd, cfg, keyword, scored)
}

func scanOptions(cfg *config.Config) scan.Options {
	return scan.Options{
		Country:     cfg.Country,
		SearchLimit: cfg.SearchLimit,
		ReviewLimit: cfg.ReviewLimit,
		Progress: func(n, total int, app itunes.App) {
			fmt.Printf("  [%d/%d] collecting reviews for %s\n", n, total, app.Name)
		},
	}
}

// report prints the ranking, writes the export file, and optionally shows a
// detail card per app.
func report(cmd *cobra.Command, cfg *config.Config, keyword string, scored []scan.ScoredApp) error {
	fmt.Printf("\nScored %d app(s):\n", len(scored))
	for i, sa := range scored {
		fmt.Println(ui.RankLine(i+1, sa))
	}

	path := export.Filename(cfg.Export.Dir, keyword, cfg.Export.Format, time.Now())
	if err := export.Write(path, cfg.Export.Format, scored); err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}
	fmt.Printf("\nResults saved to %s\n", path)

	verbose := flagVerbose
	if !cmd.Flags().Changed("verbose") {
		v, err := prompt.Confirm("Show detailed app cards?")
		if err != nil {
			return nil // backing out of the prompt is not a failure
		}
		verbose = v
	}
	if verbose {
		for _, sa := range scored {
			fmt.Println(ui.AppCard(sa))
		}
	}
	return nil
}
