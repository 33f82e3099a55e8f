package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firstfu/app-store-crawler/internal/charts"
	"github.com/firstfu/app-store-crawler/internal/itunes"
	"github.com/firstfu/app-store-crawler/internal/review"
	"github.com/firstfu/app-store-crawler/internal/scan"
)

var (
	flagChartKind  string
	flagChartCount int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Score the storefront's top-chart apps",
	Long:  "Fetch the top free or paid applications chart, resolve each entry in the catalog, and run the same review collection and credibility scoring as a keyword search.",
	RunE:  runTop,
}

func init() {
	topCmd.Flags().StringVar(&flagChartKind, "kind", "free", "chart to scan: free or paid")
	topCmd.Flags().IntVar(&flagChartCount, "count", 25, "number of chart entries")
}

func runTop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind := charts.Kind(flagChartKind)

	ctx := context.Background()
	fmt.Printf("Fetching top %s applications for %s...\n", kind, cfg.Country)

	ids, err := charts.NewFeed().TopAppIDs(ctx, cfg.Country, kind, flagChartCount)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("Chart feed returned no entries.")
		return nil
	}

	apps, err := itunes.NewClient().Lookup(ctx, ids, cfg.Country)
	if err != nil {
		return fmt.Errorf("resolving chart entries: %w", err)
	}

	collector := review.NewCollector()
	collector.Delay = cfg.RequestDelayDuration()
	scored := scan.ScoreApps(ctx, collector, apps, scanOptions(cfg))

	return report(cmd, cfg, "top_"+string(kind), scored)
}
