package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/firstfu/app-store-crawler/internal/scan"
)

var xlsxHeader = []interface{}{
	"App Name", "Developer", "Genre", "Price", "Rating", "Rating Count",
	"Version", "Size (bytes)", "Minimum OS", "Store URL", "Updated",
	"Credibility Score", "Description",
}

// WriteXLSX writes one row per app, flattened; reviews are dropped.
func WriteXLSX(path string, apps []scan.ScoredApp) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, sa := range apps {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		a := sa.App
		row := []interface{}{
			a.Name, a.Developer, a.Genre, a.PriceLabel(), a.Rating,
			a.RatingCount, a.Version, a.SizeBytes, a.MinimumOS, a.StoreURL,
			a.UpdatedAt, sa.Score, a.Description,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
