package export

import (
	"fmt"

	"github.com/gingfrederik/docx"

	"github.com/firstfu/app-store-crawler/internal/scan"
)

// WriteDocx renders a readable report document: one section per app with its
// score, listing metadata, and store link.
func WriteDocx(path string, apps []scan.ScoredApp) error {
	f := docx.NewFile()

	title := f.AddParagraph().AddText("App Store Credibility Report")
	title.Size(20)
	f.AddParagraph()

	for i, sa := range apps {
		a := sa.App

		p := f.AddParagraph()
		p.AddText(fmt.Sprintf("%d. %s", i+1, a.Name)).Size(16)

		p = f.AddParagraph()
		run := p.AddText(fmt.Sprintf("Developer: %s | Genre: %s | Price: %s | Version: %s",
			a.Developer, a.Genre, a.PriceLabel(), a.Version))
		run.Size(10)
		run.Color("808080")

		p = f.AddParagraph()
		p.AddText(fmt.Sprintf("Credibility score: %.2f (rating %.1f over %d ratings)",
			sa.Score, a.Rating, a.RatingCount)).Size(12)

		p = f.AddParagraph()
		link := p.AddText(a.StoreURL)
		link.Size(10)
		link.Color("0000FF")

		f.AddParagraph().AddText("--------------------------------------------------")
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
