package report

import (
	"github.com/gingfrederik/docx"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

func WriteDOCX(path, term string, articles []models.Article) error {
	f := docx.NewFile()

	run := f.AddParagraph().AddText(heading(term))
	run.Size(20)

	run = f.AddParagraph().AddText(summaryLine(articles))
	run.Size(10)
	run.Color("808080")
	f.AddParagraph()

	if len(articles) == 0 {
		f.AddParagraph().AddText("No results")
	}

	for _, a := range articles {
		run = f.AddParagraph().AddText(a.Title)
		run.Size(16)

		run = f.AddParagraph().AddText(metaLine(a))
		run.Size(10)
		run.Color("808080")

		run = f.AddParagraph().AddText(a.URL)
		run.Size(10)
		run.Color("0000FF")

		if a.Description != "" {
			f.AddParagraph().AddText(a.Description)
		}
		f.AddParagraph().AddText("--------------------------------------------------")
	}

	return f.Save(path)
}
