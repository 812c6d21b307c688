package report

import (
	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

func WritePDF(path, term string, articles []models.Article) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(heading(term), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, tr(heading(term)), "", "", false)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.Cell(0, 8, tr(summaryLine(articles)))
	pdf.Ln(12)

	if len(articles) == 0 {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "I", 12)
		pdf.Cell(0, 8, "No results")
		pdf.Ln(8)
	}

	for i, a := range articles {
		mark := "[ ]"
		if a.IsCreated {
			mark = "[x]"
		}

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, tr(mark+" "+a.Title), "", "", false)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(128, 128, 128)
		pdf.MultiCell(0, 5, tr(metaLine(a)), "", "", false)

		pdf.SetTextColor(0, 0, 255)
		pdf.MultiCell(0, 5, tr(a.URL), "", "", false)

		if a.Description != "" {
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(a.Description), "", "", false)
		}
		if i < len(articles)-1 {
			pdf.Ln(4)
		}
	}

	return pdf.OutputFileAndClose(path)
}
