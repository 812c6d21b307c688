// Package report exports search results to PDF and DOCX files.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"

	dateLayout = "2006-01-02 15:04"
)

// Write picks the writer from the file extension.
func Write(path, term string, articles []models.Article) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtPDF:
		return WritePDF(path, term, articles)
	case ExtDOCX:
		return WriteDOCX(path, term, articles)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func heading(term string) string {
	if term = strings.TrimSpace(term); term == "" {
		return "Lead Research Report"
	}
	return "Lead Research Report: " + term
}

func metaLine(a models.Article) string {
	date := "unknown date"
	if !a.PublishedAt.IsZero() {
		date = a.PublishedAt.Local().Format(dateLayout)
	}
	status := "not created"
	if a.IsCreated {
		status = "created"
	}
	return fmt.Sprintf("Source: %s | Date: %s | Lead: %s", a.Source, date, status)
}

func summaryLine(articles []models.Article) string {
	created := 0
	for _, a := range articles {
		if a.IsCreated {
			created++
		}
	}
	return fmt.Sprintf("Articles: %d | Leads created: %d | Generated: %s",
		len(articles), created, time.Now().Format(dateLayout))
}
