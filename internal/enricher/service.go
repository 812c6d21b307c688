package enricher

import (
	"context"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

// SearchService returns articles for a search term. An empty slice is a valid answer.
type SearchService interface {
	Search(ctx context.Context, term string) ([]models.Article, error)
}

// LeadService persists a lead.
type LeadService interface {
	CreateLead(ctx context.Context, lead models.LeadData) error
}

// Notifier displays notifications. Notify must not block.
//
//go:generate mockgen -source=service.go -destination=mock_service_test.go -package=enricher
type Notifier interface {
	Notify(n models.Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(models.Notification)

func (f NotifierFunc) Notify(n models.Notification) { f(n) }
