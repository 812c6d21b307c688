package database

import (
	"context"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

// LeadRepository defines lead-related database operations.
type LeadRepository interface {
	CreateLead(ctx context.Context, lead models.LeadData) error
	ListLeads(ctx context.Context) ([]models.Lead, error)
	CountLeadsForURL(ctx context.Context, sourceURL string) (int, error)
}

var _ LeadRepository = (*Database)(nil)
