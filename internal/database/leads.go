package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

// CreateLead validates and stores a lead. LastName and Company are required.
func (d *Database) CreateLead(ctx context.Context, lead models.LeadData) error {
	var missing []string
	if strings.TrimSpace(lead.LastName) == "" {
		missing = append(missing, "LastName")
	}
	if strings.TrimSpace(lead.Company) == "" {
		missing = append(missing, "Company")
	}
	if len(missing) > 0 {
		return wrapLeadErr("create", 0, fmt.Errorf("%w: [%s]", ErrMissingField, strings.Join(missing, ", ")))
	}

	_, err := d.DB.ExecContext(ctx,
		`INSERT INTO leads (first_name, last_name, company, source_url, created_at) VALUES (?, ?, ?, ?, ?)`,
		lead.FirstName, lead.LastName, lead.Company, nullableString(lead.SourceURL), time.Now().UTC())
	return wrapLeadErr("create", 0, err)
}

// ListLeads returns all leads, newest first.
func (d *Database) ListLeads(ctx context.Context) ([]models.Lead, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, first_name, last_name, company, COALESCE(source_url, ''), created_at
		FROM leads
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, wrapLeadErr("list", 0, err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.FirstName, &l.LastName, &l.Company, &l.SourceURL, &l.CreatedAt); err != nil {
			return nil, wrapLeadErr("scan", l.ID, err)
		}
		leads = append(leads, l)
	}
	return leads, wrapLeadErr("list", 0, rows.Err())
}

// CountLeadsForURL reports how many leads were created from an article URL.
func (d *Database) CountLeadsForURL(ctx context.Context, sourceURL string) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM leads WHERE source_url = ?`, sourceURL).Scan(&n)
	return n, wrapLeadErr("count", 0, err)
}
