package models

import "time"

// Variant is the display severity of a notification.
type Variant string

const (
	VariantError   Variant = "error"
	VariantSuccess Variant = "success"
)

// Article is a single search result as held by the view.
type Article struct {
	Key         string // Stable per ingestion, assigned by the enricher
	Title       string
	Source      string // Publisher name
	URL         string
	Description string
	PublishedAt time.Time
	FoundBy     string // Provider that returned the article
	IsCreated   bool   // A lead was created from this article
}

// LeadData is the payload handed to the lead service.
type LeadData struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Company   string `json:"Company"`
	SourceURL string `json:"SourceUrl"`
}

// Lead is a persisted lead record.
type Lead struct {
	ID        int64
	FirstName string
	LastName  string
	Company   string
	SourceURL string
	CreatedAt time.Time
}

// Notification is a user-visible toast.
type Notification struct {
	Title   string
	Message string
	Variant Variant
}
