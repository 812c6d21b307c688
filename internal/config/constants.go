package config

import "time"

// Application settings.
const (
	AppName     = "leadenricher"
	DBFileName  = "leads.db"
	LogFileName = "leadenricher.log"
)

// Lead derivation.
const (
	// LeadFirstName is the fixed first name given to every lead built from an article.
	LeadFirstName = "Lead from"
)

// Notification texts.
const (
	TitleError   = "Error"
	TitleSuccess = "Success"

	MsgEmptySearchTerm = "Please enter a search term"
	MsgSearchFailed    = "Error fetching news: "
	MsgLeadCreated     = "Lead created successfully!"
	MsgLeadFailed      = "Error creating lead: "
	MsgLeadDuplicate   = "A lead was already created from this article"
	MsgLeadPending     = "A lead for this article is already being created"
	MsgUnknownFailure  = "Unknown error"
	MsgArticleNotFound = "The selected article is no longer in the results"
	MsgExportSucceeded = "Report saved to "
	MsgExportFailed    = "Error exporting results: "
	MsgNothingToExport = "There are no results to export"
)

// Durations and limits.
const (
	ToastLifetime       = 4 * time.Second
	HTTPTimeout         = 20 * time.Second
	FeedTimeout         = 15 * time.Second
	CRMTimeout          = 10 * time.Second
	DefaultSearchLimit  = 25
	MaxSearchLimit      = 100
	NotificationBacklog = 32
)
