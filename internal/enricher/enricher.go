// Package enricher turns news search results into sales leads.
//
// An Enricher holds the view state of one search screen: the term, the
// current results, and the loading and no-results flags. Each search or
// lead creation is an operation with a generation number; only the most
// recently dispatched operation may clear the loading flag, and only the
// most recent search may replace the results.
package enricher

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/models"
)

// DuplicatePolicy decides whether a second lead may be created from the same article.
type DuplicatePolicy int

const (
	AllowDuplicates DuplicatePolicy = iota
	SuppressDuplicates
)

// ParseDuplicatePolicy maps a config value to a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", config.DuplicatesAllow:
		return AllowDuplicates, nil
	case config.DuplicatesSuppress:
		return SuppressDuplicates, nil
	}
	return AllowDuplicates, fmt.Errorf("unknown duplicate policy %q", s)
}

// ViewState is a snapshot of the search screen.
type ViewState struct {
	SearchTerm   string
	Results      []models.Article
	IsLoading    bool
	HasNoResults bool
}

// Option configures an Enricher.
type Option func(*Enricher)

func WithLogger(log zerolog.Logger) Option {
	return func(e *Enricher) { e.log = log }
}

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(e *Enricher) { e.duplicates = p }
}

// WithKeyFunc overrides article key generation.
func WithKeyFunc(fn func() string) Option {
	return func(e *Enricher) {
		if fn != nil {
			e.newKey = fn
		}
	}
}

// Enricher is safe for concurrent use.
type Enricher struct {
	search     SearchService
	leads      LeadService
	notifier   Notifier
	log        zerolog.Logger
	duplicates DuplicatePolicy
	newKey     func() string

	mu         sync.Mutex
	state      ViewState
	lastOp     uint64
	lastSearch uint64
	pending    map[string]bool // article keys with a lead request in flight
}

func New(search SearchService, leads LeadService, notifier Notifier, opts ...Option) *Enricher {
	if notifier == nil {
		notifier = NotifierFunc(func(models.Notification) {})
	}
	e := &Enricher{
		search:   search,
		leads:    leads,
		notifier: notifier,
		log:      zerolog.Nop(),
		newKey:   uuid.NewString,
		pending:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a snapshot. Results is a fresh slice on every call.
func (e *Enricher) State() ViewState {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.state
	s.Results = append([]models.Article(nil), e.state.Results...)
	return s
}

// SetSearchTerm records the current input value.
func (e *Enricher) SetSearchTerm(term string) {
	e.mu.Lock()
	e.state.SearchTerm = term
	e.mu.Unlock()
}

// Search runs a search for the stored term.
func (e *Enricher) Search(ctx context.Context) error {
	e.mu.Lock()
	term := e.state.SearchTerm
	e.mu.Unlock()
	return e.runSearch(ctx, term)
}

// SearchFor stores term and searches for it.
func (e *Enricher) SearchFor(ctx context.Context, term string) error {
	e.SetSearchTerm(term)
	return e.runSearch(ctx, term)
}

func (e *Enricher) runSearch(ctx context.Context, term string) error {
	if term == "" {
		e.notifyError(config.MsgEmptySearchTerm)
		return ErrEmptySearchTerm
	}

	e.mu.Lock()
	op := e.beginLocked()
	e.lastSearch = op
	e.state.Results = nil
	e.state.HasNoResults = false
	e.mu.Unlock()

	e.log.Debug().Uint64("op", op).Str("term", term).Msg("search dispatched")
	articles, err := e.search.Search(ctx, term)

	e.mu.Lock()
	e.endLocked(op)
	if op != e.lastSearch {
		e.mu.Unlock()
		e.log.Debug().Uint64("op", op).Str("term", term).Msg("discarding stale search response")
		return ErrSuperseded
	}
	if err == nil {
		if len(articles) > 0 {
			e.state.Results = e.ingest(articles)
		} else {
			e.state.HasNoResults = true
		}
	}
	e.mu.Unlock()

	if err != nil {
		e.log.Warn().Err(err).Str("term", term).Msg("search failed")
		e.notifyError(config.MsgSearchFailed + FailureMessage(err))
		return fmt.Errorf("search %q: %w", term, err)
	}
	e.log.Info().Str("term", term).Int("results", len(articles)).Msg("search completed")
	return nil
}

// CreateLead creates a lead from the article with the given key.
func (e *Enricher) CreateLead(ctx context.Context, key string) error {
	e.mu.Lock()
	idx := e.indexLocked(key)
	if idx < 0 {
		e.mu.Unlock()
		e.notifyError(config.MsgLeadFailed + config.MsgArticleNotFound)
		return ErrArticleNotFound
	}
	article := e.state.Results[idx]
	if e.duplicates == SuppressDuplicates {
		if article.IsCreated {
			e.mu.Unlock()
			e.notifyError(config.MsgLeadDuplicate)
			return ErrLeadAlreadyCreated
		}
		if e.pending[key] {
			e.mu.Unlock()
			e.notifyError(config.MsgLeadPending)
			return ErrLeadPending
		}
	}
	e.pending[key] = true
	op := e.beginLocked()
	e.mu.Unlock()

	lead := BuildLeadData(article)
	e.log.Debug().Uint64("op", op).Str("source_url", lead.SourceURL).Msg("lead creation dispatched")
	err := e.leads.CreateLead(ctx, lead)

	e.mu.Lock()
	delete(e.pending, key)
	e.endLocked(op)
	if err == nil {
		// The article may have moved or left the list while the call was in flight.
		if i := e.indexLocked(key); i >= 0 {
			results := append([]models.Article(nil), e.state.Results...)
			results[i].IsCreated = true
			e.state.Results = results
		}
	}
	e.mu.Unlock()

	if err != nil {
		e.log.Warn().Err(err).Str("source_url", lead.SourceURL).Msg("lead creation failed")
		e.notifyError(config.MsgLeadFailed + FailureMessage(err))
		return fmt.Errorf("create lead from %s: %w", lead.SourceURL, err)
	}
	e.log.Info().Str("company", lead.Company).Str("source_url", lead.SourceURL).Msg("lead created")
	e.notifier.Notify(models.Notification{
		Title:   config.TitleSuccess,
		Message: config.MsgLeadCreated,
		Variant: models.VariantSuccess,
	})
	return nil
}

// CreateLeadAt creates a lead from the article at index in the current results.
func (e *Enricher) CreateLeadAt(ctx context.Context, index int) error {
	e.mu.Lock()
	if index < 0 || index >= len(e.state.Results) {
		e.mu.Unlock()
		e.notifyError(config.MsgLeadFailed + config.MsgArticleNotFound)
		return ErrArticleNotFound
	}
	key := e.state.Results[index].Key
	e.mu.Unlock()
	return e.CreateLead(ctx, key)
}

// BuildLeadData derives the lead payload for an article.
func BuildLeadData(a models.Article) models.LeadData {
	return models.LeadData{
		FirstName: config.LeadFirstName,
		LastName:  a.Source,
		Company:   a.Source,
		SourceURL: a.URL,
	}
}

func (e *Enricher) ingest(articles []models.Article) []models.Article {
	out := make([]models.Article, len(articles))
	for i, a := range articles {
		a.Key = e.newKey()
		a.IsCreated = false
		out[i] = a
	}
	return out
}

func (e *Enricher) beginLocked() uint64 {
	e.lastOp++
	e.state.IsLoading = true
	return e.lastOp
}

func (e *Enricher) endLocked(op uint64) {
	if op == e.lastOp {
		e.state.IsLoading = false
	}
}

func (e *Enricher) indexLocked(key string) int {
	if key == "" {
		return -1
	}
	for i, a := range e.state.Results {
		if a.Key == key {
			return i
		}
	}
	return -1
}

func (e *Enricher) notifyError(msg string) {
	e.notifier.Notify(models.Notification{
		Title:   config.TitleError,
		Message: msg,
		Variant: models.VariantError,
	})
}
