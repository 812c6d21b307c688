package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/crm"
	"github.com/akyairhashvil/leadenricher/internal/database"
	"github.com/akyairhashvil/leadenricher/internal/enricher"
	"github.com/akyairhashvil/leadenricher/internal/news"
	"github.com/akyairhashvil/leadenricher/internal/notify"
	"github.com/akyairhashvil/leadenricher/internal/tui"
	"github.com/akyairhashvil/leadenricher/internal/util"
)

var errNoTerminal = errors.New("leadenricher needs an interactive terminal")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := checkTerminal(os.Stdout); err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file.
	logFile, err := util.OpenLogFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := util.NewLogger(logFile, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	leads, closeLeads, err := buildLeadService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { util.LogError(log, "close lead service", closeLeads()) }()

	search, err := buildSearch(cfg, log)
	if err != nil {
		return err
	}

	policy, err := enricher.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return err
	}

	notes := notify.NewChannel(config.NotificationBacklog)
	e := enricher.New(search, leads, notify.Multi{notes, notify.NewLog(log)},
		enricher.WithLogger(log),
		enricher.WithDuplicatePolicy(policy),
	)

	log.Info().
		Str("lead_service", cfg.LeadService).
		Str("language", cfg.Language).
		Int("providers", len(search.Providers)).
		Msg("starting")

	model := tui.New(ctx, e, tui.Options{
		Notifications: notes.C(),
		ReportsDir:    util.ReportsDir(config.AppName),
		Theme:         cfg.Theme,
		Log:           log,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if dropped := notes.Dropped(); dropped > 0 {
		log.Warn().Int64("dropped", dropped).Msg("notifications dropped")
	}
	return nil
}

func checkTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return errNoTerminal
	}
	return nil
}

// buildLeadService returns the configured backend and its close function.
func buildLeadService(ctx context.Context, cfg *config.Config, log zerolog.Logger) (enricher.LeadService, func() error, error) {
	switch cfg.LeadService {
	case config.LeadServiceHTTP:
		client, err := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIToken, crm.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return client, func() error { return nil }, nil
	case config.LeadServiceSQLite:
		db, err := database.Open(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open lead store: %w", err)
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown lead service %q", cfg.LeadService)
	}
}

func buildSearch(cfg *config.Config, log zerolog.Logger) (*news.MultiSource, error) {
	lang, err := news.NewLanguageProfile(cfg.Language)
	if err != nil {
		return nil, err
	}
	providers := []news.Provider{
		news.NewGoogleNews(lang, cfg.SearchLimit),
		news.NewRSSFeeds(cfg.Feeds, cfg.SearchLimit, log),
	}
	if cfg.SerpAPIKey != "" {
		providers = append(providers, news.NewSerpAPI(cfg.SerpAPIKey, lang, cfg.SearchLimit))
	}
	return news.NewMultiSource(cfg.SearchLimit, log, providers...), nil
}
