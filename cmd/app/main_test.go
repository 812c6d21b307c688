package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/crm"
	"github.com/akyairhashvil/leadenricher/internal/database"
)

func testConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.FromEnv(func(key string) string {
		if key == "LEADENRICHER_DATA_DIR" {
			return dir
		}
		return env[key]
	})
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	return cfg
}

func TestBuildLeadServiceSQLite(t *testing.T) {
	cfg := testConfig(t, nil)

	svc, closeFn, err := buildLeadService(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildLeadService: %v", err)
	}
	defer closeFn()

	if _, ok := svc.(*database.Database); !ok {
		t.Fatalf("expected *database.Database, got %T", svc)
	}
	if _, err := os.Stat(filepath.Join(cfg.DataDir, config.DBFileName)); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestBuildLeadServiceHTTP(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"LEAD_SERVICE":  "http",
		"CRM_BASE_URL":  "https://crm.example.com/api",
		"CRM_API_TOKEN": "token",
	})

	svc, closeFn, err := buildLeadService(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildLeadService: %v", err)
	}
	if _, ok := svc.(*crm.Client); !ok {
		t.Fatalf("expected *crm.Client, got %T", svc)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestBuildLeadServiceUnknown(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.LeadService = "carrier-pigeon"

	if _, _, err := buildLeadService(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected an error for an unknown lead service")
	}
}

func TestBuildSearchProviders(t *testing.T) {
	cfg := testConfig(t, nil)
	search, err := buildSearch(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildSearch: %v", err)
	}
	if len(search.Providers) != 2 {
		t.Fatalf("expected Google News and RSS providers, got %d", len(search.Providers))
	}
	if search.Limit != config.DefaultSearchLimit {
		t.Fatalf("expected default limit, got %d", search.Limit)
	}

	cfg = testConfig(t, map[string]string{"SERPAPI_KEY": "key", "SEARCH_LIMIT": "5"})
	search, err = buildSearch(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildSearch: %v", err)
	}
	if len(search.Providers) != 3 || search.Providers[2].Name() != "SerpApi" {
		t.Fatalf("expected SerpApi provider to be added")
	}
	if search.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", search.Limit)
	}
}

func TestBuildSearchRejectsBadLanguage(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.Language = "english"

	if _, err := buildSearch(cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected an error for a malformed language")
	}
}

func TestCheckTerminalRejectsFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if err := checkTerminal(f); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}
}
