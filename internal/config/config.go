package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/akyairhashvil/leadenricher/internal/util"
)

// Lead service backends.
const (
	LeadServiceSQLite = "sqlite"
	LeadServiceHTTP   = "http"
)

// Duplicate lead policies.
const (
	DuplicatesAllow    = "allow"
	DuplicatesSuppress = "suppress"
)

// DefaultFeeds are pulled and filtered locally on every search.
var DefaultFeeds = []string{
	"https://feeds.bbci.co.uk/news/world/rss.xml",
	"https://www.theguardian.com/world/rss",
	"https://rss.nytimes.com/services/xml/rss/nyt/World.xml",
	"https://www.aljazeera.com/xml/rss/all.xml",
}

// Error reports an invalid configuration value.
type Error struct {
	Key    string
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s=%q: %s", e.Key, e.Value, e.Reason)
}

// Config is the runtime configuration.
type Config struct {
	DataDir         string
	SQLiteDSN       string
	LeadService     string
	CRMBaseURL      string
	CRMAPIToken     string
	Feeds           []string
	Language        string
	SerpAPIKey      string
	SearchLimit     int
	DuplicatePolicy string
	LogLevel        string
	LogFile         string
	Theme           string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		DataDir:         get("LEADENRICHER_DATA_DIR", util.DataDir(AppName)),
		LeadService:     strings.ToLower(get("LEAD_SERVICE", LeadServiceSQLite)),
		CRMBaseURL:      get("CRM_BASE_URL", ""),
		CRMAPIToken:     get("CRM_API_TOKEN", ""),
		Language:        get("NEWS_LANGUAGE", "en-US"),
		SerpAPIKey:      get("SERPAPI_KEY", ""),
		DuplicatePolicy: strings.ToLower(get("DUPLICATE_LEADS", DuplicatesAllow)),
		LogLevel:        strings.ToLower(get("LOG_LEVEL", "info")),
		Theme:           strings.ToLower(get("THEME", "default")),
		SearchLimit:     DefaultSearchLimit,
	}
	cfg.SQLiteDSN = get("LEADS_SQLITE_DSN", filepath.Join(cfg.DataDir, DBFileName))
	cfg.LogFile = get("LOG_FILE", filepath.Join(cfg.DataDir, LogFileName))
	cfg.Feeds = splitList(get("NEWS_FEEDS", ""))
	if len(cfg.Feeds) == 0 {
		cfg.Feeds = append([]string(nil), DefaultFeeds...)
	}

	if raw := get("SEARCH_LIMIT", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxSearchLimit {
			return nil, &Error{Key: "SEARCH_LIMIT", Value: raw, Reason: fmt.Sprintf("must be between 1 and %d", MaxSearchLimit)}
		}
		cfg.SearchLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and backend requirements.
func (c *Config) Validate() error {
	switch c.LeadService {
	case LeadServiceSQLite:
	case LeadServiceHTTP:
		if c.CRMBaseURL == "" {
			return &Error{Key: "CRM_BASE_URL", Value: "", Reason: "required when LEAD_SERVICE=http"}
		}
	default:
		return &Error{Key: "LEAD_SERVICE", Value: c.LeadService, Reason: "must be sqlite or http"}
	}
	switch c.DuplicatePolicy {
	case DuplicatesAllow, DuplicatesSuppress:
	default:
		return &Error{Key: "DUPLICATE_LEADS", Value: c.DuplicatePolicy, Reason: "must be allow or suppress"}
	}
	if _, _, err := SplitLanguage(c.Language); err != nil {
		return &Error{Key: "NEWS_LANGUAGE", Value: c.Language, Reason: err.Error()}
	}
	return nil
}

// SplitLanguage turns "en-US" into ("en", "US").
func SplitLanguage(tag string) (lang, region string, err error) {
	parts := strings.Split(tag, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New("expected language-REGION, e.g. en-US")
	}
	return strings.ToLower(parts[0]), strings.ToUpper(parts[1]), nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
