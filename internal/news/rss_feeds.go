package news

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/util"
)

// RSSFeeds pulls a fixed set of feeds and filters them locally by keyword,
// since plain feeds are not queryable.
type RSSFeeds struct {
	Client *http.Client
	Feeds  []string
	Limit  int
	Log    zerolog.Logger
}

func NewRSSFeeds(feeds []string, limit int, log zerolog.Logger) *RSSFeeds {
	return &RSSFeeds{
		Client: &http.Client{Timeout: config.FeedTimeout},
		Feeds:  feeds,
		Limit:  limit,
		Log:    log,
	}
}

func (r *RSSFeeds) Name() string { return "RSS feeds" }

func (r *RSSFeeds) Search(ctx context.Context, term string) ([]models.Article, error) {
	keywords := util.SearchKeywords(term)
	if len(keywords) == 0 || len(r.Feeds) == 0 {
		return nil, nil
	}

	parser := gofeed.NewParser()
	out := make([]models.Article, 0, r.Limit)
	var errs []error

	for _, feedURL := range r.Feeds {
		if r.Limit > 0 && len(out) >= r.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := get(ctx, r.Client, feedURL, "application/rss+xml, application/atom+xml, application/xml", "rss feed")
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", feedURL, err))
			continue
		}
		feed, err := parser.Parse(bytes.NewReader(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", feedURL, err))
			continue
		}

		source := strings.TrimSpace(feed.Title)
		if source == "" {
			source = hostOf(feedURL)
		}

		for _, it := range feed.Items {
			if r.Limit > 0 && len(out) >= r.Limit {
				break
			}
			link := strings.TrimSpace(it.Link)
			if link == "" {
				continue
			}
			if !util.MatchesAnyKeyword(it.Title+" "+it.Description, keywords) {
				continue
			}

			var pub time.Time
			if it.PublishedParsed != nil {
				pub = *it.PublishedParsed
			} else if it.UpdatedParsed != nil {
				pub = *it.UpdatedParsed
			}

			out = append(out, models.Article{
				Title:       strings.TrimSpace(it.Title),
				Source:      source,
				URL:         link,
				Description: descriptionText(it.Description),
				PublishedAt: pub,
				FoundBy:     r.Name(),
			})
		}
	}

	if len(errs) > 0 {
		if len(errs) == len(r.Feeds) {
			return nil, errors.Join(errs...)
		}
		r.Log.Warn().Err(errors.Join(errs...)).Int("failed", len(errs)).Msg("some rss feeds failed")
	}
	return out, nil
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "RSS"
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
