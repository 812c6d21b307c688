package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	g "github.com/serpapi/google-search-results-golang"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

// serpDateLayout is the format of the "date" field in google_news results.
const serpDateLayout = "01/02/2006, 03:04 PM, -0700 MST"

// SerpAPI searches the SerpApi google_news engine.
type SerpAPI struct {
	APIKey string
	Lang   LanguageProfile
	Limit  int

	// query runs the search; replaced in tests.
	query func(params map[string]string, apiKey string) (map[string]interface{}, error)
}

func NewSerpAPI(apiKey string, lang LanguageProfile, limit int) *SerpAPI {
	return &SerpAPI{APIKey: apiKey, Lang: lang, Limit: limit, query: serpQuery}
}

func serpQuery(params map[string]string, apiKey string) (map[string]interface{}, error) {
	search := g.NewGoogleSearch(params, apiKey)
	results, err := search.GetJSON()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *SerpAPI) Name() string { return "SerpApi" }

func (s *SerpAPI) Search(ctx context.Context, term string) ([]models.Article, error) {
	if s.APIKey == "" {
		return nil, errors.New("SerpApi API key is not set")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := map[string]string{
		"engine": "google_news",
		"q":      strings.TrimSpace(term),
		"gl":     strings.ToLower(s.Lang.GL),
		"hl":     s.Lang.Code,
	}

	type reply struct {
		results map[string]interface{}
		err     error
	}
	done := make(chan reply, 1)
	go func() {
		res, err := s.query(params, s.APIKey)
		done <- reply{results: res, err: err}
	}()

	var r reply
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r = <-done:
	}
	if r.err != nil {
		return nil, fmt.Errorf("serpapi search failed: %w", r.err)
	}
	if msg, ok := r.results["error"].(string); ok && msg != "" {
		return nil, &models.RemoteError{Message: msg}
	}
	return s.articlesFromResults(r.results), nil
}

func (s *SerpAPI) articlesFromResults(results map[string]interface{}) []models.Article {
	items, _ := results["news_results"].([]interface{})
	var out []models.Article
	var add func(items []interface{})
	add = func(items []interface{}) {
		for _, item := range items {
			if s.Limit > 0 && len(out) >= s.Limit {
				return
			}
			res, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			// Story clusters carry their articles under "stories".
			if stories, ok := res["stories"].([]interface{}); ok {
				add(stories)
				continue
			}
			title, _ := res["title"].(string)
			link, _ := res["link"].(string)
			if title == "" || link == "" {
				continue
			}
			var pub time.Time
			if date, ok := res["date"].(string); ok {
				if t, err := time.Parse(serpDateLayout, date); err == nil {
					pub = t
				}
			}
			snippet, _ := res["snippet"].(string)
			out = append(out, models.Article{
				Title:       strings.TrimSpace(title),
				Source:      serpSource(res["source"]),
				URL:         strings.TrimSpace(link),
				Description: snippet,
				PublishedAt: pub,
				FoundBy:     s.Name(),
			})
		}
	}
	add(items)
	return out
}

// The source field is an object in google_news results and a string elsewhere.
func serpSource(v interface{}) string {
	switch src := v.(type) {
	case string:
		return strings.TrimSpace(src)
	case map[string]interface{}:
		if name, ok := src["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}
