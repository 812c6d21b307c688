package news

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

func serpFixture() map[string]interface{} {
	return map[string]interface{}{
		"news_results": []interface{}{
			map[string]interface{}{
				"title":   "Acme raises prices",
				"link":    "https://www.ft.com/acme",
				"snippet": "Prices up.",
				"date":    "01/05/2026, 08:00 AM, +0000 UTC",
				"source":  map[string]interface{}{"name": "Financial Times", "icon": "x"},
			},
			map[string]interface{}{
				"title": "Acme coverage",
				"stories": []interface{}{
					map[string]interface{}{
						"title":  "Acme CEO interview",
						"link":   "https://www.cnbc.com/acme",
						"source": "CNBC",
					},
				},
			},
			map[string]interface{}{"title": "missing link"},
			"not a map",
		},
	}
}

func testSerp(limit int, results map[string]interface{}, err error) (*SerpAPI, *map[string]string) {
	var got map[string]string
	lang, _ := NewLanguageProfile("en-US")
	s := NewSerpAPI("key", lang, limit)
	s.query = func(params map[string]string, apiKey string) (map[string]interface{}, error) {
		got = params
		return results, err
	}
	return s, &got
}

func TestSerpAPISearchMapsResults(t *testing.T) {
	s, params := testSerp(0, serpFixture(), nil)

	articles, err := s.Search(context.Background(), " acme ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	p := *params
	if p["engine"] != "google_news" || p["q"] != "acme" || p["gl"] != "us" || p["hl"] != "en" {
		t.Fatalf("unexpected params %v", p)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d: %+v", len(articles), articles)
	}
	if articles[0].Source != "Financial Times" || articles[0].Description != "Prices up." {
		t.Errorf("unexpected first article %+v", articles[0])
	}
	if articles[0].PublishedAt.IsZero() {
		t.Errorf("expected parsed date")
	}
	if articles[1].Title != "Acme CEO interview" || articles[1].Source != "CNBC" {
		t.Errorf("expected story to be flattened, got %+v", articles[1])
	}
	if articles[1].FoundBy != "SerpApi" {
		t.Errorf("found by = %q", articles[1].FoundBy)
	}
}

func TestSerpAPISearchHonorsLimit(t *testing.T) {
	s, _ := testSerp(1, serpFixture(), nil)

	articles, err := s.Search(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
}

func TestSerpAPISearchErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		s, _ := testSerp(0, nil, nil)
		s.APIKey = ""
		if _, err := s.Search(context.Background(), "acme"); err == nil {
			t.Fatalf("expected an error without an API key")
		}
	})

	t.Run("transport", func(t *testing.T) {
		s, _ := testSerp(0, nil, errors.New("dial tcp: refused"))
		if _, err := s.Search(context.Background(), "acme"); err == nil {
			t.Fatalf("expected an error")
		}
	})

	t.Run("api error", func(t *testing.T) {
		s, _ := testSerp(0, map[string]interface{}{"error": "Invalid API key."}, nil)
		_, err := s.Search(context.Background(), "acme")
		var remote *models.RemoteError
		if !errors.As(err, &remote) || remote.Message != "Invalid API key." {
			t.Fatalf("expected RemoteError, got %v", err)
		}
	})

	t.Run("no results", func(t *testing.T) {
		s, _ := testSerp(0, map[string]interface{}{}, nil)
		articles, err := s.Search(context.Background(), "acme")
		if err != nil || len(articles) != 0 {
			t.Fatalf("expected empty result, got %v %v", articles, err)
		}
	})
}
