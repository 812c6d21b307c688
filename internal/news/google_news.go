package news

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed/rss"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/models"
)

const googleNewsBaseURL = "https://news.google.com/rss/search"

// LanguageProfile selects the Google News edition.
type LanguageProfile struct {
	Code string // "en"
	HL   string // "en-US"
	GL   string // "US"
	CEID string // "US:en"
}

// NewLanguageProfile derives a profile from a language-REGION tag.
func NewLanguageProfile(tag string) (LanguageProfile, error) {
	lang, region, err := config.SplitLanguage(tag)
	if err != nil {
		return LanguageProfile{}, err
	}
	return LanguageProfile{
		Code: lang,
		HL:   lang + "-" + region,
		GL:   region,
		CEID: region + ":" + lang,
	}, nil
}

type GoogleNews struct {
	Client  *http.Client
	BaseURL string
	Lang    LanguageProfile
	Limit   int
}

func NewGoogleNews(lang LanguageProfile, limit int) *GoogleNews {
	return &GoogleNews{
		Client:  &http.Client{Timeout: config.HTTPTimeout},
		BaseURL: googleNewsBaseURL,
		Lang:    lang,
		Limit:   limit,
	}
}

func (g *GoogleNews) Name() string { return "Google News (" + g.Lang.Code + ")" }

// Matches URLs in plain text
var reURLPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

func (g *GoogleNews) Search(ctx context.Context, term string) ([]models.Article, error) {
	u := fmt.Sprintf(
		"%s?q=%s&hl=%s&gl=%s&ceid=%s",
		g.BaseURL,
		url.QueryEscape(strings.TrimSpace(term)),
		url.QueryEscape(g.Lang.HL),
		url.QueryEscape(g.Lang.GL),
		url.QueryEscape(g.Lang.CEID),
	)
	raw, err := get(ctx, g.Client, u, "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1", "google news rss")
	if err != nil {
		return nil, err
	}

	parser := rss.Parser{}
	feed, err := parser.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse google news rss: %w", err)
	}

	out := make([]models.Article, 0, len(feed.Items))
	for _, it := range feed.Items {
		if g.Limit > 0 && len(out) >= g.Limit {
			break
		}
		link := strings.TrimSpace(it.Link)
		articleURL := extractPublisherURL(it, link)
		if articleURL == "" {
			if !isGoogleNewsWrapper(link) {
				continue
			}
			// The wrapper redirects to the publisher when opened.
			articleURL = link
		}

		var pub time.Time
		if it.PubDateParsed != nil {
			pub = *it.PubDateParsed
		}
		source := publisherName(it)
		out = append(out, models.Article{
			Title:       cleanTitle(it.Title, source),
			Source:      source,
			URL:         articleURL,
			Description: descriptionText(it.Description),
			PublishedAt: pub,
			FoundBy:     g.Name(),
		})
	}
	return out, nil
}

// publisherName prefers the <source> element, then the <font> label Google
// appends to the description.
func publisherName(it *rss.Item) string {
	if it.Source != nil {
		if name := strings.TrimSpace(it.Source.Title); name != "" {
			return name
		}
	}
	if doc := parseHTML(it.Description); doc != nil {
		if name := strings.TrimSpace(doc.Find("font").Last().Text()); name != "" {
			return name
		}
	}
	if it.Source != nil && it.Source.URL != "" {
		if parsed, err := url.Parse(it.Source.URL); err == nil && parsed.Host != "" {
			return strings.TrimPrefix(parsed.Host, "www.")
		}
	}
	return "Google News"
}

// Google News titles end with " - Publisher".
func cleanTitle(title, publisher string) string {
	title = strings.TrimSpace(title)
	if publisher != "" {
		title = strings.TrimSuffix(title, " - "+publisher)
	}
	return title
}

func descriptionText(desc string) string {
	doc := parseHTML(desc)
	if doc == nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func parseHTML(fragment string) *goquery.Document {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil
	}
	// Google sometimes double-encodes entities.
	for i := 0; i < 3; i++ {
		unescaped := html.UnescapeString(fragment)
		if unescaped == fragment {
			break
		}
		fragment = unescaped
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	return doc
}

// extractPublisherURL tries the description anchors, the GUID, then the
// wrapper query parameters.
func extractPublisherURL(it *rss.Item, googleURL string) string {
	if doc := parseHTML(it.Description); doc != nil {
		var found string
		doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			if href = strings.TrimSpace(href); isValidPublisherURL(href) {
				found = href
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}

	if it.GUID != nil {
		for _, candidate := range reURLPattern.FindAllString(it.GUID.Value, -1) {
			candidate = strings.TrimRight(candidate, `.,;:!?)'"`)
			if isValidPublisherURL(candidate) {
				return candidate
			}
		}
	}

	if parsed, err := url.Parse(googleURL); err == nil {
		for _, param := range []string{"url", "u", "link", "q"} {
			if val := parsed.Query().Get(param); isValidPublisherURL(val) {
				return val
			}
		}
	}

	if isValidPublisherURL(googleURL) {
		return googleURL
	}
	return ""
}

func isGoogleNewsWrapper(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	if host != "news.google.com" && host != "google.com" && host != "www.google.com" {
		return false
	}
	return strings.Contains(parsed.Path, "/articles/")
}

var googleDomains = []string{"google.com", "news.google.com", "google.ca", "google.co.uk", "google.fr"}

// isValidPublisherURL reports whether u is an absolute http(s) URL outside Google.
func isValidPublisherURL(u string) bool {
	u = strings.TrimSpace(u)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return false
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return false
	}
	for _, gd := range googleDomains {
		if host == gd || strings.HasSuffix(host, "."+gd) {
			return false
		}
	}
	return true
}
