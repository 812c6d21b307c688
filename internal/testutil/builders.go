package testutil

import (
	"time"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

// ArticleBuilder provides fluent API for creating test articles.
type ArticleBuilder struct {
	article models.Article
}

func NewArticle() *ArticleBuilder {
	return &ArticleBuilder{
		article: models.Article{
			Title:       "Test Article",
			Source:      "Test Source",
			URL:         "https://news.example.com/test-article",
			PublishedAt: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
			FoundBy:     "test",
		},
	}
}

func (b *ArticleBuilder) WithTitle(title string) *ArticleBuilder {
	b.article.Title = title
	return b
}

func (b *ArticleBuilder) WithSource(source string) *ArticleBuilder {
	b.article.Source = source
	return b
}

func (b *ArticleBuilder) WithURL(url string) *ArticleBuilder {
	b.article.URL = url
	return b
}

func (b *ArticleBuilder) WithKey(key string) *ArticleBuilder {
	b.article.Key = key
	return b
}

func (b *ArticleBuilder) Created() *ArticleBuilder {
	b.article.IsCreated = true
	return b
}

func (b *ArticleBuilder) Build() models.Article {
	return b.article
}

// Articles builds n articles with distinct sources and URLs.
func Articles(sources ...string) []models.Article {
	out := make([]models.Article, 0, len(sources))
	for _, s := range sources {
		out = append(out, NewArticle().
			WithSource(s).
			WithTitle(s+" headline").
			WithURL("https://news.example.com/"+s).
			Build())
	}
	return out
}
