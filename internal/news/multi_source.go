package news

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/util"
)

// MultiSource queries providers in order and merges their articles,
// de-duplicated by normalized URL.
type MultiSource struct {
	Providers []Provider
	Limit     int
	Log       zerolog.Logger
}

func NewMultiSource(limit int, log zerolog.Logger, providers ...Provider) *MultiSource {
	return &MultiSource{Providers: providers, Limit: limit, Log: log}
}

// Search fails only when every provider failed. An empty result is not an error.
func (m *MultiSource) Search(ctx context.Context, term string) ([]models.Article, error) {
	seen := make(map[string]bool)
	var all []models.Article
	var errs []error

	for _, p := range m.Providers {
		if m.Limit > 0 && len(all) >= m.Limit {
			break
		}
		articles, err := p.Search(ctx, term)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			m.Log.Warn().Err(err).Str("provider", p.Name()).Str("term", term).Msg("provider failed")
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		added := 0
		for _, a := range articles {
			key := util.NormalizeURL(a.URL)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, a)
			added++
		}
		m.Log.Debug().Str("provider", p.Name()).Int("found", len(articles)).Int("added", added).Msg("provider searched")
	}

	if len(errs) > 0 && len(errs) == len(m.Providers) {
		if len(errs) == 1 {
			return nil, errs[0]
		}
		return nil, errors.Join(errs...)
	}
	if m.Limit > 0 && len(all) > m.Limit {
		all = all[:m.Limit]
	}
	if all == nil {
		all = []models.Article{}
	}
	return all, nil
}
