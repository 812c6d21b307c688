// Package news implements article search over Google News, plain RSS feeds
// and SerpApi.
package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) leadenricher/1.0"

// Provider is a single news source.
type Provider interface {
	Name() string
	Search(ctx context.Context, term string) ([]models.Article, error)
}

// get performs a GET and returns the body of a 2xx response.
// Non-2xx responses become *models.RemoteError.
func get(ctx context.Context, client *http.Client, url, accept, label string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &models.RemoteError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("%s http %d: %s", label, resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
	return io.ReadAll(resp.Body)
}
