package enricher

import (
	"errors"
	"strings"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/models"
)

var (
	ErrEmptySearchTerm    = errors.New("search term is empty")
	ErrArticleNotFound    = errors.New("article not found in results")
	ErrLeadAlreadyCreated = errors.New("lead already created from article")
	ErrLeadPending        = errors.New("lead creation already in progress for article")
	// ErrSuperseded is returned when a newer search finished the view update.
	ErrSuperseded = errors.New("search superseded by a newer one")
)

// FailureMessage extracts the text shown to the user for a failure.
// Precedence: structured body message, top-level remote message, err.Error(),
// then a fixed fallback. The result is never empty.
func FailureMessage(err error) string {
	if err == nil {
		return config.MsgUnknownFailure
	}
	var remote *models.RemoteError
	if errors.As(err, &remote) && remote != nil {
		if remote.Body != nil {
			if msg := strings.TrimSpace(remote.Body.Message); msg != "" {
				return msg
			}
		}
		if msg := strings.TrimSpace(remote.Message); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return config.MsgUnknownFailure
}
