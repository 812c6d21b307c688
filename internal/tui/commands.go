package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/enricher"
	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/report"
	"github.com/akyairhashvil/leadenricher/internal/util"
)

// --- Messages ---
type searchDoneMsg struct{ err error }

type leadDoneMsg struct {
	key string
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type notificationMsg models.Notification

type toastExpiredMsg struct{ id int }

// --- Commands ---
func searchCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.Search(ctx)
		if errors.Is(err, enricher.ErrSuperseded) {
			err = nil
		}
		return searchDoneMsg{err: err}
	}
}

func createLeadCmd(ctx context.Context, ctrl Controller, key string) tea.Cmd {
	return func() tea.Msg {
		return leadDoneMsg{key: key, err: ctrl.CreateLead(ctx, key)}
	}
}

func exportCmd(dir, term, ext string, articles []models.Article, stamp time.Time) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: fmt.Errorf("create reports dir: %w", err)}
		}
		path := filepath.Join(dir, util.ReportFileName(term, stamp.Format("20060102-150405"), ext))
		if err := report.Write(path, term, articles); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// waitForNotification blocks on the next notification. A nil or closed
// channel ends the subscription.
func waitForNotification(ch <-chan models.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg(n)
	}
}

func expireToast(id int) tea.Cmd {
	return tea.Tick(config.ToastLifetime, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}
