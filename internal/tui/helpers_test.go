package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/leadenricher/internal/enricher"
	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/notify"
)

var fixedNow = time.Date(2026, 1, 3, 15, 4, 5, 0, time.UTC)

type stubSearch struct {
	mu       sync.Mutex
	articles []models.Article
	err      error
	terms    []string
	started  chan struct{}
	release  chan struct{}
}

func (s *stubSearch) Search(ctx context.Context, term string) ([]models.Article, error) {
	s.mu.Lock()
	s.terms = append(s.terms, term)
	articles, err := s.articles, s.err
	started, release := s.started, s.release
	s.mu.Unlock()
	if started != nil {
		close(started)
		<-release
	}
	return articles, err
}

type stubLeads struct {
	mu    sync.Mutex
	leads []models.LeadData
	err   error
}

func (s *stubLeads) CreateLead(_ context.Context, lead models.LeadData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, lead)
	return nil
}

type harness struct {
	model  Model
	ctrl   *enricher.Enricher
	search *stubSearch
	leads  *stubLeads
	notes  *notify.Channel
}

func seqKeys() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("k%d", n)
	}
}

func setupTestModel(t *testing.T, articles []models.Article) *harness {
	t.Helper()
	h := &harness{
		search: &stubSearch{articles: articles},
		leads:  &stubLeads{},
		notes:  notify.NewChannel(16),
	}
	h.ctrl = enricher.New(h.search, h.leads, h.notes, enricher.WithKeyFunc(seqKeys()))
	h.model = New(context.Background(), h.ctrl, Options{
		Notifications: h.notes.C(),
		ReportsDir:    t.TempDir(),
		Now:           func() time.Time { return fixedNow },
	})
	h.send(t, tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// send delivers msg and returns the command Update produced.
func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	h.model = model
	return cmd
}

// run executes cmd and feeds its message back into the model.
func (h *harness) run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg := cmd()
	h.send(t, msg)
	return msg
}

func (h *harness) typeText(t *testing.T, text string) {
	t.Helper()
	for _, r := range text {
		h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) press(t *testing.T, key tea.KeyType) tea.Cmd {
	t.Helper()
	return h.send(t, tea.KeyMsg{Type: key})
}

func (h *harness) pressRune(t *testing.T, r rune) tea.Cmd {
	t.Helper()
	return h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// drainNotifications moves every queued notification into the toast stack.
func (h *harness) drainNotifications(t *testing.T) {
	t.Helper()
	for {
		select {
		case n := <-h.notes.C():
			h.send(t, notificationMsg(n))
		default:
			return
		}
	}
}

// searchFor types term, presses enter and applies the result.
func (h *harness) searchFor(t *testing.T, term string) {
	t.Helper()
	h.typeText(t, term)
	h.run(t, h.press(t, tea.KeyEnter))
	h.drainNotifications(t)
}
