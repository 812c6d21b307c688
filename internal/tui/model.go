// Package tui is the terminal front end: a search box, the result list and a
// stack of transient notifications.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/enricher"
	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/util"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Controller is the part of the enricher the view drives.
type Controller interface {
	State() enricher.ViewState
	SetSearchTerm(term string)
	Search(ctx context.Context) error
	CreateLead(ctx context.Context, key string) error
}

var _ Controller = (*enricher.Enricher)(nil)

type Options struct {
	// Notifications feeds the toast stack. May be nil.
	Notifications <-chan models.Notification
	ReportsDir    string
	Theme         string
	Log           zerolog.Logger
	Now           func() time.Time
}

type toastItem struct {
	id   int
	note models.Notification
}

type Model struct {
	ctx        context.Context
	ctrl       Controller
	notes      <-chan models.Notification
	reportsDir string
	log        zerolog.Logger
	now        func() time.Time
	keys       *HandlerRegistry

	input     textinput.Model
	spinner   spinner.Model
	focus     focusArea
	cursor    int
	offset    int
	toasts    []toastItem
	nextToast int
	width     int
	height    int
	quitting  bool
}

func New(ctx context.Context, ctrl Controller, opts Options) Model {
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Company, person or topic..."
	ti.CharLimit = config.MaxSearchTermLength
	ti.Width = config.SearchInputWidth - 4
	ti.SetValue(ctrl.State().SearchTerm)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = CurrentTheme.Spinner

	return Model{
		ctx:        ctx,
		ctrl:       ctrl,
		notes:      opts.Notifications,
		reportsDir: opts.ReportsDir,
		log:        opts.Log,
		now:        opts.Now,
		keys:       newKeyRegistry(),
		input:      ti,
		spinner:    sp,
		focus:      focusInput,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForNotification(m.notes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = util.Clamp(msg.Width-12, config.MinTitleWidth, config.SearchInputWidth-4)
		return m, nil

	case tea.KeyMsg:
		if next, cmd, ok := m.keys.Handle(m, msg.String()); ok {
			return next, cmd
		}
		if m.focus != focusInput {
			return m, nil
		}
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.ctrl.SetSearchTerm(value)
		}
		return m, cmd

	case searchDoneMsg:
		if msg.err == nil {
			m.cursor, m.offset = 0, 0
		} else {
			m.log.Debug().Err(msg.err).Msg("search finished with error")
		}
		m.clampCursor()
		return m, nil

	case leadDoneMsg:
		if msg.err != nil {
			m.log.Debug().Err(msg.err).Str("key", msg.key).Msg("lead creation finished with error")
		}
		m.clampCursor()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			util.LogError(m.log, "export results", msg.err)
			return m.pushToast(models.Notification{
				Title:   config.TitleError,
				Message: config.MsgExportFailed + enricher.FailureMessage(msg.err),
				Variant: models.VariantError,
			})
		}
		m.log.Info().Str("path", msg.path).Msg("results exported")
		return m.pushToast(models.Notification{
			Title:   config.TitleSuccess,
			Message: config.MsgExportSucceeded + msg.path,
			Variant: models.VariantSuccess,
		})

	case notificationMsg:
		next, toastCmd := m.pushToast(models.Notification(msg))
		return next, tea.Batch(toastCmd, waitForNotification(m.notes))

	case toastExpiredMsg:
		m.dropToast(msg.id)
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) pushToast(n models.Notification) (Model, tea.Cmd) {
	m.nextToast++
	toasts := append([]toastItem(nil), m.toasts...)
	toasts = append(toasts, toastItem{id: m.nextToast, note: n})
	if len(toasts) > config.MaxVisibleToasts {
		toasts = toasts[len(toasts)-config.MaxVisibleToasts:]
	}
	m.toasts = toasts
	return m, expireToast(m.nextToast)
}

func (m *Model) dropToast(id int) {
	out := make([]toastItem, 0, len(m.toasts))
	for _, t := range m.toasts {
		if t.id != id {
			out = append(out, t)
		}
	}
	m.toasts = out
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.State().Results)
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, n-1)
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+config.MaxVisibleArticles {
		m.offset = m.cursor - config.MaxVisibleArticles + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}
