package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/report"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []focusArea{focusList}
	input := []focusArea{focusInput}

	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "enter", Handler: handleSearch, Description: "search", Focus: input})
	r.Register(KeyBinding{Key: "tab", Handler: handleSwitchFocus, Description: "switch"})
	r.Register(KeyBinding{Key: "esc", Handler: handleSwitchFocus, Description: "switch"})
	r.Register(KeyBinding{Key: "up", Handler: handleMoveUp, Description: "up", Focus: list})
	r.Register(KeyBinding{Key: "k", Handler: handleMoveUp, Description: "up", Focus: list})
	r.Register(KeyBinding{Key: "down", Handler: handleMoveDown, Description: "down", Focus: list})
	r.Register(KeyBinding{Key: "j", Handler: handleMoveDown, Description: "down", Focus: list})
	r.Register(KeyBinding{Key: "enter", Handler: handleCreateLead, Description: "create lead", Focus: list})
	r.Register(KeyBinding{Key: "c", Handler: handleCreateLead, Description: "create lead", Focus: list})
	r.Register(KeyBinding{Key: "p", Handler: handleExport, Description: "pdf", Focus: list})
	r.Register(KeyBinding{Key: "w", Handler: handleExport, Description: "docx", Focus: list})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Focus: list})
	return r
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}

func handleSearch(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, searchCmd(m.ctx, m.ctrl), true
}

func handleSwitchFocus(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus == focusInput {
		return m, m.setFocus(focusList), true
	}
	return m, m.setFocus(focusInput), true
}

func handleMoveUp(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor > 0 {
		m.cursor--
	}
	m.clampCursor()
	return m, nil, true
}

func handleMoveDown(m Model, _ string) (Model, tea.Cmd, bool) {
	m.cursor++
	m.clampCursor()
	return m, nil, true
}

// handleCreateLead captures the highlighted article's key now, so a later
// change to the list cannot redirect the request to another article.
func handleCreateLead(m Model, _ string) (Model, tea.Cmd, bool) {
	results := m.ctrl.State().Results
	if m.cursor < 0 || m.cursor >= len(results) {
		return m, nil, true
	}
	return m, createLeadCmd(m.ctx, m.ctrl, results[m.cursor].Key), true
}

func handleExport(m Model, key string) (Model, tea.Cmd, bool) {
	state := m.ctrl.State()
	if len(state.Results) == 0 {
		next, cmd := m.pushToast(models.Notification{
			Title:   config.TitleError,
			Message: config.MsgNothingToExport,
			Variant: models.VariantError,
		})
		return next, cmd, true
	}
	ext := report.ExtPDF
	if key == "w" {
		ext = report.ExtDOCX
	}
	return m, exportCmd(m.reportsDir, state.SearchTerm, ext, state.Results, m.now()), true
}
