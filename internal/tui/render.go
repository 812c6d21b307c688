package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/enricher"
	"github.com/akyairhashvil/leadenricher/internal/models"
	"github.com/akyairhashvil/leadenricher/internal/util"
)

const (
	loadingLabel   = "Loading..."
	noResultsLabel = "No results"
	createdMark    = "✓"
	cursorMark     = "›"
	ageColumnWidth = 4
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.ctrl.State()

	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderStatus(state),
		m.renderResults(state),
	}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, CurrentTheme.Dim.Render(m.keys.HelpFor(m.focus)))
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	return CurrentTheme.Header.Render("Lead Enricher") + CurrentTheme.Dim.Render("  news to leads")
}

func (m Model) renderInput() string {
	style := CurrentTheme.InputBlurred
	if m.focus == focusInput {
		style = CurrentTheme.Input
	}
	return style.Width(m.input.Width + 4).Render(m.input.View())
}

func (m Model) renderStatus(state enricher.ViewState) string {
	if state.IsLoading {
		return m.spinner.View() + " " + CurrentTheme.Dim.Render(loadingLabel)
	}
	return ""
}

func (m Model) renderResults(state enricher.ViewState) string {
	if state.HasNoResults {
		return CurrentTheme.Dim.Render(noResultsLabel)
	}
	if len(state.Results) == 0 {
		return ""
	}

	start := util.Clamp(m.offset, 0, len(state.Results)-1)
	end := util.Clamp(start+config.MaxVisibleArticles, start, len(state.Results))
	titleWidth := m.titleWidth()
	now := m.now()

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(state.Results[i], i == m.cursor, titleWidth, now))
	}
	if len(state.Results) > config.MaxVisibleArticles {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(state.Results))))
	}
	return b.String()
}

func (m Model) renderRow(a models.Article, selected bool, titleWidth int, now time.Time) string {
	cursor := " "
	if selected && m.focus == focusList {
		cursor = CurrentTheme.Cursor.Render(cursorMark)
	}
	mark := " "
	if a.IsCreated {
		mark = CurrentTheme.CreatedMark.Render(createdMark)
	}

	titleStyle := CurrentTheme.Article
	if selected && m.focus == focusList {
		titleStyle = CurrentTheme.Focused
	}
	title := titleStyle.Render(padRight(a.Title, titleWidth))
	source := CurrentTheme.Source.Render(padRight(a.Source, config.SourceColumnWidth))
	age := CurrentTheme.Dim.Render(padRight(formatAge(a.PublishedAt, now), ageColumnWidth))

	return strings.Join([]string{cursor, mark, title, source, age}, " ")
}

// titleWidth is what remains of the window after the fixed columns.
func (m Model) titleWidth() int {
	if m.width == 0 {
		return config.TargetTitleWidth
	}
	// margins, cursor, mark and separators
	fixed := 4 + 1 + 1 + 4 + config.SourceColumnWidth + ageColumnWidth
	return util.Clamp(m.width-fixed, config.MinTitleWidth, config.TargetTitleWidth)
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := CurrentTheme.ToastSuccess
		if t.note.Variant == models.VariantError {
			style = CurrentTheme.ToastError
		}
		text := t.note.Message
		if t.note.Title != "" {
			text = lipgloss.NewStyle().Bold(true).Render(t.note.Title) + " " + text
		}
		rendered = append(rendered, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
