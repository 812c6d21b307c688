package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Focus       []focusArea
	Priority    int
}

func (b KeyBinding) AppliesTo(f focusArea) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, v := range b.Focus {
		if v == f {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(f focusArea) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(f) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders "[key]description" pairs for one focus area. Bindings that
// share a description are merged into one entry ("[k/up]up").
func (r *HandlerRegistry) HelpFor(f focusArea) string {
	var order []string
	keys := make(map[string][]string)
	for _, b := range r.BindingsFor(f) {
		if b.Description == "" {
			continue
		}
		if _, ok := keys[b.Description]; !ok {
			order = append(order, b.Description)
		}
		keys[b.Description] = append(keys[b.Description], b.Key)
	}
	parts := make([]string, 0, len(order))
	for _, desc := range order {
		parts = append(parts, "["+strings.Join(keys[desc], "/")+"]"+desc)
	}
	return strings.Join(parts, " ")
}
