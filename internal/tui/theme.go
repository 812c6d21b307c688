package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Header       lipgloss.Style
	Article      lipgloss.Style
	CreatedMark  lipgloss.Style
	Source       lipgloss.Style
	Input        lipgloss.Style
	InputBlurred lipgloss.Style
	Cursor       lipgloss.Style
	Spinner      lipgloss.Style
	ToastError   lipgloss.Style
	ToastSuccess lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style
	Highlight    lipgloss.Style
}

func toast(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Article:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CreatedMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Source:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		InputBlurred: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		ToastError:   toast(lipgloss.Color("9")).Foreground(lipgloss.Color("9")),
		ToastSuccess: toast(lipgloss.Color("42")).Foreground(lipgloss.Color("42")),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("62"),                                             // Purple
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Article:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),            // White
		CreatedMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Source:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),            // Cyan
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		InputBlurred: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),            // Purple
		ToastError:   toast(lipgloss.Color("203")).Foreground(lipgloss.Color("203")),
		ToastSuccess: toast(lipgloss.Color("120")).Foreground(lipgloss.Color("120")),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme. Unknown names keep the current one.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}
