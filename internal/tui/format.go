package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// formatAge renders how long ago an article was published ("45s", "2h", "3d").
func formatAge(published, now time.Time) string {
	if published.IsZero() {
		return ""
	}
	d := now.Sub(published)
	switch {
	case d < 0:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

// padRight pads text with spaces to exactly width cells, truncating if needed.
func padRight(text string, width int) string {
	text = truncateLabel(text, width)
	if pad := width - ansi.StringWidth(text); pad > 0 {
		return text + fmt.Sprintf("%*s", pad, "")
	}
	return text
}
