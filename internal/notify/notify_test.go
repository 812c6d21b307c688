package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

func TestChannelDropsWhenFull(t *testing.T) {
	c := NewChannel(1)
	c.Notify(models.Notification{Message: "first"})
	c.Notify(models.Notification{Message: "second"})

	if got := (<-c.C()).Message; got != "first" {
		t.Fatalf("expected first notification, got %q", got)
	}
	if c.Dropped() != 1 {
		t.Fatalf("expected 1 dropped, got %d", c.Dropped())
	}
}

func TestLogUsesVariantLevel(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLog(zerolog.New(&buf))
	sink.Notify(models.Notification{Title: "Error", Message: "Error fetching news: timeout", Variant: models.VariantError})
	sink.Notify(models.Notification{Title: "Success", Message: "Lead created successfully!", Variant: models.VariantSuccess})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"level":"warn"`) || !strings.Contains(lines[0], "timeout") {
		t.Fatalf("unexpected error line: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"info"`) || !strings.Contains(lines[1], `"variant":"success"`) {
		t.Fatalf("unexpected success line: %s", lines[1])
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewChannel(2), NewChannel(2)
	Multi{a, nil, b}.Notify(models.Notification{Message: "hello"})
	if len(a.C()) != 1 || len(b.C()) != 1 {
		t.Fatalf("expected both sinks to receive the notification")
	}
}
