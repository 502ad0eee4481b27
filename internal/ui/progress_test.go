package ui

import (
	"strings"
	"testing"

	"layec/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("tokenize", []string{"a.ly", "b.ly"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.ly", Status: driver.StatusWorking})
	if got := m.percent(); got != 0.25 {
		t.Fatalf("percent = %v, want 0.25", got)
	}
	m.applyEvent(driver.Event{File: "a.ly", Status: driver.StatusDone, Tokens: 12, Errors: 1})
	m.applyEvent(driver.Event{File: "b.ly", Status: driver.StatusCached, Tokens: 3})
	m.applyEvent(driver.Event{File: "unknown.ly", Status: driver.StatusFailed})
	if m.finished() != 2 || m.percent() != 1 {
		t.Fatalf("finished=%d percent=%v", m.finished(), m.percent())
	}

	if Completed(m) {
		t.Fatalf("model completed before the stream closed")
	}
	m.Update(doneMsg{})
	if !Completed(m) {
		t.Fatalf("model should be completed after doneMsg")
	}
	view := m.View()
	for _, want := range []string{"done: tokenize 2/2", "a.ly", "12 tokens", "1 errors", "cached"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/very/long/path.ly", 10); got != "src/ver..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short.ly", 20); got != "short.ly" {
		t.Fatalf("truncate = %q", got)
	}
}
