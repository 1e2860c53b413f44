package state

import (
	"strings"
	"testing"

	"github.com/unitdash/unitdash/internal/systemd"
)

func logContent(lines int) string {
	entries := make([]string, lines)
	for i := range entries {
		entries[i] = "line"
	}
	return strings.Join(entries, "\n")
}

func TestShowLogResetsScroll(t *testing.T) {
	var d Details
	d.ShowLog("ssh.service", logContent(40))
	d.PageDown()
	if d.Scroll != ScrollStride {
		t.Fatalf("expected scroll %d, got %d", ScrollStride, d.Scroll)
	}

	d.ShowLog("cron.service", logContent(5))
	if d.Scroll != 0 {
		t.Fatalf("expected scroll reset, got %d", d.Scroll)
	}
	if d.Kind != ContentLog || d.Service != "cron.service" {
		t.Fatalf("unexpected state %v/%q", d.Kind, d.Service)
	}
}

func TestScrollSaturatesAtTop(t *testing.T) {
	var d Details
	d.ShowLog("ssh.service", logContent(20))
	d.ScrollUp()
	d.PageUp()
	if d.Scroll != 0 {
		t.Fatalf("expected scroll pinned at 0, got %d", d.Scroll)
	}
}

func TestScrollClampsAtBottom(t *testing.T) {
	var d Details
	d.ShowLog("ssh.service", logContent(12))
	for i := 0; i < 5; i++ {
		d.PageDown()
	}
	if d.Scroll != 11 {
		t.Fatalf("expected scroll clamped to last line, got %d", d.Scroll)
	}
	d.ScrollDown()
	if d.Scroll != 11 {
		t.Fatalf("expected scroll stable at bottom, got %d", d.Scroll)
	}
}

func TestSetContentKeepsScrollClamped(t *testing.T) {
	var d Details
	d.ShowLog("ssh.service", logContent(40))
	for i := 0; i < 3; i++ {
		d.PageDown()
	}
	if d.Scroll != 30 {
		t.Fatalf("setup: expected scroll 30, got %d", d.Scroll)
	}

	// A shorter refresh pulls the offset back inside the content.
	d.SetContent(logContent(8))
	if d.Scroll != 7 {
		t.Fatalf("expected scroll clamped to 7, got %d", d.Scroll)
	}
}

func TestShowUnitCarriesProps(t *testing.T) {
	var d Details
	props := systemd.PropsStatus{
		State:  systemd.PropsFetched,
		Bundle: systemd.Properties{MainPID: 7, Restart: "always"},
	}
	d.ShowUnit("ssh.service", "[Unit]\nDescription=test\n", props)
	if d.Kind != ContentUnit {
		t.Fatalf("expected unit content, got %v", d.Kind)
	}
	if d.Props.Bundle.MainPID != 7 {
		t.Fatalf("expected props carried, got %#v", d.Props)
	}
	if len(d.Lines) != 2 {
		t.Fatalf("expected trailing newline trimmed, got %d lines", len(d.Lines))
	}
}

func TestResetClearsEverything(t *testing.T) {
	var d Details
	d.ShowLog("ssh.service", logContent(10))
	d.PageDown()
	d.Reset()
	if d.Kind != ContentNone || d.Service != "" || d.Scroll != 0 || d.Lines != nil {
		t.Fatalf("expected zeroed state, got %#v", d)
	}
}

func TestScrollOnEmptyContentStaysAtZero(t *testing.T) {
	var d Details
	d.ShowLog("ssh.service", "")
	d.PageDown()
	d.ScrollDown()
	if d.Scroll != 0 {
		t.Fatalf("expected scroll 0 on empty content, got %d", d.Scroll)
	}
}
