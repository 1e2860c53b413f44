package main

import (
	"testing"

	"github.com/unitdash/unitdash/internal/app"
	"github.com/unitdash/unitdash/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Scope:      "user",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			LogLines:   200,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"scope":  "user",
			"width":  "80",
			"height": "24",
		},
		Args: []string{"-scope", "user"},
	}

	payload := startupTracePayload(cfg)
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map, got %T", payload["flags"])
	}
	if flags["scope"] != "user" {
		t.Fatalf("expected scope flag, got %v", flags["scope"])
	}
	if flags["trace"] != true {
		t.Fatalf("expected trace flag, got %v", flags["trace"])
	}
	if flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file flag, got %v", flags["logFile"])
	}
	if payload["scope"] != "user" {
		t.Fatalf("expected scope in payload, got %v", payload["scope"])
	}
	if _, ok := payload["tty"]; !ok {
		t.Fatal("expected tty details in payload")
	}
	if _, ok := payload["pid"]; !ok {
		t.Fatal("expected pid in payload")
	}
}
