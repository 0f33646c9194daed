package main

import (
	"testing"

	"github.com/eskui/overlay-control/internal/app"
	"github.com/eskui/overlay-control/internal/config"
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
			HostURL:    "http://127.0.0.1:30120/eskui",
			EventsURL:  "ws://127.0.0.1:30120/eskui/events",
			PrefsPath:  "prefs.db",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"hostURL":   "http://127.0.0.1:30120/eskui",
			"eventsURL": "ws://127.0.0.1:30120/eskui/events",
			"width":     "80",
			"height":    "24",
			"footer":    "true",
			"verbose":   "true",
		},
		Args: []string{"--host-url", "http://127.0.0.1:30120/eskui"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["hostURL"] != "http://127.0.0.1:30120/eskui" {
		t.Fatalf("expected hostURL flag, got %v", flagsValue["hostURL"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	hostValue, ok := payload["host"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected host identity in payload")
	}
	if hostValue["callbackURL"] != "http://127.0.0.1:30120/eskui" {
		t.Fatalf("expected callback URL, got %v", hostValue["callbackURL"])
	}
	if hostValue["eventsURL"] != "ws://127.0.0.1:30120/eskui/events" {
		t.Fatalf("expected events URL, got %v", hostValue["eventsURL"])
	}
	if hostValue["prefsDB"] != "prefs.db" {
		t.Fatalf("expected prefs path, got %v", hostValue["prefsDB"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
