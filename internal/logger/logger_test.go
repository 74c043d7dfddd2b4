// ABOUTME: Tests for the zap logger wrapper.
// ABOUTME: Verifies mode selection and child loggers.
package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"", "dev", "prod", "production", "quiet"} {
		t.Run(mode, func(t *testing.T) {
			l, err := New(mode)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", mode, err)
			}
			if l.SugaredLogger == nil {
				t.Fatal("expected SugaredLogger to be set")
			}
		})
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "store").Warn("corrupt record", "key", "healthflow_hrv_history")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "store" {
		t.Errorf("component = %v, want store", fields["component"])
	}
	if fields["key"] != "healthflow_hrv_history" {
		t.Errorf("key = %v", fields["key"])
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", 1)
	l.Sync()
}
