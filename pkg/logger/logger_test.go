package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStandardLogger_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0), false)

	l.Info("created %d profiles", 3)
	l.Warning("low on %s", "requests")
	l.Error("boom")

	out := buf.String()
	if !strings.Contains(out, "[INFO] created 3 profiles") {
		t.Errorf("missing info line, got:\n%s", out)
	}
	if !strings.Contains(out, "[WARNING] low on requests") {
		t.Errorf("missing warning line, got:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] boom") {
		t.Errorf("missing error line, got:\n%s", out)
	}
}

func TestStandardLogger_DebugGate(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0), false)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug suppressed, got: %s", buf.String())
	}

	buf.Reset()
	l = NewStandardLogger(log.New(&buf, "", 0), true)
	l.Debug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Errorf("expected debug emitted, got: %s", buf.String())
	}
}

func TestRecorder_RecordsFormattedCalls(t *testing.T) {
	r := NewRecorder()
	r.Info("profile #%d", 1)
	r.Error("failed: %s", "auth")

	if len(r.InfoCalls) != 1 || r.InfoCalls[0] != "profile #1" {
		t.Errorf("unexpected info calls: %v", r.InfoCalls)
	}
	if len(r.ErrorCalls) != 1 || r.ErrorCalls[0] != "failed: auth" {
		t.Errorf("unexpected error calls: %v", r.ErrorCalls)
	}
}
