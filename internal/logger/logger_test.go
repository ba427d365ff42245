package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

func TestInit_DefaultLevel_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("test info")
	if !strings.Contains(buf.String(), "test info") {
		t.Error("Info message should be logged at default level")
	}

	buf.Reset()

	Debug("test debug")
	if strings.Contains(buf.String(), "test debug") {
		t.Error("Debug message should not be logged at default level")
	}
}

func TestInit_DebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	Debug("test debug message")
	if !strings.Contains(buf.String(), "test debug message") {
		t.Error("Debug message should be logged when Debug=true")
	}
}

func TestInit_QuietLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})
	defer resetLogger()

	Info("test info")
	Warn("test warn")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below error level when Quiet=true, got %q", buf.String())
	}

	Error("test error")
	if !strings.Contains(buf.String(), "test error") {
		t.Error("Error message should be logged when Quiet=true")
	}
}

func TestInit_QuietOverridesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Quiet: true, Output: buf})
	defer resetLogger()

	Debug("test debug")
	if buf.Len() != 0 {
		t.Errorf("Quiet should win over Debug, got %q", buf.String())
	}
}

func TestInit_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("page fetched", "url", "http://latin.packhum.org/loc/978/1/0")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "page fetched" {
		t.Errorf("msg = %v, want %q", record["msg"], "page fetched")
	}
	if record["url"] != "http://latin.packhum.org/loc/978/1/0" {
		t.Errorf("url = %v", record["url"])
	}
}

func TestComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Component("crawler").Info("walking")
	if !strings.Contains(buf.String(), "component=crawler") {
		t.Errorf("expected component attribute, got %q", buf.String())
	}
}
