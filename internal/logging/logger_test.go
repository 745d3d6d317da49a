package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigureLevels(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Configure(Options{Output: &buf})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer closeFn()

	log := WithComponent("test")
	log.Debug().Msg("hidden")
	log.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info message missing from output:\n%s", out)
	}
}

func TestConfigureVerbose(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Configure(Options{Verbose: true, Output: &buf})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer closeFn()

	log := WithComponent("test")
	log.Debug().Msg("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("debug message missing in verbose mode:\n%s", buf.String())
	}
}

func TestWithComponentField(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Configure(Options{Output: &buf})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer closeFn()

	log := WithComponent("prober")
	log.Info().Msg("probing")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not one JSON line: %v\n%s", err, buf.String())
	}
	if entry["component"] != "prober" {
		t.Errorf("component field: got %v, want prober", entry["component"])
	}
	if entry["message"] != "probing" {
		t.Errorf("message field: got %v", entry["message"])
	}
}

func TestConfigureFileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "cytagen.log")

	closeFn, err := Configure(Options{Output: &buf, LogFile: path})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}

	log := WithComponent("test")
	log.Info().Msg("persisted")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "persisted") {
		t.Errorf("file sink missing entry:\n%s", data)
	}
	// Both sinks receive the entry.
	if !strings.Contains(buf.String(), "persisted") {
		t.Error("primary sink missing entry")
	}
}

func TestCloseReportsFailure(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "cytagen.log")

	closeFn, err := Configure(Options{Output: &buf, LogFile: path})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if err := closeFn(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	// The caller logs close errors; a second close must not hide the failure.
	if err := closeFn(); err == nil {
		t.Error("second close reported no error")
	}
}
