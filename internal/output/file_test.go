package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"licmedic/internal/scan"
)

func TestFileSink_JSONAggregate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	_ = sink.Write(Event{Type: "run.started", Mode: "check"})
	_ = sink.Write(scan.Result{Status: scan.StatusMissing, File: "src/a.c"})
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded []scan.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(decoded) != 1 || decoded[0].File != "src/a.c" {
		t.Fatalf("unexpected results: %+v", decoded)
	}
}

func TestFileSink_NDJSONStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.ndjson")
	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	_ = sink.Write(Event{Type: "run.started", Mode: "apply"})
	_ = sink.Write(scan.Result{Status: scan.StatusFixed, File: "src/a.c"})
	_ = sink.Write(Event{Type: "run.finished", Processed: 1, Missing: 1})
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
}

func TestFileSink_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.json")
	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file not created: %v", err)
	}
}

func TestFileSink_Errors(t *testing.T) {
	if _, err := NewFileSink("", ""); err == nil {
		t.Fatal("empty path should fail")
	}
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "results.txt"), ""); err == nil {
		t.Fatal("uninferable format should fail")
	}
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "results.json"), "csv"); err == nil {
		t.Fatal("unsupported format should fail")
	}
}
