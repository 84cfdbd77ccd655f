package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestBuildHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.BuildStarted("b-1", "content", "docs", true)
	l.PageGenerated("content/index.md", "docs/index.html", 12)
	l.PageSkipped("content/about.md", "unchanged")
	l.PageError("content/bad.md", errors.New("no level-1 heading"))
	l.StaticCopied("static", "docs", 3)
	l.BuildCompleted("b-1", 1, 1, 1, 1500*time.Microsecond)

	out := buf.String()
	for _, want := range []string{
		"build started", "build_id=b-1", "incremental=true",
		"page generated", "nodes=12",
		"page skipped", "reason=unchanged",
		"page failed", "no level-1 heading",
		"static assets copied", "files=3",
		"build completed", "pages_generated=1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Log output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.PageSkipped("content/about.md", "unchanged")
	l.ConfigLoaded("content", "docs", "/")
	if buf.Len() != 0 {
		t.Errorf("Debug helpers should be filtered at info level, got %q", buf.String())
	}

	l.StateError("save", errors.New("disk full"))
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("Expected state error in output, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdsite.log")

	l, cleanup, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.Info("hello file")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("Expected log line in file, got %q", data)
	}

	if _, _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("Expected error for a log file in a missing directory")
	}
}

func TestNewMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	l := NewMultiLogger(&a, &b)
	l.Info("both")

	if !strings.Contains(a.String(), "both") || !strings.Contains(b.String(), "both") {
		t.Error("Expected line in both writers")
	}

	Discard().Info("nowhere")
}
