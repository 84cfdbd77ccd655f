package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gerunddev/mdsite/internal/site"
)

func TestBuildModelCompletes(t *testing.T) {
	start := time.Now()
	result := &site.BuildResult{
		PagesGenerated: 3,
		PagesSkipped:   1,
		StaticFiles:    2,
		StartTime:      start,
		EndTime:        start.Add(40 * time.Millisecond),
	}

	m := InitBuildModel("Building site...")
	if !strings.Contains(m.View(), "Building site...") {
		t.Errorf("Expected status in view, got %q", m.View())
	}

	updated, cmd := m.Update(BuildMsg{Result: result})
	if cmd == nil {
		t.Fatal("Expected quit command after build completes")
	}

	view := updated.View()
	for _, want := range []string{"Generated 3 page(s)", "1 unchanged", "2 static file(s)", "Completed in 40ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}

func TestBuildModelUpToDate(t *testing.T) {
	m := InitBuildModel("Building site...")
	updated, _ := m.Update(BuildMsg{Result: &site.BuildResult{PagesSkipped: 4}})

	if !strings.Contains(updated.View(), "Site is up to date") {
		t.Errorf("Expected up to date message, got:\n%s", updated.View())
	}
}

func TestBuildModelErrors(t *testing.T) {
	var errs []error
	for i := 0; i < maxListedErrors+2; i++ {
		errs = append(errs, errors.New("content/bad.md: invalid markdown syntax"))
	}

	m := InitBuildModel("Building site...")
	updated, _ := m.Update(BuildMsg{Result: &site.BuildResult{PagesGenerated: 1, Errors: errs}})

	view := updated.View()
	if !strings.Contains(view, "7 error(s)") {
		t.Errorf("Expected error count, got:\n%s", view)
	}
	if !strings.Contains(view, "and 2 more") {
		t.Errorf("Expected truncated error list, got:\n%s", view)
	}
}

func TestBuildModelFatal(t *testing.T) {
	m := InitBuildModel("Building site...")
	updated, _ := m.Update(BuildMsg{Err: errors.New("failed to read template")})

	if !strings.Contains(updated.View(), "Build failed: failed to read template") {
		t.Errorf("Expected failure message, got:\n%s", updated.View())
	}
}

func TestBuildModelStatus(t *testing.T) {
	m := InitBuildModel("Building site...")
	updated, _ := m.Update(StatusMsg("Rebuilding 2 page(s)..."))

	if !strings.Contains(updated.View(), "Rebuilding 2 page(s)...") {
		t.Errorf("Expected new status, got:\n%s", updated.View())
	}
}
