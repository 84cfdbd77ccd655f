package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// WordWrap is the width used when rendering diffs for the terminal
const WordWrap = 120

// Unified returns a plain unified diff from old to new, labelled with name.
// Identical inputs produce an empty string.
func Unified(name, old, new string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name), old, new)
	return fmt.Sprint(gotextdiff.ToUnified(name, name, old, edits))
}

// Generate diffs the page currently written at outPath against a freshly
// rendered version of it. A missing output diffs against an empty file.
func Generate(outPath, rendered string) (string, error) {
	current, err := os.ReadFile(outPath)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read output file: %w", err)
	}

	unified := Unified(filepath.Base(outPath), string(current), rendered)
	if unified == "" {
		return "", nil
	}

	return Render(unified), nil
}

// Render wraps a unified diff in a diff code fence and renders it with glamour.
// The plain fence is returned when the renderer is unavailable.
func Render(unified string) string {
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(WordWrap),
	)
	if err != nil {
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}

	return rendered
}
