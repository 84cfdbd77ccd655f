package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gerunddev/mdsite/internal/config"
	"github.com/gerunddev/mdsite/internal/logger"
	"github.com/gerunddev/mdsite/internal/state"
	"github.com/google/uuid"
)

// SourceExt is the extension of page sources below the content directory
const SourceExt = ".md"

// Generator builds the site described by a config into its output directory
type Generator struct {
	config   *config.Config
	state    *state.State
	log      *logger.Logger
	progress ProgressFunc
}

// ProgressFunc is called before each page of a build is considered.
// done counts the pages already handled out of total.
type ProgressFunc func(done, total int, src string)

// NewGenerator creates a new generator instance
func NewGenerator(cfg *config.Config, st *state.State) *Generator {
	return &Generator{
		config: cfg,
		state:  st,
		log:    logger.Discard(),
	}
}

// SetLogger sets the logger for the generator
func (g *Generator) SetLogger(l *logger.Logger) {
	g.log = l
}

// SetProgress registers a callback for per-page build progress
func (g *Generator) SetProgress(fn ProgressFunc) {
	g.progress = fn
}

// BuildOptions controls a single build
type BuildOptions struct {
	// Incremental skips pages that are unchanged since the last build
	Incremental bool
	// BasePath overrides the configured base path when set
	BasePath string
}

// BuildResult represents the result of a build
type BuildResult struct {
	BuildID        string
	PagesGenerated int
	PagesSkipped   int
	StaticFiles    int
	Errors         []error
	StartTime      time.Time
	EndTime        time.Time
}

// Failed reports whether any page failed to build
func (r *BuildResult) Failed() bool {
	return len(r.Errors) > 0
}

// String returns a human-readable summary of the build result
func (r *BuildResult) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Build complete: %d pages generated, %d skipped, %d static files, %d errors (took %v)",
		r.PagesGenerated,
		r.PagesSkipped,
		r.StaticFiles,
		len(r.Errors),
		duration.Round(time.Millisecond),
	)
}

// Build renders every page below the content directory into the output directory.
// Page failures are collected in the result; the returned error is reserved for
// problems that stop the whole build (unreadable template, missing content dir).
func (g *Generator) Build(opts BuildOptions) (*BuildResult, error) {
	result := &BuildResult{
		BuildID:   uuid.NewString(),
		StartTime: time.Now(),
	}

	basePath := opts.BasePath
	if basePath == "" {
		basePath = g.config.BasePath
	}

	g.log.BuildStarted(result.BuildID, g.config.ContentDir, g.config.OutputDir, opts.Incremental)

	if err := g.config.CheckOutputDir(); err != nil {
		return nil, err
	}

	tmpl, err := os.ReadFile(g.config.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	templateChanged, templateHash, err := g.state.TemplateChanged(g.config.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to hash template: %w", err)
	}

	sources, err := ScanDirectory(g.config.ContentDir, SourceExt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan content: %w", err)
	}

	if !opts.Incremental && g.config.Clean {
		if err := os.RemoveAll(g.config.OutputDir); err != nil {
			return nil, fmt.Errorf("failed to clean output: %w", err)
		}
		g.log.Debug("output cleaned", "dir", g.config.OutputDir)
	}
	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	copied, err := CopyStaticTree(g.config.StaticDir, g.config.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}
	result.StaticFiles = copied
	g.log.StaticCopied(g.config.StaticDir, g.config.OutputDir, copied)

	g.removeStale(sources)

	for i, src := range sources {
		if g.progress != nil {
			g.progress(i, len(sources), src)
		}

		dest, err := OutputPath(g.config.ContentDir, g.config.OutputDir, src)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		if opts.Incremental && !templateChanged {
			skip, reason := g.canSkip(src, dest)
			if skip {
				g.log.PageSkipped(src, reason)
				result.PagesSkipped++
				continue
			}
		}

		nodes, err := GeneratePage(src, dest, string(tmpl), basePath)
		if err != nil {
			err = fmt.Errorf("%s: %w", src, err)
			g.log.PageError(src, err)
			result.Errors = append(result.Errors, err)
			// Retry on the next build
			delete(g.state.Pages, src)
			continue
		}
		g.log.PageGenerated(src, dest, nodes)
		result.PagesGenerated++

		if err := g.state.Update(src, dest); err != nil {
			g.log.StateError("update", err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", src, err))
		}
	}

	g.state.BuildID = result.BuildID
	g.state.TemplateHash = templateHash
	result.EndTime = time.Now()
	g.state.LastBuild = result.EndTime

	g.log.BuildCompleted(result.BuildID, result.PagesGenerated, result.PagesSkipped,
		len(result.Errors), result.EndTime.Sub(result.StartTime))

	return result, nil
}

// canSkip reports whether an unchanged page can keep its previous output
func (g *Generator) canSkip(src, dest string) (bool, string) {
	changed, err := g.state.HasChanged(src)
	if err != nil {
		g.log.StateError("check", err)
		return false, ""
	}
	if changed {
		return false, ""
	}
	if _, err := os.Stat(dest); err != nil {
		return false, ""
	}
	return true, "unchanged"
}

// removeStale forgets pages whose sources are gone and deletes their output
func (g *Generator) removeStale(sources []string) {
	outputs := make(map[string]string, len(g.state.Pages))
	for src, page := range g.state.Pages {
		outputs[src] = page.Output
	}

	for _, src := range g.state.Forget(sources) {
		out := outputs[src]
		if out == "" {
			continue
		}
		if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
			g.log.StateError("remove stale output", err)
			continue
		}
		g.log.Debug("stale page removed", "source", src, "dest", out)
	}
}

// Pending returns the sources that would be rebuilt by an incremental build,
// plus tracked sources that have been deleted
func (g *Generator) Pending() ([]string, error) {
	sources, err := ScanDirectory(g.config.ContentDir, SourceExt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan content: %w", err)
	}

	templateChanged, _, err := g.state.TemplateChanged(g.config.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to hash template: %w", err)
	}
	if templateChanged {
		return sources, nil
	}

	var pending []string
	present := make(map[string]bool, len(sources))
	for _, src := range sources {
		present[src] = true

		dest, err := OutputPath(g.config.ContentDir, g.config.OutputDir, src)
		if err != nil {
			return nil, err
		}
		if skip, _ := g.canSkip(src, dest); !skip {
			pending = append(pending, src)
		}
	}

	for src := range g.state.Pages {
		if !present[src] {
			pending = append(pending, src)
		}
	}

	sort.Strings(pending)
	return pending, nil
}

// GeneratePage renders the page at src through template and writes it to dest.
// It returns the number of nodes in the page's document tree.
func GeneratePage(src, dest, template, basePath string) (int, error) {
	md, err := os.ReadFile(src)
	if err != nil {
		return 0, err
	}

	page, nodes, err := renderPage(string(md), template, basePath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("failed to create page directory: %w", err)
	}
	if err := os.WriteFile(dest, []byte(page), 0644); err != nil {
		return 0, fmt.Errorf("failed to write page: %w", err)
	}

	return nodes, nil
}
