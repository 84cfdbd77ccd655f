package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/mdsite/internal/site"
	"github.com/gerunddev/mdsite/internal/styles"
	"github.com/gerunddev/mdsite/internal/tui"
)

// Build performs a one-shot site build
// Usage: build [base-path] [--incremental] [--verbose]
func Build(args []string) {
	incremental := hasFlag(args, "--incremental")
	verbose := hasFlag(args, "--verbose") || hasFlag(args, "-v")

	opts := site.BuildOptions{Incremental: incremental}
	if pos := positional(args); len(pos) > 0 {
		opts.BasePath = pos[0]
	}

	cfg := loadConfig()
	st := loadState()

	if incremental {
		fmt.Println(styles.TitleStyle.Render("mdsite build (incremental)"))
	} else {
		fmt.Println(styles.TitleStyle.Render("mdsite build"))
	}
	fmt.Printf("%s → %s\n\n", styles.PathStyle.Render(cfg.ContentDir), styles.PathStyle.Render(cfg.OutputDir))

	gen := site.NewGenerator(cfg, st)

	var (
		result *site.BuildResult
		err    error
	)
	if verbose {
		// Logs go to stderr in place of the spinner
		log, cleanup := newLogger(cfg, os.Stderr, true)
		defer cleanup()
		log.ConfigLoaded(cfg.ContentDir, cfg.OutputDir, cfg.BasePath)
		gen.SetLogger(log)

		result, err = gen.Build(opts)
		if err != nil {
			fail("Build failed", err)
		}
		fmt.Println(result.String())
	} else {
		log, cleanup := newLogger(cfg, nil, false)
		defer cleanup()
		gen.SetLogger(log)

		result, err = runWithSpinner(gen, opts)
		if err != nil {
			os.Exit(1)
		}
	}

	if err := saveState(st); err != nil {
		fail("Error saving state", err)
	}

	if result.Failed() {
		os.Exit(1)
	}
}

// runWithSpinner runs the build in a goroutine while the progress model renders
func runWithSpinner(gen *site.Generator, opts site.BuildOptions) (*site.BuildResult, error) {
	m := tui.InitBuildModel("Building site...")
	p := tea.NewProgram(m, tea.WithInput(os.Stdin))

	var (
		result *site.BuildResult
		err    error
	)
	gen.SetProgress(func(n, total int, src string) {
		p.Send(tui.StatusMsg(fmt.Sprintf("Rendering %s (%d/%d)", filepath.Base(src), n+1, total)))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err = gen.Build(opts)
		p.Send(tui.BuildMsg{Result: result, Err: err})
	}()

	if _, runErr := p.Run(); runErr != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + runErr.Error()))
	}
	<-done

	return result, err
}
