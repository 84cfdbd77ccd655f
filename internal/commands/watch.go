package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerunddev/mdsite/internal/logger"
	"github.com/gerunddev/mdsite/internal/site"
	"github.com/gerunddev/mdsite/internal/styles"
)

// Watch rebuilds the site whenever sources or the template change
// Usage: watch [--interval D] [--verbose]
func Watch(args []string) {
	verbose := hasFlag(args, "--verbose") || hasFlag(args, "-v")

	cfg := loadConfig()
	if value, ok := flagValue(args, "--interval"); ok {
		interval, err := time.ParseDuration(value)
		if err != nil || interval <= 0 {
			fail("Invalid interval "+value, err)
		}
		cfg.Interval = interval
	}
	st := loadState()

	log, cleanup := newLogger(cfg, os.Stderr, verbose)
	defer cleanup()
	log.ConfigLoaded(cfg.ContentDir, cfg.OutputDir, cfg.BasePath)

	gen := site.NewGenerator(cfg, st)
	gen.SetLogger(log)

	fmt.Println(styles.TitleStyle.Render("mdsite watch"))
	fmt.Println(styles.DimStyle.Render(fmt.Sprintf("Polling %s every %v, press Ctrl+C to stop", cfg.ContentDir, cfg.Interval)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	save := func() error { return saveState(st) }
	if err := watchLoop(ctx, gen, cfg.Interval, save, log); err != nil {
		fail("Watch failed", err)
	}
	fmt.Println(styles.DimStyle.Render("Stopped watching"))
}

// watchLoop builds once, then polls for pending pages every interval until ctx is done.
// Only a failure of the initial build is returned; later failures are logged.
func watchLoop(ctx context.Context, gen *site.Generator, interval time.Duration, save func() error, log *logger.Logger) error {
	rebuild := func() error {
		result, err := gen.Build(site.BuildOptions{Incremental: true})
		if err != nil {
			return err
		}
		if err := save(); err != nil {
			log.StateError("save", err)
		}
		for _, pageErr := range result.Errors {
			log.Warn("page not rebuilt", "error", pageErr)
		}
		return nil
	}

	if err := rebuild(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pending, err := gen.Pending()
			if err != nil {
				log.Error("failed to check for changes", "error", err)
				continue
			}
			if len(pending) == 0 {
				continue
			}

			log.Info("changes detected", "pages", len(pending))
			if err := rebuild(); err != nil {
				log.Error("rebuild failed", "error", err)
			}

		case <-ctx.Done():
			log.Info("watch stopping")
			return nil
		}
	}
}
