package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gerunddev/mdsite/internal/config"
	"github.com/gerunddev/mdsite/internal/site"
	"github.com/gerunddev/mdsite/internal/state"
	"github.com/gerunddev/mdsite/internal/styles"
)

// Status displays the last build and the pages waiting to be rebuilt
func Status() {
	cfg := loadConfig()
	st := loadState()

	pending, err := site.NewGenerator(cfg, st).Pending()
	if err != nil {
		fail("Error checking sources", err)
	}

	fmt.Print(formatStatus(cfg, st, pending, time.Now()))
}

func formatStatus(cfg *config.Config, st *state.State, pending []string, now time.Time) string {
	var out string
	out += styles.TitleStyle.Render("mdsite status") + "\n\n"
	out += fmt.Sprintf("Content:  %s\n", styles.PathStyle.Render(cfg.ContentDir))
	out += fmt.Sprintf("Output:   %s\n", styles.PathStyle.Render(cfg.OutputDir))
	out += fmt.Sprintf("Template: %s\n", styles.PathStyle.Render(cfg.Template))
	out += fmt.Sprintf("Config:   %s\n\n", styles.DimStyle.Render(config.ConfigPath()))

	if st.BuildID == "" {
		out += styles.WarningStyle.Render("! Site has not been built yet") + "\n"
	} else {
		ago := now.Sub(st.LastBuild).Round(time.Second)
		out += fmt.Sprintf("Last build: %s %s\n",
			st.LastBuild.Format(time.DateTime),
			styles.DimStyle.Render(fmt.Sprintf("(%v ago, %s)", ago, st.BuildID)))
		out += fmt.Sprintf("Pages:      %s\n", styles.CountStyle.Render(fmt.Sprint(len(st.Pages))))
	}

	if len(pending) == 0 {
		out += styles.SuccessStyle.Render("✓ Everything is up to date") + "\n"
		return out
	}

	out += "\n" + styles.WarningStyle.Render(fmt.Sprintf("%d page(s) pending:", len(pending))) + "\n"
	for _, src := range pending {
		label := src
		if rel, err := filepath.Rel(cfg.ContentDir, src); err == nil {
			label = rel
		}
		if _, err := os.Stat(src); os.IsNotExist(err) {
			label += styles.DimStyle.Render(" (deleted)")
		}
		out += "  • " + label + "\n"
	}
	return out
}
