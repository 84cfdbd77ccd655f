package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/mdsite/internal/site"
	"github.com/gerunddev/mdsite/internal/styles"
)

// maxListedErrors caps the page errors printed under the summary
const maxListedErrors = 5

// buildModel is the Bubble Tea model for the build progress display
type buildModel struct {
	spinner  spinner.Model
	status   string
	complete bool
	result   *site.BuildResult
	err      error
}

// BuildMsg is sent when the build completes
type BuildMsg struct {
	Result *site.BuildResult
	Err    error
}

// StatusMsg replaces the line shown next to the spinner
type StatusMsg string

// InitBuildModel creates a new build progress model
func InitBuildModel(status string) buildModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return buildModel{
		spinner: s,
		status:  status,
	}
}

func (m buildModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case StatusMsg:
		m.status = string(msg)
		return m, nil

	case BuildMsg:
		m.complete = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m buildModel) View() string {
	if !m.complete {
		return fmt.Sprintf("\n%s %s\n\n", m.spinner.View(), m.status)
	}

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Build failed: "+m.err.Error()) + "\n"
	}

	r := m.result
	var b strings.Builder
	if r.PagesGenerated == 0 && r.PagesSkipped > 0 {
		b.WriteString(styles.SuccessStyle.Render("✓ Site is up to date"))
	} else {
		b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("✓ Generated %d page(s)", r.PagesGenerated)))
	}
	if r.PagesSkipped > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(", %d unchanged", r.PagesSkipped)))
	}
	if r.StaticFiles > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(", %d static file(s)", r.StaticFiles)))
	}
	if len(r.Errors) > 0 {
		b.WriteString(", " + styles.ErrorStyle.Render(fmt.Sprintf("%d error(s)", len(r.Errors))))
	}
	b.WriteString("\n")

	for i, err := range r.Errors {
		if i == maxListedErrors {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  … and %d more", len(r.Errors)-maxListedErrors)) + "\n")
			break
		}
		b.WriteString(styles.ErrorStyle.Render("  ✗ "+err.Error()) + "\n")
	}

	duration := r.EndTime.Sub(r.StartTime).Round(time.Millisecond)
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("Completed in %v", duration)) + "\n")
	return b.String()
}
