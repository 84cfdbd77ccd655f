package styles

import "github.com/charmbracelet/lipgloss"

// Terminal palette, adaptive so output stays readable on light backgrounds
var (
	Accent  = lipgloss.AdaptiveColor{Light: "#8E44AD", Dark: "#AB9DF2"}
	Success = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#A9DC76"}
	Failure = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6188"}
	Warning = lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FC9867"}
	Muted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#727072"}
	Path    = lipgloss.AdaptiveColor{Light: "#00838F", Dark: "#78DCE8"}
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Failure)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	DimStyle     = lipgloss.NewStyle().Foreground(Muted)
	SpinnerStyle = lipgloss.NewStyle().Foreground(Accent)
	PathStyle    = lipgloss.NewStyle().Foreground(Path)
	CountStyle   = lipgloss.NewStyle().Bold(true)
)
