package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha base with the card's rose accents
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRose     lipgloss.Color = "#ff4d6d"
	colorBlush    lipgloss.Color = "#ffb3c1"
	colorWhite    lipgloss.Color = "#ffffff"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBlush).Padding(1, 3)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	captionStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	iconStyle    = lipgloss.NewStyle().Foreground(colorRose).Bold(true)
	iconIdle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	yesStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorRose)
	noStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1)
	backStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	heartStyle   = lipgloss.NewStyle().Foreground(colorRose)
	helpStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
)
