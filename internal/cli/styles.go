package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Семантические цвета статусов (адаптивные для светлых и тёмных тем).
var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMute = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

var (
	passStyle = lipgloss.NewStyle().Foreground(colorPass)
	warnStyle = lipgloss.NewStyle().Foreground(colorWarn)
	failStyle = lipgloss.NewStyle().Foreground(colorFail)
	muteStyle = lipgloss.NewStyle().Foreground(colorMute)
)

// Иконки статусов.
const (
	iconPass = "✓"
	iconWarn = "⚠"
	iconFail = "✗"
	iconSkip = "-"
)
