package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/mdtoc/internal/config"
)

// StyleManager encapsulates all report styles
type StyleManager struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Entry   lipgloss.Style
	Anchor  lipgloss.Style
	Dim     lipgloss.Style
	Warn    lipgloss.Style
	OK      lipgloss.Style

	// Chrome styles
	Border  lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:   lipgloss.NewStyle().Bold(true),
		Heading: lipgloss.NewStyle().Bold(true),
		Entry:   lipgloss.NewStyle(),
		Anchor:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	headerColor := parseANSIColor(config.GetColorHeader())
	entryColor := parseANSIColor(config.GetColorEntry())
	dimColor := parseANSIColor(config.GetColorDim())

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(headerColor)
	s.Heading = lipgloss.NewStyle().Bold(true).Foreground(headerColor)
	s.Entry = lipgloss.NewStyle().Foreground(entryColor)
	s.Anchor = lipgloss.NewStyle().Foreground(dimColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Divider = lipgloss.NewStyle().Foreground(dimColor)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dimColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
