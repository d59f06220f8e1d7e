package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 1

// pagerModel shows a read-only document in a scrollable viewport
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

// Init implements tea.Model
func (m pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.footer())
}

func (m pagerModel) footer() string {
	info := styles.Dim.Render(m.title + "  ")
	percent := styles.Heading.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	return info + percent + "  " + styles.Dim.Render("↑/↓ scroll · q quit")
}

// RunPager displays content full-screen until the user quits.
func RunPager(title, content string) error {
	RefreshStyles()
	p := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
