package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI interface
func (m Model) View() string {
	// 40% left for the container list, the rest for stats
	leftWidth := int(float64(m.width) * 0.4)
	rightWidth := m.width - leftWidth

	left := panelStyle.Width(leftWidth - 4).Render(m.renderContainerList(leftWidth))
	right := panelStyle.Width(rightWidth - 4).Render(m.renderStatsPanel())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := helpStyle.Render("↑/↓: select • R: refresh • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// renderContainerList renders the container list panel
func (m Model) renderContainerList(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Containers") + "\n\n")

	if m.err != nil {
		s.WriteString(fmt.Sprintf("Error: %v\n", m.err))
		return s.String()
	}

	if m.loading && len(m.containers) == 0 {
		s.WriteString("Loading...\n")
		return s.String()
	}

	running := 0
	for _, c := range m.containers {
		if c.State == "running" {
			running++
		}
	}
	s.WriteString(fmt.Sprintf("%d total, %d running\n\n", len(m.containers), running))

	nameWidth := width - 20
	if nameWidth < 10 {
		nameWidth = 10
	}

	for i, container := range m.containers {
		name := truncate(container.Name, nameWidth)

		var stateStr string
		if container.State == "running" {
			stateStr = runningStyle.Render("running")
		} else {
			stateStr = stoppedStyle.Render(container.State)
		}

		line := fmt.Sprintf("%-*s %s", nameWidth, name, stateStr)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}

// renderStatsPanel renders the stats for the selected container
func (m Model) renderStatsPanel() string {
	if len(m.containers) == 0 {
		return helpStyle.Render("No containers")
	}

	selected := m.containers[m.cursor]
	if selected.State != "running" {
		return helpStyle.Render("Container is not running")
	}

	if m.statsErr != nil {
		return stoppedStyle.Render(fmt.Sprintf("Error: %v", m.statsErr))
	}

	return renderStats(&selected, m.currentStats)
}

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
