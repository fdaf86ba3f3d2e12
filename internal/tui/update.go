package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.currentStats = nil
				return m, m.sampleSelected()
			}

		case "down", "j":
			if m.cursor < len(m.containers)-1 {
				m.cursor++
				m.currentStats = nil
				return m, m.sampleSelected()
			}

		case "R":
			m.loading = true
			return m, fetchContainers(m.client)
		}

	case tickMsg:
		return m, tea.Batch(fetchContainers(m.client), m.sampleSelected(), tickCmd())

	case containersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.containers = msg.containers
		if m.cursor >= len(m.containers) {
			m.cursor = 0
		}

	case statsMsg:
		m.currentStats = msg.stats
		m.statsErr = msg.err
	}

	return m, nil
}

// sampleSelected samples the container under the cursor, if any
func (m Model) sampleSelected() tea.Cmd {
	if len(m.containers) == 0 {
		return nil
	}
	selected := m.containers[m.cursor]
	if selected.State != "running" {
		return nil
	}
	return sampleStats(m.sampler, selected.Name)
}
