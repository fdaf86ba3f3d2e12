package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/vessel/internal/docker"
)

// tickCmd creates a command that sends a tick message every 2 seconds
func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchContainers creates a command to fetch the container list
func fetchContainers(client docker.DockerClient) tea.Cmd {
	return func() tea.Msg {
		containers, err := client.ListContainers()
		return containersMsg{containers: containers, err: err}
	}
}

// sampleStats creates a command that samples the selected container
// from its cgroup files
func sampleStats(sampler Sampler, name string) tea.Cmd {
	return func() tea.Msg {
		stats, err := sampler.Sample(name)
		return statsMsg{stats: stats, err: err}
	}
}
