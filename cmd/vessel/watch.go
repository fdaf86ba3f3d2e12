// cmd/vessel/watch.go
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rusenback/vessel/internal/cgroup"
	"github.com/rusenback/vessel/internal/docker"
	"github.com/rusenback/vessel/internal/tui"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show live container stats in a terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := docker.NewClient(docker.DefaultConfig())
			if err != nil {
				return fmt.Errorf("failed to connect to Docker: %w", err)
			}
			defer client.Close()

			locator, err := cgroup.NewLocator()
			if err != nil {
				return err
			}
			// Docker yhteys on jo auki, käytetään sitä myös ID:n
			// resolvaukseen inspect komennon sijaan
			sampler := cgroup.NewSampler(client, locator)

			p := tea.NewProgram(tui.NewModel(client, sampler), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}
}
