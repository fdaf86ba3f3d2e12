package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/vessel/internal/docker"
	"github.com/rusenback/vessel/internal/model"
)

// Sampler mittaa yhden containerin resurssit cgroup tiedostoista
type Sampler interface {
	Sample(name string) (*model.Stats, error)
}

// Model represents the TUI application state
type Model struct {
	client  docker.DockerClient
	sampler Sampler

	containers []model.Container
	cursor     int
	err        error
	loading    bool

	currentStats *model.Stats
	statsErr     error

	width  int
	height int
}

// Message types for Bubbletea update loop
type tickMsg time.Time

type containersMsg struct {
	containers []model.Container
	err        error
}

type statsMsg struct {
	stats *model.Stats
	err   error
}

// NewModel creates a new TUI model
func NewModel(client docker.DockerClient, sampler Sampler) Model {
	return Model{
		client:  client,
		sampler: sampler,
		loading: true,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchContainers(m.client), tickCmd())
}
