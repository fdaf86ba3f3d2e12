// internal/monitor/monitor.go
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/rusenback/vessel/internal/cgroup"
	"github.com/rusenback/vessel/internal/model"
)

// Sampler interface mahdollistaa mockauksen testeissä
type Sampler interface {
	Sample(name string) (*model.Stats, error)
}

// Varmista että cgroup.Sampler toteuttaa interfacen
var _ Sampler = (*cgroup.Sampler)(nil)

// Appender vastaanottaa valmiit stats recordit
type Appender interface {
	Append(stats *model.Stats) error
}

// Monitor ajaa mittaussilmukkaa: jokaisella kierroksella kaikki
// containerit mitataan ja recordit kirjoitetaan outputtiin. Yhden
// containerin virhe logataan ja silmukka jatkaa seuraavaan, koko
// prosessi ei kaadu koskaan yksittäiseen containeriin.
type Monitor struct {
	sampler    Sampler
	out        Appender
	logger     *slog.Logger
	containers []string
	interval   time.Duration
}

// New luo monitorin
func New(sampler Sampler, out Appender, logger *slog.Logger, containers []string, interval time.Duration) *Monitor {
	return &Monitor{
		sampler:    sampler,
		out:        out,
		logger:     logger,
		containers: containers,
		interval:   interval,
	}
}

// Run ajaa silmukkaa kunnes konteksti perutaan. Ensimmäinen kierros
// ajetaan heti, seuraavat intervallin välein.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.pollOnce()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// pollOnce mittaa kaikki containerit kerran
func (m *Monitor) pollOnce() {
	for _, name := range m.containers {
		stats, err := m.sampler.Sample(name)
		if err != nil {
			m.logger.Error("failed to sample container",
				slog.String("container", name), slog.Any("error", err))
			continue
		}

		if err := m.out.Append(stats); err != nil {
			m.logger.Error("failed to write stats",
				slog.String("container", name), slog.Any("error", err))
			continue
		}

		m.logger.Info("updated stats",
			slog.String("container", name),
			slog.Float64("cpu_percentage", stats.CPUPercent),
			slog.Float64("memory_percentage", stats.MemoryPercent))
	}
}
