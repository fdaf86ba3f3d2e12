// cmd/vessel/monitor.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rusenback/vessel/internal/cgroup"
	"github.com/rusenback/vessel/internal/config"
	"github.com/rusenback/vessel/internal/docker"
	"github.com/rusenback/vessel/internal/monitor"
	"github.com/rusenback/vessel/internal/output"
)

func newMonitorCmd() *cobra.Command {
	var (
		configPath string
		containers []string
		interval   uint64
		outputPath string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Poll containers and append stats to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if _, err := os.Stat(configPath); err == nil {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			// CLI flagit ajavat configin yli jos annettu
			if len(containers) > 0 {
				cfg.Containers = containers
			}
			if cmd.Flags().Changed("interval") {
				cfg.IntervalSeconds = interval
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = outputPath
			}

			if len(cfg.Containers) == 0 && all {
				names, err := discoverRunning()
				if err != nil {
					return err
				}
				cfg.Containers = names
			}

			if len(cfg.Containers) == 0 {
				return errors.New("no containers specified, use --container, --all or a config file")
			}

			return runMonitor(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "configuration file path")
	cmd.Flags().StringArrayVarP(&containers, "container", "n", nil, "container name or ID to monitor (repeatable)")
	cmd.Flags().Uint64VarP(&interval, "interval", "i", 1, "monitoring interval in seconds")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "vessel_stats.json", "output JSON file path")
	cmd.Flags().BoolVar(&all, "all", false, "monitor all running containers")

	return cmd
}

// discoverRunning hakee käynnissä olevat containerit Docker API:sta
func discoverRunning() ([]string, error) {
	client, err := docker.NewClient(docker.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}
	defer client.Close()

	names, err := client.RunningContainerNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.New("no running containers found")
	}
	return names, nil
}

func runMonitor(ctx context.Context, cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	locator, err := cgroup.NewLocator()
	if err != nil {
		return err
	}
	sampler := cgroup.NewSampler(cgroup.ExecResolver{}, locator)

	writer, err := output.NewWriter(cfg.Output)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("monitoring containers",
		slog.Any("containers", cfg.Containers),
		slog.Duration("interval", cfg.Interval()),
		slog.String("output", cfg.Output))

	m := monitor.New(sampler, writer, logger, cfg.Containers, cfg.Interval())
	err = m.Run(ctx)

	if closeErr := writer.Close(); closeErr != nil {
		logger.Error("failed to close output file", slog.Any("error", closeErr))
	}

	// Ctrl+C on normaali tapa lopettaa
	if errors.Is(err, context.Canceled) {
		logger.Info("monitoring stopped")
		return nil
	}
	return err
}
