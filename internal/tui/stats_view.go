package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/vessel/internal/model"
)

// renderStats renders the statistics for a container
func renderStats(container *model.Container, stats *model.Stats) string {
	if stats == nil {
		return helpStyle.Render("No stats available")
	}

	renderBar := func(percent float64, length int) string {
		filled := int(percent / 100 * float64(length))
		if filled > length {
			filled = length
		}
		return strings.Repeat("█", filled) + strings.Repeat("─", length-filled)
	}

	colorize := func(percent float64, text string) string {
		var color string
		switch {
		case percent > 80:
			color = "#F38BA8" // red/pink
		case percent > 50:
			color = "#FAB387" // orange
		default:
			color = "#A6E3A1" // green
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	barLength := 30

	// CPU box
	cpuBar := renderBar(stats.CPUPercent, barLength)
	cpuStr := fmt.Sprintf("%6.2f%% |%s|", stats.CPUPercent, cpuBar)
	cpuBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#89B4FA")).
		Padding(0, 1).
		Render("CPU\n" + colorize(stats.CPUPercent, cpuStr))

	// Memory box
	memBar := renderBar(stats.MemoryPercent, barLength)
	memStr := fmt.Sprintf("%s / %s (%.2f%%) |%s|",
		formatBytes(stats.MemoryUsage), formatBytes(stats.MemoryLimit),
		stats.MemoryPercent, memBar)
	memBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#A6E3A1")).
		Padding(0, 1).
		Render("MEM\n" + colorize(stats.MemoryPercent, memStr))

	// Cumulative CPU counters
	counterStr := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F9E2AF")).
		Render(fmt.Sprintf("usage_usec: %d | system_usec: %d",
			stats.CPUUsageUsec, stats.SystemUsageUsec))

	// Disk I/O
	blockStr := fmt.Sprintf("Read: %7s | Write: %7s",
		formatBytes(stats.BlockRead), formatBytes(stats.BlockWrite))
	blockStr = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CBA6F7")).
		Render("Disk I/O: " + blockStr)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F5C2E7")).
		Render("Container: " + container.Name)

	timeStr := helpStyle.Render("sampled " + stats.Timestamp.Format("15:04:05"))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		cpuBox,
		memBox,
		counterStr,
		blockStr,
		timeStr,
	)
}

// formatBytes formats a byte count for display
func formatBytes(b uint64) string {
	switch {
	case b > 1_000_000_000:
		return fmt.Sprintf("%.2f GB", float64(b)/1_000_000_000)
	case b > 1_000_000:
		return fmt.Sprintf("%.2f MB", float64(b)/1_000_000)
	case b > 1_000:
		return fmt.Sprintf("%.2f KB", float64(b)/1_000)
	default:
		return fmt.Sprintf("%d B", b)
	}
}
