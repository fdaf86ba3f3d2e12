// internal/model/stats.go
package model

import "time"

// Stats sisältää yhden containerin resurssitiedot yhdeltä mittauskierrokselta.
// Serialisoidaan sellaisenaan JSON output tiedostoon.
type Stats struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// CPU
	CPUPercent      float64 `json:"cpu_percentage"`
	CPUUsageUsec    uint64  `json:"cpu_usage_usec"`    // Cumulative counter from cpu.stat
	SystemUsageUsec uint64  `json:"system_usage_usec"` // Cumulative counter from cpu.stat

	// Memory
	MemoryUsage   uint64  `json:"memory_usage"`
	MemoryLimit   uint64  `json:"memory_limit"`
	MemoryPercent float64 `json:"memory_percentage"`

	// Network (aina 0, katso sampler)
	NetworkRx uint64 `json:"network_rx"`
	NetworkTx uint64 `json:"network_tx"`

	// Block I/O (Disk)
	BlockRead  uint64 `json:"block_read"`  // Total bytes read from disk
	BlockWrite uint64 `json:"block_write"` // Total bytes written to disk

	Timestamp time.Time `json:"timestamp"`
}
