// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml"
)

// Config on vessel monitor komennon TOML konfiguraatio
type Config struct {
	Containers      []string `toml:"containers"`
	IntervalSeconds uint64   `toml:"interval_seconds"`
	Output          string   `toml:"output"`
}

// Default palauttaa oletuskonfiguraation jota käytetään kun
// config tiedostoa ei ole
func Default() Config {
	return Config{
		IntervalSeconds: 1,
		Output:          "vessel_stats.json",
	}
}

// Load lukee konfiguraation TOML tiedostosta
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	tree, err := toml.Load(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg := Default()
	if err := tree.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Interval palauttaa mittausvälin durationina
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds == 0 {
		return time.Second
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}
