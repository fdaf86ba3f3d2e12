// internal/output/writer.go
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rusenback/vessel/internal/model"
)

// Writer kirjoittaa stats recordit JSON arrayna tiedostoon. Jokainen
// Append flushataan heti, jotta tiedostoa voi lukea kesken monitoroinnin.
type Writer struct {
	file  *os.File
	first bool
}

// NewWriter luo tai tyhjentää output tiedoston ja aloittaa JSON arrayn
func NewWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}

	if _, err := file.WriteString("[\n"); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write to %s: %w", path, err)
	}

	return &Writer{file: file, first: true}, nil
}

// Append lisää yhden recordin arrayhin
func (w *Writer) Append(stats *model.Stats) error {
	data, err := json.MarshalIndent(stats, "  ", "  ")
	if err != nil {
		return err
	}

	if !w.first {
		if _, err := w.file.WriteString(",\n"); err != nil {
			return err
		}
	}
	w.first = false

	if _, err := w.file.WriteString("  " + string(data)); err != nil {
		return err
	}

	return w.file.Sync()
}

// Close päättää JSON arrayn ja sulkee tiedoston
func (w *Writer) Close() error {
	if _, err := w.file.WriteString("\n]\n"); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
