// Package trace records every tick of a round to CSV for offline analysis.
package trace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

const (
	ticksFile  = "ticks.csv"
	configFile = "config.yaml"
)

// Row is one tick of a round.
type Row struct {
	Tick       int     `csv:"tick"`
	Position   float64 `csv:"position"`
	Velocity   float64 `csv:"velocity"`
	Swung      bool    `csv:"swung"`
	Hit        bool    `csv:"hit"`
	JustTiming bool    `csv:"just_timing"`
}

// ConfigWriter is satisfied by *config.Config.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// Recorder writes ticks.csv into its directory. A nil *Recorder is valid and
// records nothing, which is what NewRecorder returns when dir is empty.
type Recorder struct {
	dir           string
	file          *os.File
	headerWritten bool
}

func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, ticksFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", ticksFile, err)
	}

	return &Recorder{dir: dir, file: f}, nil
}

// WriteConfig saves the settings the round was played with next to the ticks.
func (r *Recorder) WriteConfig(cfg ConfigWriter) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, configFile))
}

func (r *Recorder) Record(row Row) error {
	if r == nil {
		return nil
	}

	rows := []Row{row}
	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.file); err != nil {
			return fmt.Errorf("writing tick: %w", err)
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(rows, r.file); err != nil {
		return fmt.Errorf("writing tick: %w", err)
	}
	return nil
}

func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.file.Close()
}
