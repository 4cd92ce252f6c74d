package display

import (
	"fmt"
	"io"

	"github.com/meghashyamc/swingpong/logger"
)

// xterm control sequences
const (
	clearScreen = "\x1B[2J"
	cursorHome  = "\x1B[1;1H"
)

// Terminal writes the track straight to an ANSI terminal.
type Terminal struct {
	out     io.Writer
	columns int
	logger  logger.Logger
}

func NewTerminal(out io.Writer, columns int, log logger.Logger) *Terminal {
	return &Terminal{
		out:     out,
		columns: columns,
		logger:  log,
	}
}

// Init clears the screen before the first frame.
func (t *Terminal) Init() error {
	if _, err := fmt.Fprintln(t.out, clearScreen); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	return nil
}

func (t *Terminal) Render(position float64) {
	if _, err := fmt.Fprintf(t.out, "%s%s\n", cursorHome, Line(position, t.columns)); err != nil {
		t.logger.Warn("failed to render frame", "err", err)
	}
}

func (t *Terminal) GameOver() {
	if _, err := fmt.Fprintln(t.out, GameOverMessage); err != nil {
		t.logger.Warn("failed to report game over", "err", err)
	}
}
