package display

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/meghashyamc/swingpong/logger"
)

const (
	trackRow    = 0
	gameOverRow = 2
)

var (
	trackStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ballStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	gameOverStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Screen paints the track into a tcell screen.
type Screen struct {
	screen  tcell.Screen
	columns int
	over    bool
	logger  logger.Logger
}

func NewScreen(screen tcell.Screen, columns int, log logger.Logger) *Screen {
	return &Screen{
		screen:  screen,
		columns: columns,
		logger:  log,
	}
}

func (s *Screen) Render(position float64) {
	s.screen.Clear()
	s.drawText(trackRow, Line(position, s.columns), trackStyle, ballStyle)
	s.screen.Show()
}

func (s *Screen) GameOver() {
	s.over = true
	s.drawText(gameOverRow, " "+GameOverMessage, gameOverStyle, gameOverStyle)
	s.screen.Show()
	s.logger.Debug("game over drawn")
}

// Close releases the terminal. tcell wipes the screen on exit, so a
// finished round is reported again on out.
func (s *Screen) Close(out io.Writer) {
	s.screen.Fini()
	if s.over {
		fmt.Fprintln(out, GameOverMessage)
	}
}

func (s *Screen) drawText(row int, line string, style, ball tcell.Style) {
	x := 0
	for _, r := range line {
		st := style
		if r == ballMarker {
			st = ball
		}
		s.screen.SetContent(x, row, r, nil, st)
		x++
	}
}
