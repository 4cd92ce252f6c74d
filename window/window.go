// Package window shows the track in a desktop window. The Frontend is both
// the display and the input source of a round.
package window

import (
	"context"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/swingpong/assets"
	"github.com/meghashyamc/swingpong/display"
	"github.com/meghashyamc/swingpong/input"
	"github.com/meghashyamc/swingpong/logger"
)

const (
	marginX     = 60.0
	trackHeight = 4.0
	zoneHeight  = 40.0
	ballRadius  = 10.0
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	trackColor      = color.RGBA{120, 120, 120, 255}
	zoneColor       = color.RGBA{40, 90, 160, 255}
	ballColor       = color.RGBA{255, 220, 0, 255}
	gameOverColor   = color.RGBA{255, 50, 50, 255}
)

type Options struct {
	Width      int
	Height     int
	Title      string
	HalfPaddle float64
}

type Frontend struct {
	opts   Options
	swings chan struct{}
	ready  chan struct{}
	once   sync.Once
	logger logger.Logger

	mu       sync.Mutex
	position float64
	over     bool
}

func New(opts Options, log logger.Logger) *Frontend {
	return &Frontend{
		opts:   opts,
		swings: make(chan struct{}, 1),
		ready:  make(chan struct{}),
		logger: log,
	}
}

// Show opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func (f *Frontend) Show() error {
	ebiten.SetWindowSize(f.opts.Width, f.opts.Height)
	ebiten.SetWindowTitle(f.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	f.logger.Info("opening window", "width", f.opts.Width, "height", f.opts.Height)
	return ebiten.RunGame(f)
}

// Ready is closed once ebiten runs its first update, when the window is on
// screen and taking input.
func (f *Frontend) Ready() <-chan struct{} {
	return f.ready
}

func (f *Frontend) markReady() {
	f.once.Do(func() {
		close(f.ready)
	})
}

func (f *Frontend) Render(position float64) {
	f.mu.Lock()
	f.position = position
	f.mu.Unlock()
}

func (f *Frontend) GameOver() {
	f.mu.Lock()
	f.over = true
	f.mu.Unlock()
}

// Run forwards key presses seen by Update to signal.
func (f *Frontend) Run(ctx context.Context, signal input.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-f.swings:
			signal.Swing()
		}
	}
}

// swing queues one swing. Presses landing before Run drains the previous
// one coalesce, matching the swing flag itself.
func (f *Frontend) swing() {
	select {
	case f.swings <- struct{}{}:
	default:
	}
}

func (f *Frontend) snapshot() (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.position, f.over
}

func (f *Frontend) Update() error {
	f.markReady()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		f.swing()
	}
	return nil
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	position, over := f.snapshot()
	width := float64(f.opts.Width)
	midY := float64(f.opts.Height) / 2

	vector.DrawFilledRect(screen, marginX, float32(midY-trackHeight/2), float32(width-2*marginX), trackHeight, trackColor, false)

	zoneWidth := trackX(2*f.opts.HalfPaddle, width) - trackX(0, width)
	for _, center := range []float64{0, 1} {
		x := trackX(center-f.opts.HalfPaddle, width)
		vector.DrawFilledRect(screen, float32(x), float32(midY-zoneHeight/2), float32(zoneWidth), zoneHeight, zoneColor, false)
	}

	if !over {
		vector.DrawFilledCircle(screen, float32(trackX(position, width)), float32(midY), ballRadius, ballColor, true)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(width/2-60, midY-60)
	op.ColorScale.ScaleWithColor(gameOverColor)
	text.Draw(screen, display.GameOverMessage, assets.HUDFont, op)
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return f.opts.Width, f.opts.Height
}

// trackX maps a track coordinate to a pixel column, leaving a margin on
// both sides so the paddle zones stay on screen.
func trackX(position, width float64) float64 {
	return marginX + position*(width-2*marginX)
}

var (
	_ display.Display = (*Frontend)(nil)
	_ input.Source    = (*Frontend)(nil)
)
