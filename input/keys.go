package input

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/meghashyamc/swingpong/logger"
)

// ScreenKeys turns tcell key presses into swings. Esc, Ctrl-C and q quit.
type ScreenKeys struct {
	screen tcell.Screen
	logger logger.Logger
}

func NewScreenKeys(screen tcell.Screen, log logger.Logger) *ScreenKeys {
	return &ScreenKeys{
		screen: screen,
		logger: log,
	}
}

func (k *ScreenKeys) Run(ctx context.Context, signal Signal) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := k.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := k.handle(ev, signal); err != nil {
				return err
			}
		}
	}
}

func (k *ScreenKeys) handle(ev tcell.Event, signal Signal) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			k.logger.Info("quit requested", "key", ev.Name())
			return ErrQuit
		}
		signal.Swing()
	case *tcell.EventResize:
		k.screen.Sync()
	}
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
