package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/meghashyamc/swingpong/logger"
)

// LineReader treats every line read from r as one swing. The line content
// is ignored and never buffered whole, so lines of any length count once.
type LineReader struct {
	r      io.Reader
	logger logger.Logger
}

func NewLineReader(r io.Reader, log logger.Logger) *LineReader {
	return &LineReader{
		r:      r,
		logger: log,
	}
}

// Run returns nil at EOF or when ctx is cancelled, and the read error
// otherwise. A read that is still blocked on a cancelled run is left
// behind; stdin cannot be interrupted.
func (l *LineReader) Run(ctx context.Context, signal Signal) error {
	lines := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- readLines(ctx, bufio.NewReader(l.r), lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-lines:
			signal.Swing()
		case err := <-done:
			if err != nil {
				l.logger.Error("failed to read input", "err", err)
				return fmt.Errorf("failed to read input: %w", err)
			}
			l.logger.Info("input closed")
			return nil
		}
	}
}

// readLines sends one value per line on lines. A final line without a
// newline still counts. It returns nil at EOF.
func readLines(ctx context.Context, br *bufio.Reader, lines chan<- struct{}) error {
	partial := false
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			partial = true
		}

		switch {
		case err == nil:
			partial = false
			select {
			case lines <- struct{}{}:
			case <-ctx.Done():
				return nil
			}
		case errors.Is(err, bufio.ErrBufferFull):
			// long line, drop this chunk and keep reading
		case errors.Is(err, io.EOF):
			if partial {
				select {
				case lines <- struct{}{}:
				case <-ctx.Done():
				}
			}
			return nil
		default:
			return err
		}
	}
}
