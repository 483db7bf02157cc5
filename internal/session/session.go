// Package session runs one keep-awake session: install the requested
// execution state, wait for the operator, restore the baseline.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/scienceol/stayawake/internal/power"
	"github.com/scienceol/stayawake/internal/ui"
	"go.uber.org/zap"
)

// ErrInput is returned when reading the session-ending line fails.
var ErrInput = errors.New("reading terminal input")

// Options are the collaborators of a session.
type Options struct {
	Intent   power.Intent
	Input    io.Reader
	Printer  *ui.Printer
	Platform power.Platform
	Logger   *zap.Logger
	// OnRelease observes the restore transition.
	OnRelease func(power.Transition)
}

// Run holds the execution state for opts.Intent until a line (or EOF) is
// read from opts.Input or ctx is done. The baseline is restored on every
// return path, including a failed read.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p := opts.Printer

	state := power.Resolve(opts.Intent)

	guard := power.NewGuard(opts.Platform, power.Options{
		Logger:    logger,
		OnRelease: opts.OnRelease,
	})
	defer func() {
		if t, ok := guard.Release(); ok {
			p.Info("Reset thread execution state:")
			p.Transition(label(t.From), label(t.To))
		}
	}()

	prev := guard.Install(state)
	p.Info("Keep awake mode: %s", opts.Intent)
	p.Transition(label(prev), label(state))

	p.Prompt("Press Enter to end the session...")

	interrupted, err := waitForLine(ctx, opts.Input)
	if err != nil {
		p.Newline()
		return err
	}
	if interrupted {
		p.Newline()
		p.Warn("Interrupted, shutting down...")
		return nil
	}
	p.Success("Session ended")
	return nil
}

func label(s power.State) string {
	return fmt.Sprintf("%s (%s)", s, s.Hex())
}

// waitForLine blocks until in yields a line or EOF, or ctx is done.
// interrupted reports the latter.
func waitForLine(ctx context.Context, in io.Reader) (interrupted bool, err error) {
	errCh := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(in).ReadString('\n')
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("%w: %w", ErrInput, err)
		}
		return false, nil
	case <-ctx.Done():
		// The read is abandoned; its goroutine stays blocked until exit.
		return true, nil
	}
}
