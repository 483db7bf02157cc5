package power

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Transition is a before/after pair reported by a platform swap.
type Transition struct {
	From State
	To   State
}

// Options configures a Guard.
type Options struct {
	// Logger receives diagnostics; defaults to a no-op logger.
	Logger *zap.Logger
	// OnRelease, if set, is called once with the restore transition.
	OnRelease func(Transition)
}

// Guard owns this process's execution state request from Install until
// Release. Callers defer Release right after NewGuard so the baseline is
// reinstalled on every return path.
type Guard struct {
	platform  Platform
	logger    *zap.Logger
	onRelease func(Transition)

	released sync.Once
}

// NewGuard creates a guard. It does not touch the platform.
func NewGuard(p Platform, opts Options) *Guard {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{
		platform:  p,
		logger:    logger,
		onRelease: opts.OnRelease,
	}
}

// Install replaces the current request with next and returns what the
// platform reported as the previous state. next must include
// Continuous; Install panics otherwise.
func (g *Guard) Install(next State) State {
	if !next.Has(Continuous) {
		panic(fmt.Sprintf("power: Install(%s) without Continuous", next.Hex()))
	}
	if stray := next &^ installable; stray != 0 {
		g.logger.Warn("dropping unsupported execution state bits",
			zap.String("bits", stray.Hex()))
		next &= installable
	}

	prev := g.platform.SetExecutionState(next)
	if prev == 0 {
		g.logger.Warn("platform reported an empty previous execution state")
	}
	g.logger.Debug("execution state installed",
		zap.Stringer("from", prev),
		zap.Stringer("to", next))
	return prev
}

// Release reinstalls Baseline. Only the first call reaches the platform;
// it returns the restore transition and true. Later calls return false.
func (g *Guard) Release() (Transition, bool) {
	var (
		t  Transition
		ok bool
	)
	g.released.Do(func() {
		t = Transition{From: g.platform.SetExecutionState(Baseline), To: Baseline}
		ok = true
		g.logger.Info("execution state restored",
			zap.String("from", t.From.String()),
			zap.String("from_hex", t.From.Hex()),
			zap.String("to", t.To.String()))
		if g.onRelease != nil {
			g.onRelease(t)
		}
	})
	return t, ok
}
