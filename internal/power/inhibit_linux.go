//go:build linux

package power

import (
	"os/exec"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// linuxPlatform holds a systemd-inhibit child for as long as the
// current state requests anything.
type linuxPlatform struct {
	mu      sync.Mutex
	logger  *zap.Logger
	current State
	cmd     *exec.Cmd
}

func newPlatform(logger *zap.Logger) Platform {
	return &linuxPlatform{logger: logger, current: Baseline}
}

func (l *linuxPlatform) SetExecutionState(next State) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.current
	old := l.cmd
	l.cmd = nil

	// Start the replacement before dropping the old lock so the
	// request never lapses.
	if what := systemdWhat(next); what != "" {
		cmd, err := l.start(what)
		if err != nil {
			l.logger.Warn("sleep inhibitor unavailable; state tracked only",
				zap.String("what", what),
				zap.Error(err))
		}
		l.cmd = cmd
	}

	stop(old)
	l.current = next
	return prev
}

func (l *linuxPlatform) start(what string) (*exec.Cmd, error) {
	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(path,
		"--what="+what,
		"--who=stay-awake",
		"--why=Session active",
		"--mode=block",
		"sleep", "infinity",
	)
	// Kernel sends SIGTERM to child when parent dies, so it is never orphaned.
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	// Reap the child in background so it doesn't become a zombie.
	go cmd.Wait()

	return cmd, nil
}

func (l *linuxPlatform) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stop(l.cmd)
	l.cmd = nil
	return nil
}
