//go:build darwin

package power

import (
	"os"
	"os/exec"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// darwinPlatform holds a caffeinate child for as long as the current
// state requests anything.
type darwinPlatform struct {
	mu      sync.Mutex
	logger  *zap.Logger
	current State
	cmd     *exec.Cmd
}

func newPlatform(logger *zap.Logger) Platform {
	return &darwinPlatform{logger: logger, current: Baseline}
}

func (d *darwinPlatform) SetExecutionState(next State) State {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.current
	old := d.cmd
	d.cmd = nil

	if flags := caffeinateFlags(next); len(flags) > 0 {
		cmd, err := d.start(flags)
		if err != nil {
			d.logger.Warn("caffeinate unavailable; state tracked only",
				zap.Strings("flags", flags),
				zap.Error(err))
		}
		d.cmd = cmd
	}

	stop(old)
	d.current = next
	return prev
}

func (d *darwinPlatform) start(flags []string) (*exec.Cmd, error) {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return nil, err
	}

	// -w <pid>: exit automatically when this process dies
	args := append(flags, "-w", strconv.Itoa(os.Getpid()))
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	go cmd.Wait()

	return cmd, nil
}

func (d *darwinPlatform) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	stop(d.cmd)
	d.cmd = nil
	return nil
}
