//go:build windows

package power

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
)

// SetThreadExecutionState is per thread, so every call is made from a
// single goroutine locked to its OS thread.
type windowsPlatform struct {
	logger *zap.Logger
	reqs   chan State
	resp   chan State

	closeOnce sync.Once
	done      chan struct{}
}

func newPlatform(logger *zap.Logger) Platform {
	w := &windowsPlatform{
		logger: logger,
		reqs:   make(chan State),
		resp:   make(chan State),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *windowsPlatform) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case next := <-w.reqs:
			w.resp <- w.call(next)
		case <-w.done:
			return
		}
	}
}

func (w *windowsPlatform) call(next State) State {
	r, _, err := procSetThreadExecutionState.Call(uintptr(next))
	if r == 0 {
		w.logger.Warn("SetThreadExecutionState returned NULL",
			zap.String("requested", next.Hex()),
			zap.Error(err))
	}
	return State(uint32(r))
}

func (w *windowsPlatform) SetExecutionState(next State) State {
	select {
	case w.reqs <- next:
		return <-w.resp
	case <-w.done:
		w.logger.Warn("execution state requested after close", zap.String("requested", next.Hex()))
		return 0
	}
}

func (w *windowsPlatform) Close() error {
	w.closeOnce.Do(func() { close(w.done) })
	return nil
}
