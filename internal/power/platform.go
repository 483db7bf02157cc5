package power

import (
	"sync"

	"go.uber.org/zap"
)

// Platform installs execution states with the operating system.
type Platform interface {
	// SetExecutionState replaces the current request with next and
	// returns the request it replaced. It never fails: backends that
	// cannot honour a request log it and still report the swap.
	SetExecutionState(next State) State

	// Close releases backend resources. Safe to call multiple times.
	Close() error
}

// New returns a platform-appropriate Platform.
// See platform_windows.go, inhibit_linux.go, inhibit_darwin.go, platform_other.go.
func New(logger *zap.Logger) Platform {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newPlatform(logger)
}

// MemoryPlatform only remembers the last installed state.
type MemoryPlatform struct {
	mu      sync.Mutex
	current State
}

// NewMemoryPlatform returns a MemoryPlatform holding initial.
func NewMemoryPlatform(initial State) *MemoryPlatform {
	return &MemoryPlatform{current: initial}
}

// SetExecutionState stores next and returns the state it replaced.
func (m *MemoryPlatform) SetExecutionState(next State) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.current
	m.current = next
	return prev
}

// Current returns the last installed state.
func (m *MemoryPlatform) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Close is a no-op.
func (m *MemoryPlatform) Close() error { return nil }
