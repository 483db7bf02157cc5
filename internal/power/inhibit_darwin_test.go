//go:build darwin

package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDarwinPlatform_MissingBinaryTracksOnly(t *testing.T) {
	t.Setenv("PATH", "")
	core, logs := observer.New(zapcore.WarnLevel)
	p := newPlatform(zap.New(core))
	t.Cleanup(func() { p.Close() })

	display := Resolve(KeepSystemAndDisplayAwake)
	system := Resolve(KeepSystemAwake)

	assert.Equal(t, Baseline, p.SetExecutionState(display))
	assert.Equal(t, display, p.SetExecutionState(system))
	assert.Equal(t, system, p.SetExecutionState(Baseline))
	assert.Equal(t, Baseline, p.SetExecutionState(Baseline))

	warns := logs.FilterMessage("caffeinate unavailable; state tracked only").All()
	require.Len(t, warns, 2)
	assert.Nil(t, p.(*darwinPlatform).cmd)
}

func TestDarwinPlatform_GuardRoundTripWithoutBinary(t *testing.T) {
	t.Setenv("PATH", "")
	core, logs := observer.New(zapcore.WarnLevel)
	p := newPlatform(zap.New(core))
	t.Cleanup(func() { p.Close() })
	g := NewGuard(p, Options{})

	prev := g.Install(Resolve(KeepSystemAndDisplayAwake))
	tr, ok := g.Release()

	assert.Equal(t, Baseline, prev)
	require.True(t, ok)
	assert.Equal(t, Transition{From: Continuous | SystemRequired | DisplayRequired, To: Baseline}, tr)
	assert.Equal(t, 1, logs.Len())
}
