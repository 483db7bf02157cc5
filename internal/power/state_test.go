package power

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	for _, intent := range []Intent{KeepSystemAwake, KeepSystemAndDisplayAwake} {
		s := Resolve(intent)
		assert.True(t, s.Has(Continuous), "intent %s", intent)
		assert.True(t, s.Has(SystemRequired), "intent %s", intent)
		assert.Equal(t, intent == KeepSystemAndDisplayAwake, s.Has(DisplayRequired), "intent %s", intent)
		assert.False(t, s.Has(UserPresent), "intent %s", intent)
	}

	assert.Equal(t, State(0x80000001), Resolve(KeepSystemAwake))
	assert.Equal(t, State(0x80000003), Resolve(KeepSystemAndDisplayAwake))
}

func TestResolve_OutOfRangeIntent(t *testing.T) {
	assert.Equal(t, Continuous|SystemRequired, Resolve(Intent(42)))
}

func TestDescribe_Recognized(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Continuous, "Continuous"},
		{SystemRequired, "SystemRequired"},
		{DisplayRequired, "DisplayRequired"},
		{Continuous | SystemRequired, "Continuous|SystemRequired"},
		{Continuous | DisplayRequired, "Continuous|DisplayRequired"},
		{Continuous | SystemRequired | DisplayRequired, "Continuous|SystemRequired|DisplayRequired"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.state))
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestDescribe_Unrecognized(t *testing.T) {
	for _, s := range []State{
		0,
		UserPresent,
		Continuous | UserPresent,
		Continuous | AwayModeRequired,
		SystemRequired | DisplayRequired,
		0xffffffff,
	} {
		assert.Equal(t, Unrecognized, Describe(s), "state %s", s.Hex())
	}
}

func TestDescribe_TotalAndPure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		s := State(rng.Uint32())
		first := Describe(s)
		require.NotEmpty(t, first)
		assert.Equal(t, first, Describe(s))
	}
}

func TestDescribe_RoundTripFromIntent(t *testing.T) {
	assert.Equal(t, "Continuous|SystemRequired", Describe(Resolve(KeepSystemAwake)))
	assert.Equal(t, "Continuous|SystemRequired|DisplayRequired", Describe(Resolve(KeepSystemAndDisplayAwake)))
	assert.Equal(t, "Continuous", Describe(Baseline))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "0x80000003", Resolve(KeepSystemAndDisplayAwake).Hex())
	assert.Equal(t, "0x00000000", State(0).Hex())
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "system", KeepSystemAwake.String())
	assert.Equal(t, "display", KeepSystemAndDisplayAwake.String())
}
