package briansbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/pkg/cage"
)

func TestRuleCycle(t *testing.T) {
	m := cage.NewMooreMap(5, 5)
	require.NoError(t, m.Set(cage.At(1, 2), stateOn))
	require.NoError(t, m.Set(cage.At(3, 2), stateOn))
	require.NoError(t, m.Set(cage.At(2, 1), stateDying))

	assert.Equal(t, uint8(stateOn), Rule(m, cage.At(2, 2)), "two firing neighbors")
	assert.Equal(t, uint8(stateDying), Rule(m, cage.At(1, 2)))
	assert.Equal(t, uint8(stateDead), Rule(m, cage.At(2, 1)))
	assert.Equal(t, uint8(stateDead), Rule(m, cage.At(0, 0)))
}

func TestSimSteps(t *testing.T) {
	sim := New(Config{Width: 32, Height: 32, Frequency: 0.2})
	require.NoError(t, sim.Reset(9))
	for _, c := range sim.Cells() {
		assert.LessOrEqual(t, c, uint8(stateDying))
	}
	require.NoError(t, sim.Step())
	assert.Equal(t, 1, sim.Generation())
	for _, c := range sim.Cells() {
		assert.LessOrEqual(t, c, uint8(stateDying))
	}
}
