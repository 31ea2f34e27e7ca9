package packard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/pkg/cage"
)

func TestRuleAverages(t *testing.T) {
	m := cage.NewMooreMap(3, 3)
	for i := range m.Cells() {
		require.NoError(t, m.Set(m.Topology().AddressAt(i), 255))
	}
	assert.Equal(t, uint8(255), Rule(m, cage.At(1, 1)))

	require.NoError(t, m.Set(cage.At(1, 1), 0))
	assert.Equal(t, uint8(226), Rule(m, cage.At(1, 1)))
}

func TestPopulationNeverGrows(t *testing.T) {
	sim := New(Config{Width: 12, Height: 12})
	require.NoError(t, sim.Reset(5))
	peak := 0
	for _, c := range sim.Cells() {
		peak = max(peak, int(c))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, sim.Step())
	}
	for _, c := range sim.Cells() {
		assert.LessOrEqual(t, int(c), peak)
	}
}
