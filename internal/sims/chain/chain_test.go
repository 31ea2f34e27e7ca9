package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/pkg/cage"
)

func TestCertainFireSpreads(t *testing.T) {
	c := Config{Width: 9, Height: 9, Probability: 1, Particles: 2, Radius: 1}
	a, err := Build(c, cage.NewRNG(3))
	require.NoError(t, err)
	centre := a.Map().Center()
	require.Equal(t, Firing, a.Map().Get(centre))
	require.True(t, a.Running())

	require.NoError(t, a.Step())
	assert.Equal(t, Fired, a.Map().Get(centre))

	firing := 0
	for i, v := range a.Map().Cells() {
		if v != Firing {
			continue
		}
		firing++
		at := a.Map().Topology().AddressAt(i)
		assert.LessOrEqual(t, abs(at.X-centre.X), 1)
		assert.LessOrEqual(t, abs(at.Y-centre.Y), 1)
	}
	assert.GreaterOrEqual(t, firing, 1)
	assert.LessOrEqual(t, firing, 2)
}

func TestNoFireBurnsOut(t *testing.T) {
	a, err := Build(Config{Width: 5, Height: 5, Probability: 0, Particles: 2, Radius: 2}, cage.NewRNG(1))
	require.NoError(t, err)
	require.NoError(t, a.Step())
	assert.False(t, a.Running())
}

func TestLandOnlyIgnitesCharged(t *testing.T) {
	a, err := Build(Config{Width: 5, Height: 5, Probability: 0}, cage.NewRNG(1))
	require.NoError(t, err)
	m := a.Map()
	require.NoError(t, m.Set(cage.At(0, 0), Fired))

	r := NewReaction(DefaultConfig(), cage.NewRNG(1))
	r.particles = []cage.Address{cage.At(5, 0), cage.At(-1, -1), cage.At(1, 1)}
	require.NoError(t, r.Land(a))

	assert.Equal(t, Fired, m.Get(cage.At(0, 0)), "wrapped onto a fired cell")
	assert.Equal(t, Firing, m.Get(cage.At(4, 4)))
	assert.Equal(t, Firing, m.Get(cage.At(1, 1)))
	assert.Empty(t, r.Pending())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
