package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(cells []uint8) string {
	b := make([]byte, len(cells))
	for i, c := range cells {
		b[i] = '.'
		if c == 1 {
			b[i] = '#'
		}
	}
	return string(b)
}

func TestRule90Sierpinski(t *testing.T) {
	a, err := Build(Config{Width: 9, Rule: 90, Timed: true})
	require.NoError(t, err)

	want := []string{
		"....#....",
		"...#.#...",
		"..#...#..",
		".#.#.#.#.",
		"#.......#",
	}
	for gen, line := range want {
		assert.Equal(t, line, row(a.Map().Cells()), "generation %d", gen)
		if gen < len(want)-1 {
			assert.True(t, a.Running())
			require.NoError(t, a.Step())
		}
	}
	assert.False(t, a.Running(), "stops at half the width")
}

func TestUntimedKeepsRunning(t *testing.T) {
	a, err := Build(Config{Width: 8, Rule: 30})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, a.Step())
	}
	assert.True(t, a.Running())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rule": "300", "w": "64", "timed": "false"})
	assert.Equal(t, uint8(110), c.Rule)
	assert.Equal(t, 64, c.Width)
	assert.False(t, c.Timed)
	assert.False(t, c.Wrap)
	assert.True(t, FromMap(map[string]string{"wrap": "true"}).Wrap)

	assert.Equal(t, uint8(30), FromMap(map[string]string{"rule": "30"}).Rule)
}

func TestWrapJoinsEnds(t *testing.T) {
	// rule 2 moves a lone cell one step left per generation
	for _, tt := range []struct {
		wrap bool
		want string
	}{
		{false, "....."},
		{true, "....#"},
	} {
		a, err := Build(Config{Width: 5, Rule: 2, Wrap: tt.wrap})
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, a.Step())
		}
		assert.Equal(t, tt.want, row(a.Map().Cells()), "wrap=%v", tt.wrap)
	}
}
