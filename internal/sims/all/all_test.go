package all

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/internal/core"
)

func TestEverySimRuns(t *testing.T) {
	want := []string{
		"ant", "briansbrain", "chain", "cyclic", "elementary", "life",
		"lineartotal", "packard", "reduction", "rug", "squares", "stepping", "sugar", "vant",
	}
	require.Equal(t, want, core.Names())

	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			sim, err := core.New(name, map[string]string{"w": "24", "h": "16"})
			require.NoError(t, err)
			require.NoError(t, sim.Reset(1))
			size := sim.Size()
			assert.Len(t, sim.Cells(), size.W*size.H)
			assert.Equal(t, 24, size.W)
			for i := 0; i < 3 && sim.Running(); i++ {
				require.NoError(t, sim.Step())
			}
			assert.Positive(t, sim.States())
			_, ok := sim.Parameters().Lookup("w")
			assert.True(t, ok)
		})
	}
}
