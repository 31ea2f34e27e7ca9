package metrics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/internal/core"
	"cage/pkg/cage"
)

func blinker(*cage.RNG) (*cage.Automaton, error) {
	m := cage.NewMooreMap(5, 5)
	rule, err := cage.TotalisticFor("conway", m.Neighborhood())
	if err != nil {
		return nil, err
	}
	a, err := cage.NewSynchronous(m, 2, rule)
	if err != nil {
		return nil, err
	}
	for x := 1; x <= 3; x++ {
		if err := m.Set(cage.At(x, 2), 1); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func TestRecorderObservesEngine(t *testing.T) {
	r := NewRecorder()
	e := core.NewEngine("blinker", core.ParameterSnapshot{}, blinker)
	e.SetObserver(r)
	require.NoError(t, e.Reset(1))
	for i := 0; i < 4; i++ {
		require.NoError(t, e.Step())
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(r.generations.WithLabelValues("blinker")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.liveCells.WithLabelValues("blinker")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.agents.WithLabelValues("blinker")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.stepDuration))
}

func TestWriteText(t *testing.T) {
	r := NewRecorder()
	a, err := blinker(nil)
	require.NoError(t, err)
	r.ObserveStep("life", a, 2*time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE cage_generations_total counter")
	assert.Contains(t, out, `cage_generations_total{sim="life"} 1`)
	assert.Contains(t, out, `cage_live_cells{sim="life"} 3`)
	assert.Contains(t, out, `cage_step_duration_seconds_count{sim="life"} 1`)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}
