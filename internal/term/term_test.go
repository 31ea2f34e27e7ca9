package term

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cage/internal/core"
	"cage/internal/play"
	"cage/pkg/cage"
)

func blinkerSession(t *testing.T) *play.Session {
	t.Helper()
	sim := core.NewEngine("blinker", core.ParameterSnapshot{}, func(*cage.RNG) (*cage.Automaton, error) {
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
	})
	s, err := play.NewSession(sim, 1, 0, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	return s
}

func handler(t *testing.T, p *Player, key interface{}) func() error {
	t.Helper()
	for _, kb := range p.keys {
		if kb.key == key {
			return kb.handler
		}
	}
	t.Fatalf("no binding for %v", key)
	return nil
}

func TestKeysDriveSession(t *testing.T) {
	s := blinkerSession(t)
	p := New(s, 30, false, nil)

	require.NoError(t, handler(t, p, gocui.KeySpace)())
	assert.True(t, s.Paused())

	require.NoError(t, handler(t, p, gocui.KeyEnter)())
	_, _ = s.Tick()
	_, _ = s.Tick()
	assert.Equal(t, 1, s.Sim().Generation())

	require.NoError(t, handler(t, p, '3')())
	for i := 0; i < 5; i++ {
		_, _ = s.Tick()
	}
	assert.Equal(t, 4, s.Sim().Generation())

	require.NoError(t, handler(t, p, 'r')())
	assert.Zero(t, s.Sim().Generation())

	assert.ErrorIs(t, handler(t, p, 'q')(), gocui.ErrQuit)
	assert.ErrorIs(t, handler(t, p, gocui.KeyEsc)(), gocui.ErrQuit)
}

func TestFieldAndStatus(t *testing.T) {
	p := New(blinkerSession(t), 30, false, nil)
	assert.Equal(t, "     \n     \n ### \n     \n     ", p.field())
	assert.Contains(t, p.status(), "t = 0")
	assert.Contains(t, p.status(), "live 3")
	assert.Contains(t, p.help(), "SPACE: Run/pause")
}

func TestAdvancePacesSteps(t *testing.T) {
	s := blinkerSession(t)
	p := New(s, 10, false, nil)
	clock := time.Unix(0, 0)
	p.fs.SetClock(func() time.Time { return clock })

	assert.Equal(t, 1, p.advance(), "first frame steps at once")
	assert.Equal(t, 0, p.advance(), "no time has passed")

	clock = clock.Add(250 * time.Millisecond)
	assert.Equal(t, 2, p.advance())
	assert.Equal(t, 3, s.Sim().Generation())

	// a long stall catches up only a bounded number of steps
	clock = clock.Add(10 * time.Second)
	assert.Equal(t, maxCatchUp, p.advance())

	s.Toggle()
	clock = clock.Add(time.Second)
	assert.Equal(t, 0, p.advance(), "paused")
}
