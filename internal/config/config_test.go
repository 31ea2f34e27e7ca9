package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFile(t *testing.T) {
	path := write(t, `
sim: cyclic
width: 80
height: 40
seed: 7
steps: 12
renderer: none
params:
  states: "9"
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cyclic", s.Sim)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, 12, s.Steps)
	assert.Equal(t, 30, s.TPS, "unset keys keep defaults")
	assert.Equal(t, map[string]string{"w": "80", "h": "40", "states": "9"}, s.ToMap())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CAGE_SIM", "rug")
	t.Setenv("CAGE_SEED", "99")
	s, err := Load(write(t, "sim: life\nseed: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "rug", s.Sim)
	assert.Equal(t, int64(99), s.Seed)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(write(t, "sim: [unclosed"))
	assert.Error(t, err)

	_, err = Load(write(t, "renderer: gif\n"))
	assert.ErrorContains(t, err, "unknown renderer")

	_, err = Load(write(t, "steps: -1\n"))
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	s := Default()
	s.Width = 10
	require.NoError(t, s.Set([]string{"rule=highlife", " w = 12"}))
	assert.Equal(t, "highlife", s.ToMap()["rule"])
	assert.Equal(t, "12", s.ToMap()["w"], "params win over width")

	assert.Error(t, s.Set([]string{"novalue"}))
	assert.Error(t, s.Set([]string{"=x"}))
}
