//go:build !ebiten

package app

import (
	"errors"

	"cage/internal/play"
)

// ErrNoGUI is returned by headless builds.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder game.
func New(*play.Session, int) *Game { return &Game{} }

// Run always reports that the GUI build tag is missing.
func Run(*Game, Config) error { return ErrNoGUI }
