//go:build !ebiten

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessRunFails(t *testing.T) {
	assert.ErrorIs(t, Run(New(nil, 1), *NewConfig()), ErrNoGUI)
}
