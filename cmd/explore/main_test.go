package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreElementary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, explore(&buf, options{family: "elementary", width: 7, from: 90, to: 90, stride: 1}))
	assert.Equal(t, strings.Join([]string{
		"90/255",
		"   #   ",
		"  # #  ",
		" #   # ",
		"# # # #",
		"",
		"",
	}, "\n"), buf.String())
}

func TestExploreElementaryIsBounded(t *testing.T) {
	// code 9 sets cells seeing 000 or 011; on a circle the right end would
	// see the left end's cell and light up
	var buf bytes.Buffer
	require.NoError(t, explore(&buf, options{family: "elementary", width: 5, from: 9, to: 9, stride: 1}))
	assert.Equal(t, "9/255\n  #  \n#   #\n  #  \n\n", buf.String())
}

func TestExploreTotalBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, explore(&buf, options{family: "total", width: 10, radius: 1, from: 0, to: -1, stride: 4, seed: 3}))
	out := buf.String()
	for _, hdr := range []string{"0/15\n", "4/15\n", "8/15\n", "12/15\n"} {
		assert.Contains(t, out, hdr)
	}
	assert.NotContains(t, out, "16/15")
	// header, seed row, five generations and a blank line per code
	assert.Equal(t, 4*8, strings.Count(out, "\n"))
}

func TestExploreErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, explore(&buf, options{family: "nope", stride: 1}))
	assert.Error(t, explore(&buf, options{family: "total", radius: 0, stride: 1}))
	assert.Error(t, explore(&buf, options{family: "elementary", width: 5, stride: 0}))
}
