package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInfo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runInfo(config.Default(), &out))

	text := out.String()
	assert.Contains(t, text, "View Box: 300 x 260")
	assert.Contains(t, text, "Edges: 6")
	assert.Contains(t, text, "Min: (15.00, 15.00)")
	assert.Contains(t, text, "Max: (285.00, 245.00)")
	assert.Contains(t, text, "Maximum: 150.000000 units")
	assert.Contains(t, text, "Dock Ratio: 0.060")
	assert.Contains(t, text, "hexagon  on event")
	assert.Contains(t, text, "intro    6s")
}

func TestRunEdges(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runEdges(config.Default(), 10, false, false, &out))

		assert.Contains(t, out.String(), "Edges (showing 6 of 6)")
		assert.Contains(t, out.String(), "(75.00, 15.00)")
		assert.Contains(t, out.String(), "100.00%")
	})

	t.Run("longest", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runEdges(config.Default(), 2, true, false, &out))

		text := out.String()
		assert.Contains(t, text, "Top 2 Longest Edges")
		assert.Contains(t, text, "150.000000")
		assert.Equal(t, 2, strings.Count(text, "150.000000"))
	})

	t.Run("limited", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runEdges(config.Default(), 0, false, false, &out))

		assert.Contains(t, out.String(), "No edges to show.")
	})
}
