package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	require.NoError(t, runDemo(&buf, dir))

	// The demo leaves its document behind
	data, err := os.ReadFile(filepath.Join(dir, "movies.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"movies"`)
	assert.Contains(t, string(data), `"title": "Movie 3"`)

	output := buf.String()
	assert.Contains(t, output, "Found movie: Movie 2")
	assert.Contains(t, output, "Removed movie: Movie 3")

	// Sorted listing comes last, highest earnings first, Movie 3 gone
	idx := strings.Index(output, "All movies sorted by box office earnings:")
	require.GreaterOrEqual(t, idx, 0)
	listing := strings.TrimSpace(output[idx:])
	lines := strings.Split(listing, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Movie 5: 3000000", lines[1])
	assert.Equal(t, "Movie 2: 2500000", lines[2])
	assert.Equal(t, "Movie 4: 2000000", lines[3])
	assert.Equal(t, "Movie 1: 1000000", lines[4])
}

func TestRunDemoUnwritableDirIsNonFatal(t *testing.T) {
	var buf bytes.Buffer

	// A regular file where the target directory should be makes the save
	// fail; the demo reports it and exits cleanly anyway.
	blocker := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := runDemo(&buf, blocker)
	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "Found movie")
}
