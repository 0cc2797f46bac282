package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternRows(p pattern) []string {
	rows := make([]string, len(p))
	for y, row := range p {
		var b strings.Builder
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func TestReadPattern(t *testing.T) {
	in := "#.X\n1 #####\n\n.#\nextra row\n"
	p, err := readPattern(strings.NewReader(in), 4, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"#.#.",
		"#.##",
		"....",
		".#..",
	}, patternRows(p))
	assert.Equal(t, 6, p.lit())
}

func TestTestPattern(t *testing.T) {
	p := testPattern(5, 5)
	assert.Equal(t, []string{
		"#####",
		"##.##",
		"#.#.#",
		"##.##",
		"#####",
	}, patternRows(p))
}

func TestLoadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	require.NoError(t, os.WriteFile(path, []byte("##\n.#\n"), 0o600))

	p, err := loadPattern(path, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"##", ".#"}, patternRows(p))

	p, err = loadPattern("", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, p.lit())

	_, err = loadPattern(filepath.Join(t.TempDir(), "missing.txt"), 2, 2)
	assert.ErrorContains(t, err, "open pattern")
}
