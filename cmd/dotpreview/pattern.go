package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// pattern marks which LEDs of a sign are lit, indexed [row][column].
type pattern [][]bool

// newPattern returns an all-unlit pattern.
func newPattern(columns, rows int) pattern {
	p := make(pattern, rows)
	for y := range p {
		p[y] = make([]bool, columns)
	}
	return p
}

// testPattern lights the border and both diagonals.
func testPattern(columns, rows int) pattern {
	p := newPattern(columns, rows)
	for y := range p {
		for x := range p[y] {
			border := x == 0 || y == 0 || x == columns-1 || y == rows-1
			diag := x*(rows-1) == y*(columns-1) || x*(rows-1) == (rows-1-y)*(columns-1)
			p[y][x] = border || diag
		}
	}
	return p
}

// readPattern parses one text line per LED row. '#', 'X' and '1' are lit,
// anything else is unlit. Short lines and missing rows are padded unlit;
// anything beyond columns x rows is ignored.
func readPattern(r io.Reader, columns, rows int) (pattern, error) {
	p := newPattern(columns, rows)
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		if y >= rows {
			continue
		}
		for x, c := range []byte(sc.Text()) {
			if x >= columns {
				break
			}
			p[y][x] = c == '#' || c == 'X' || c == '1'
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	return p, nil
}

// loadPattern reads the pattern file, or returns the test pattern when path is empty.
func loadPattern(path string, columns, rows int) (pattern, error) {
	if path == "" {
		return testPattern(columns, rows), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return readPattern(f, columns, rows)
}

// lit counts the lit LEDs.
func (p pattern) lit() int {
	n := 0
	for _, row := range p {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}
