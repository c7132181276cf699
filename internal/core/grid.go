package core

import (
	"fmt"
	"slices"
)

// Grid stores a 2D grid of cell values in row-major order. Row 0 is the top
// row and row Rows()-1 the bottom one.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// are clamped to 1.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the value stored at (row, col). It panics when the coordinate is
// outside the grid.
func (g *Grid[T]) At(row, col int) T {
	g.mustContain(row, col)
	return g.data[row*g.cols+col]
}

// Set stores v at (row, col). It panics when the coordinate is outside the
// grid.
func (g *Grid[T]) Set(row, col int, v T) {
	g.mustContain(row, col)
	g.data[row*g.cols+col] = v
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{rows: g.rows, cols: g.cols, data: slices.Clone(g.data)}
}

func (g *Grid[T]) mustContain(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}

// Equal reports whether both grids have the same shape and contents.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	return slices.Equal(a.data, b.data)
}
