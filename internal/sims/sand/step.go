package sand

import (
	"fmt"

	"sandtris/internal/core"
)

// Coin breaks ties when a blocked grain could slide either way. True sends
// the grain right.
type Coin interface {
	Bool() bool
}

// Step applies one tick of the falling-sand rule to g in place and returns how
// many grains moved. A nil coin draws from the process-wide generator.
//
// The floor row is filled first from the row above it. The remaining rows are
// then scanned from rows-2 up to 1, left to right, each cell pulling the grain
// above it down, or, if the cell is occupied, pushing that grain diagonally
// into a free neighbour on the same row. Columns 0, 1, cols-2 and cols-1 never
// slide. Scanning bottom-up means a grain moves at most one row per tick and a
// cell written this tick is never read again as a source.
//
// Step never creates or destroys grains.
func Step(g *Grid, coin Coin) int {
	rows, cols := g.Rows(), g.Cols()
	if rows < MinRows {
		panic(fmt.Sprintf("sand: Step needs at least %d rows, grid has %d", MinRows, rows))
	}
	if coin == nil {
		coin = core.Shared{}
	}
	cells := g.Cells()
	moved := 0

	floor := (rows - 1) * cols
	last := (rows - 2) * cols
	for x := 0; x < cols; x++ {
		if !cells[last+x].Full || cells[floor+x].Full {
			continue
		}
		cells[floor+x] = cells[last+x]
		cells[last+x] = Grain{}
		moved++
	}

	for y := rows - 2; y >= 1; y-- {
		row := y * cols
		above := (y - 1) * cols
		for x := 0; x < cols; x++ {
			src := cells[above+x]
			if !src.Full {
				continue
			}
			if !cells[row+x].Full {
				cells[row+x] = src
				cells[above+x] = Grain{}
				moved++
				continue
			}
			if x <= 1 || x >= cols-2 {
				continue
			}
			leftOK := !cells[row+x-1].Full
			rightOK := !cells[row+x+1].Full
			if !leftOK && !rightOK {
				continue
			}
			if leftOK && rightOK && coin.Bool() {
				leftOK = false
			}
			dst := row + x + 1
			if leftOK {
				dst = row + x - 1
			}
			cells[dst] = src
			cells[above+x] = Grain{}
			moved++
		}
	}
	return moved
}
