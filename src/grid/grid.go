package grid

import "math/rand"

//Cell is a single cell state, true means alive
type Cell bool

//Grid is the rectangular field of cells, row-major
//all rows share a single backing slice for better locality
//dimensions are fixed for the lifetime of the allocation, Resize replaces it
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
	next   [][]Cell //scratch buffer for Step, reused between generations
}

//New creates a cleared grid with the given dimensions
//zero-area grids are valid and simply hold no cells
func New(width int, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  allocate(width, height),
		next:   allocate(width, height),
	}
}

//allocate creates the row slices over a single backing buffer
func allocate(width int, height int) [][]Cell {
	rows := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range rows {
		start := width * i
		rows[i] = b[start : start+width : start+width]
	}
	return rows
}

//Step advances the field by one generation of the standard Conway rule
//cells outside the boundary count as dead (bounded field, no wraparound)
//the next state is computed into the scratch buffer and the buffers are swapped
func (g *Grid) Step() {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.next[y][x] = Cell(g.nextState(x, y))
		}
	}
	g.Cells, g.next = g.next, g.Cells
}

//nextState calculates the next state for the cell at x,y
func (g *Grid) nextState(x int, y int) bool {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			//skip coordinates outside the field
			if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
				continue
			}
			if g.Cells[ny][nx] {
				liveNeighbours++
			}
		}
	}
	if liveNeighbours == 3 {
		return true
	}
	return liveNeighbours == 2 && bool(g.Cells[y][x])
}

//Randomize settles each cell independently alive with the given probability
//density is clamped to [0,1]
func (g *Grid) Randomize(r *rand.Rand, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell(r.Float64() < density)
		}
	}
}

//Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = false
		}
	}
}

//Resize reallocates the field to the new dimensions, the new field starts cleared
//resizing to the current size is a no-op and preserves the contents
func (g *Grid) Resize(width int, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == g.Width && height == g.Height {
		return
	}
	g.Width = width
	g.Height = height
	g.Cells = allocate(width, height)
	g.next = allocate(width, height)
}

//Population calculates the count of live cells
func (g *Grid) Population() int {
	n := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] {
				n++
			}
		}
	}
	return n
}

//Set assigns the cell state at x,y
//keeping the coordinates in bounds is the caller's responsibility
func (g *Grid) Set(x int, y int, alive bool) {
	g.Cells[y][x] = Cell(alive)
}

//Alive reports the cell state at x,y
func (g *Grid) Alive(x int, y int) bool {
	return bool(g.Cells[y][x])
}

//Copy returns a deep copy of the current cell rows
func (g *Grid) Copy() [][]Cell {
	rows := allocate(g.Width, g.Height)
	for y := range g.Cells {
		copy(rows[y], g.Cells[y])
	}
	return rows
}
