package view

//layout convention shared by the gocui views and the size negotiation
const (
	boardBorder  = 1 //frame around the board view
	statusHeight = 3 //framed single-line status bar under the board

	//caps keep pathological terminal sizes from allocating huge fields
	MaxGridWidth  = 200
	MaxGridHeight = 100
)

//Negotiate translates a reported terminal size into the usable grid dimensions
//pure and idempotent: the same report always yields the same result
//degenerate terminal sizes negotiate to a zero-area grid, never an error
func Negotiate(termWidth int, termHeight int) (gridWidth int, gridHeight int) {
	gridWidth = termWidth - 2*boardBorder
	gridHeight = termHeight - 2*boardBorder - statusHeight
	if gridWidth < 0 {
		gridWidth = 0
	}
	if gridHeight < 0 {
		gridHeight = 0
	}
	if gridWidth > MaxGridWidth {
		gridWidth = MaxGridWidth
	}
	if gridHeight > MaxGridHeight {
		gridHeight = MaxGridHeight
	}
	return
}
