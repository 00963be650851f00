package board

// Board geometry. The playable 6x6 area sits inside a 10x10 array with a
// two-square padding ring so that sliding and knight moves stepping off the
// board land on a padding square and terminate.
const (
	BoardSide  = 6
	paddedSide = BoardSide + 4
	paddedArea = paddedSide * paddedSide
)

// square encodes the data for one cell of the padded array:
// bit 0:      set when the cell is part of the playable 6x6 area
// bits 8-15:  the piece type (can be NoPieceType)
// bits 16-23: the color of the occupant (undefined when empty)
// Padding cells stay zero for the lifetime of the board.
type square uint32

const emptySquare square = 0x1

func (sq square) onBoard() bool {
	return sq&0xFF != 0
}

func (sq square) pieceType() PieceType {
	return PieceType((sq & 0xFF00) >> 8)
}

func (sq square) color() Color {
	return Color((sq & 0xFF0000) >> 16)
}

// setPieceType ORs the piece type into a cleared square.
func (sq *square) setPieceType(pt PieceType) {
	*sq |= square(pt) << 8
}

// setColor ORs the color into a cleared square.
func (sq *square) setColor(c Color) {
	*sq |= square(c) << 16
}

func (sq square) isPawn() bool {
	return sq.pieceType().IsPawn()
}

// toPadded converts user coordinates (row 0-5, col 0-5) to a padded index.
func toPadded(r, c int) int {
	return (r+2)*paddedSide + c + 2
}

// toPaddedIndex converts a user index (row*6 + col) to a padded index.
func toPaddedIndex(loc int) int {
	return toPadded(loc/BoardSide, loc%BoardSide)
}

// fromPadded converts a padded index back to a user index (row*6 + col).
func fromPadded(loc int) int {
	paddedRow := loc / paddedSide
	paddedCol := loc % paddedSide
	return (paddedRow-2)*BoardSide + paddedCol - 2
}
