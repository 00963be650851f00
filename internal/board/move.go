package board

// Move encodes a move in 32 bits:
// bits 0-7:   start square (padded index)
// bits 8-15:  end square (padded index)
// bits 16-23: captured piece type (can be NoPieceType)
// bits 24-31: promotion piece type (can be NoPieceType)
type Move uint32

// NoMove represents an invalid or absent move.
const NoMove Move = 0

// NewMove packs a move from its padded start/end indices and the captured
// and promotion piece types.
func NewMove(start, end int, captured, promotion PieceType) Move {
	return Move(start) | Move(end)<<8 | Move(captured)<<16 | Move(promotion)<<24
}

// Start returns the padded index of the origin square.
func (m Move) Start() int {
	return int(m & 0xFF)
}

// End returns the padded index of the destination square.
func (m Move) End() int {
	return int((m >> 8) & 0xFF)
}

// Captured returns the captured piece type, or NoPieceType.
func (m Move) Captured() PieceType {
	return PieceType((m >> 16) & 0xFF)
}

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType {
	return PieceType((m >> 24) & 0xFF)
}

// UserStart returns the origin square as a user index (row*6 + col).
func (m Move) UserStart() int {
	return fromPadded(m.Start())
}

// UserEnd returns the destination square as a user index (row*6 + col).
func (m Move) UserEnd() int {
	return fromPadded(m.End())
}

// withPromotion returns a copy of the move tagged with a promotion type.
func (m Move) withPromotion(pt PieceType) Move {
	return m | Move(pt)<<24
}

// IsDynamic reports whether the move is a capture or a promotion. Quiescence
// search explores only dynamic moves.
func (m Move) IsDynamic() bool {
	return m.Captured() != NoPieceType || m.Promotion() != NoPieceType
}

// MoveGenType selects which moves GenerateMoves yields.
type MoveGenType uint8

const (
	// GenAll yields every legal move.
	GenAll MoveGenType = iota
	// GenDynamic yields only captures and promotions.
	GenDynamic
)
