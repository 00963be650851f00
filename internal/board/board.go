package board

import "fmt"

// state holds the per-ply fields that change on every move. A completed move
// pushes a new state and undo pops one, so undo restores side to move, score,
// hash and king locations without any arithmetic.
type state struct {
	sideToMove    Color
	score         int
	hash          uint64
	kingLocations [2]int
}

// Board is a Los Alamos chess position. It is not safe for concurrent use;
// workers searching a position must operate on their own Clone.
type Board struct {
	squares [paddedArea]square
	states  []state
}

// backrank is the piece order of each side's home rank, kings on column 3.
var backrank = [BoardSide]PieceType{Rook, Knight, Queen, King, Knight, Rook}

// New returns a board in the standard initial position.
func New() *Board {
	b := &Board{states: make([]state, 0, 64)}

	// Mark the playable squares; everything else stays padding.
	for r := 0; r < BoardSide; r++ {
		for c := 0; c < BoardSide; c++ {
			b.squares[toPadded(r, c)] |= 0x1
		}
	}

	score := 0
	hash := whiteKey

	place := func(loc int, col Color, pt PieceType) {
		sq := &b.squares[loc]
		sq.setPieceType(pt)
		sq.setColor(col)

		pieceScore := pieceScores[pt] + squareScores[pt][loc]
		if col == White {
			score += pieceScore
		} else {
			score -= pieceScore
		}
		hash ^= pieceSquareKeys[col][pt][loc]
	}

	for c := 0; c < BoardSide; c++ {
		place(toPadded(0, c), White, backrank[c])
		place(toPadded(1, c), White, WhitePawn)
		place(toPadded(4, c), Black, BlackPawn)
		place(toPadded(5, c), Black, backrank[c])
	}

	b.states = append(b.states, state{
		sideToMove:    White,
		score:         score,
		hash:          hash,
		kingLocations: [2]int{toPadded(0, 3), toPadded(5, 3)},
	})
	return b
}

// Clone returns a deep copy of the board, suitable for handing to a search
// worker while the original keeps serving the UI.
func (b *Board) Clone() *Board {
	c := &Board{squares: b.squares, states: make([]state, len(b.states), cap(b.states))}
	copy(c.states, b.states)
	return c
}

func (b *Board) top() *state {
	return &b.states[len(b.states)-1]
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color {
	return b.top().sideToMove
}

// Score returns the evaluation of the position from the perspective of the
// side to move. It is maintained incrementally.
func (b *Board) Score() int {
	return b.top().score
}

// Hash returns the Zobrist hash of the position.
func (b *Board) Hash() uint64 {
	return b.top().hash
}

// MakeMove applies a move previously produced by GenerateMoves. The move's
// captured field must match the destination square.
func (b *Board) MakeMove(m Move) {
	prev := b.top()
	next := *prev

	us := prev.sideToMove
	them := us.Other()

	score := prev.score
	hash := prev.hash ^ whiteKey

	start := m.Start()
	end := m.End()

	moving := b.squares[start].pieceType()
	b.squares[start] &= 0x1
	b.squares[end] &= 0x1

	score -= squareScores[moving][start]
	hash ^= pieceSquareKeys[us][moving][start]

	placed := moving
	if promo := m.Promotion(); promo != NoPieceType {
		score -= pieceScores[moving]
		score += pieceScores[promo]
		placed = promo
	}

	score += squareScores[placed][end]
	hash ^= pieceSquareKeys[us][placed][end]

	b.squares[end].setPieceType(placed)
	b.squares[end].setColor(us)

	if cap := m.Captured(); cap != NoPieceType {
		score += pieceScores[cap] + squareScores[cap][end]
		hash ^= pieceSquareKeys[them][cap][end]
	}

	if moving == King {
		next.kingLocations[us] = end
	}

	next.sideToMove = them
	next.score = -score
	next.hash = hash
	b.states = append(b.states, next)
}

// MakeUserMove applies a move given in user indices (row*6 + col), reading
// the captured piece from the destination square. The UI uses this after the
// player picks a target square. The packed move is returned so the caller
// can undo it later.
func (b *Board) MakeUserMove(start, end int, promo PieceType) Move {
	paddedEnd := toPaddedIndex(end)
	cap := b.squares[paddedEnd].pieceType()
	m := NewMove(toPaddedIndex(start), paddedEnd, cap, promo)
	b.MakeMove(m)
	return m
}

// UndoMove reverses the most recent move, which must be m.
func (b *Board) UndoMove(m Move) {
	them := b.top().sideToMove
	b.states = b.states[:len(b.states)-1]
	mover := them.Other()

	start := m.Start()
	end := m.End()

	moving := b.squares[end].pieceType()
	b.squares[start] &= 0x1
	b.squares[end] &= 0x1

	restored := moving
	if m.Promotion() != NoPieceType {
		restored = pawnFor(mover)
	}
	b.squares[start].setPieceType(restored)
	b.squares[start].setColor(mover)

	if cap := m.Captured(); cap != NoPieceType {
		b.squares[end].setPieceType(cap)
		b.squares[end].setColor(them)
	}
}

// MakeNullMove passes the turn without touching any square. Null-move state
// lives on the same stack as regular moves so undo stays a pop.
func (b *Board) MakeNullMove() {
	prev := b.top()
	b.states = append(b.states, state{
		sideToMove:    prev.sideToMove.Other(),
		score:         -prev.score,
		hash:          prev.hash ^ whiteKey,
		kingLocations: prev.kingLocations,
	})
}

// UndoNullMove reverses MakeNullMove.
func (b *Board) UndoNullMove() {
	b.states = b.states[:len(b.states)-1]
}

// IsDraw reports draw by repetition: the current hash has already appeared
// at least twice earlier in the game.
func (b *Board) IsDraw() bool {
	current := b.top().hash
	count := 0
	for _, st := range b.states[:len(b.states)-1] {
		if st.hash == current {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// PieceAt returns the piece at the given user coordinates, if any.
func (b *Board) PieceAt(row, col int) (Piece, bool) {
	if row < 0 || row >= BoardSide || col < 0 || col >= BoardSide {
		panic(fmt.Sprintf("board: PieceAt(%d, %d) out of range", row, col))
	}

	sq := b.squares[toPadded(row, col)]
	pt := sq.pieceType()
	if pt == NoPieceType {
		return Piece{}, false
	}
	return Piece{Color: sq.color(), Type: pt}, true
}

// MoveString serializes a move as "<start><end>[=R|N|Q]" with columns a-f
// and rows 1-6, e.g. "b1b3" or "c5c6=Q".
func (b *Board) MoveString(m Move) string {
	locString := func(loc int) string {
		row := loc/paddedSide - 1
		col := loc%paddedSide - 2
		return fmt.Sprintf("%c%d", 'a'+col, row)
	}

	s := locString(m.Start()) + locString(m.End())

	switch m.Promotion() {
	case Rook:
		s += "=R"
	case Knight:
		s += "=N"
	case Queen:
		s += "=Q"
	}
	return s
}
