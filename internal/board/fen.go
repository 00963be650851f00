package board

import (
	"fmt"
	"strings"
)

// pieceFromChar maps a FEN letter to its color and piece type. Uppercase is
// white. There is no bishop letter in this variant.
func pieceFromChar(ch byte) (Color, PieceType, bool) {
	switch ch {
	case 'P':
		return White, WhitePawn, true
	case 'N':
		return White, Knight, true
	case 'R':
		return White, Rook, true
	case 'Q':
		return White, Queen, true
	case 'K':
		return White, King, true
	case 'p':
		return Black, BlackPawn, true
	case 'n':
		return Black, Knight, true
	case 'r':
		return Black, Rook, true
	case 'q':
		return Black, Queen, true
	case 'k':
		return Black, King, true
	}
	return White, NoPieceType, false
}

func charFromPiece(p Piece) byte {
	var ch byte
	switch p.Type {
	case WhitePawn, BlackPawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a board from a 6x6 FEN string: six rank fields (rank 6
// first) separated by '/', then a side-to-move field, e.g.
// "rnqknr/pppppp/6/6/PPPPPP/RNQKNR w". Score and hash are accumulated
// incrementally during setup, so a parsed board satisfies the same
// invariants as a freshly constructed one.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 2 {
		return nil, fmt.Errorf("fen: expected 2 fields, got %d", len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSide {
		return nil, fmt.Errorf("fen: expected %d ranks, got %d", BoardSide, len(ranks))
	}

	b := &Board{states: make([]state, 0, 64)}
	for r := 0; r < BoardSide; r++ {
		for c := 0; c < BoardSide; c++ {
			b.squares[toPadded(r, c)] |= 0x1
		}
	}

	score := 0
	var hash uint64
	kings := [2]int{-1, -1}
	kingCount := [2]int{}

	for i, rank := range ranks {
		r := BoardSide - 1 - i
		c := 0
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '6' {
				c += int(ch - '0')
				continue
			}

			col, pt, ok := pieceFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("fen: unknown piece %q", ch)
			}
			if c >= BoardSide {
				return nil, fmt.Errorf("fen: rank %q too wide", rank)
			}

			loc := toPadded(r, c)
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

			if pt == King {
				kings[col] = loc
				kingCount[col]++
			}
			c++
		}
		if c != BoardSide {
			return nil, fmt.Errorf("fen: rank %q has width %d", rank, c)
		}
	}

	if kingCount[White] != 1 || kingCount[Black] != 1 {
		return nil, fmt.Errorf("fen: need exactly one king per side, got %d white and %d black",
			kingCount[White], kingCount[Black])
	}

	var stm Color
	switch fields[1] {
	case "w":
		stm = White
		hash ^= whiteKey
	case "b":
		stm = Black
		score = -score
	default:
		return nil, fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	b.states = append(b.states, state{
		sideToMove:    stm,
		score:         score,
		hash:          hash,
		kingLocations: kings,
	})
	return b, nil
}

// FEN serializes the board layout and side to move.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := BoardSide - 1; r >= 0; r-- {
		empty := 0
		for c := 0; c < BoardSide; c++ {
			p, ok := b.PieceAt(r, c)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	if b.SideToMove() == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
