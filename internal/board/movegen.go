package board

// Padded-index offsets for each piece's moves, zero-terminated. Pawn entries
// hold the forward push; their captures are handled separately.
var pieceOffsets = [numPieceTypes][8]int{
	{},
	{paddedSide},
	{-paddedSide},
	{2*paddedSide + 1, 2*paddedSide - 1, paddedSide + 2, paddedSide - 2,
		-paddedSide + 2, -paddedSide - 2, -2*paddedSide + 1, -2*paddedSide - 1},
	{-1, 1, paddedSide, -paddedSide},
	{-1, 1, paddedSide, -paddedSide,
		paddedSide - 1, paddedSide + 1, -paddedSide - 1, -paddedSide + 1},
	{-1, 1, paddedSide, -paddedSide,
		paddedSide - 1, paddedSide + 1, -paddedSide - 1, -paddedSide + 1},
}

func forwardOffset(c Color) int {
	if c == White {
		return paddedSide
	}
	return -paddedSide
}

// promotionRank reports whether a padded index lies on either back rank.
func promotionRank(loc int) bool {
	return loc < 3*paddedSide || loc >= 7*paddedSide
}

// kingAttacked reports whether the defender's king standing on kingLoc is
// attacked, reading squares through at. It radiates knight and king offsets a
// single step and rook/queen offsets along rays until blocked, then checks
// the two diagonal pawn-attack squares.
func kingAttacked(at func(int) square, kingLoc int, defender Color) bool {
	for _, attacker := range [...]PieceType{Knight, King, Rook, Queen} {
		slides := attacker == Rook || attacker == Queen
		for _, offset := range pieceOffsets[attacker] {
			if offset == 0 {
				break
			}
			for loc := kingLoc + offset; ; loc += offset {
				sq := at(loc)
				if !sq.onBoard() {
					break
				}
				if pt := sq.pieceType(); pt != NoPieceType {
					if pt == attacker && sq.color() != defender {
						return true
					}
					break
				}
				if !slides {
					break
				}
			}
		}
	}

	forward := forwardOffset(defender)
	for _, diag := range [2]int{kingLoc + forward - 1, kingLoc + forward + 1} {
		sq := at(diag)
		if sq.onBoard() && sq.isPawn() && sq.color() != defender {
			return true
		}
	}
	return false
}

// willBeInCheck reports whether moving the piece on start to end would leave
// the mover's own king attacked. The proposed move is applied as a two-square
// diff over a read-only view of the board, so generation never mutates state.
func (b *Board) willBeInCheck(start, end int) bool {
	st := b.top()
	moving := b.squares[start]

	kingLoc := st.kingLocations[st.sideToMove]
	if moving.pieceType() == King {
		kingLoc = end
	}

	at := func(loc int) square {
		switch loc {
		case start:
			return emptySquare
		case end:
			return moving
		}
		return b.squares[loc]
	}
	return kingAttacked(at, kingLoc, st.sideToMove)
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	st := b.top()
	at := func(loc int) square { return b.squares[loc] }
	return kingAttacked(at, st.kingLocations[st.sideToMove], st.sideToMove)
}

// addPawnMoves emits the pawn push and diagonal captures from loc, expanding
// moves that reach the last rank into one move per promotion type.
func (b *Board) addPawnMoves(loc int, gt MoveGenType, moves []Move) []Move {
	us := b.top().sideToMove

	add := func(m Move) {
		if promotionRank(m.End()) {
			moves = append(moves,
				m.withPromotion(Knight),
				m.withPromotion(Rook),
				m.withPromotion(Queen))
		} else if gt == GenAll || m.IsDynamic() {
			moves = append(moves, m)
		}
	}

	forward := loc + forwardOffset(us)
	if b.squares[forward].pieceType() == NoPieceType && !b.willBeInCheck(loc, forward) {
		add(NewMove(loc, forward, NoPieceType, NoPieceType))
	}

	for _, diag := range [2]int{forward - 1, forward + 1} {
		target := b.squares[diag]
		if !target.onBoard() {
			continue
		}
		pt := target.pieceType()
		if pt != NoPieceType && target.color() != us && !b.willBeInCheck(loc, diag) {
			add(NewMove(loc, diag, pt, NoPieceType))
		}
	}
	return moves
}

// GenerateMoves returns the legal moves in the current position. GenDynamic
// restricts the result to captures and promotions for quiescence search.
func (b *Board) GenerateMoves(gt MoveGenType) []Move {
	us := b.top().sideToMove
	moves := make([]Move, 0, 32)

	for loc := 0; loc < paddedArea; loc++ {
		sq := b.squares[loc]
		if !sq.onBoard() {
			continue
		}

		pt := sq.pieceType()
		if pt == NoPieceType || sq.color() != us {
			continue
		}

		if pt.IsPawn() {
			moves = b.addPawnMoves(loc, gt, moves)
			continue
		}

		slides := pt == Rook || pt == Queen
		for _, offset := range pieceOffsets[pt] {
			if offset == 0 {
				break
			}
			for target := loc + offset; ; target += offset {
				targetSq := b.squares[target]
				if !targetSq.onBoard() {
					break
				}

				if captured := targetSq.pieceType(); captured != NoPieceType {
					if targetSq.color() != us && !b.willBeInCheck(loc, target) {
						moves = append(moves, NewMove(loc, target, captured, NoPieceType))
					}
					break
				}

				if gt == GenAll && !b.willBeInCheck(loc, target) {
					moves = append(moves, NewMove(loc, target, NoPieceType, NoPieceType))
				}
				if !slides {
					break
				}
			}
		}
	}
	return moves
}

// TargetsForPiece returns the user-coordinate indices (row*6 + col) reachable
// by the piece at (row, col). The UI uses this to highlight destinations.
func (b *Board) TargetsForPiece(row, col int) []int {
	loc := toPadded(row, col)

	var targets []int
	for _, m := range b.GenerateMoves(GenAll) {
		if m.Start() != loc {
			continue
		}
		end := fromPadded(m.End())
		seen := false
		for _, t := range targets {
			if t == end {
				seen = true
				break
			}
		}
		if !seen {
			targets = append(targets, end)
		}
	}
	return targets
}
