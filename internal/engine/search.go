package engine

import (
	"time"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

const (
	// MateScore is a score so high it cannot be attained by material alone.
	// Checkmates found deeper in the tree score slightly lower, so the
	// search always prefers the shortest mate.
	MateScore = 100000

	// maxExtensions bounds the check extensions along one line.
	maxExtensions = 3

	// quiesceDepth bounds the tactical continuation at the horizon.
	quiesceDepth = 3

	// ttSize is the slot count of the per-search transposition table.
	ttSize = 1 << 21
)

// Margins for reverse futility pruning, indexed by remaining depth.
var rfpMargins = [4]int{0, 0, 100, 200}

// SearchData describes one completed iteration of the deepening loop.
type SearchData struct {
	Depth         int
	Score         int
	BestMove      board.Move
	NodesSearched uint64
	TimeTaken     time.Duration
}

// searchEntry is the transposition table payload used by the search.
type searchEntry struct {
	hash  uint64
	depth int
	score int
	move  board.Move
}

func (e searchEntry) Key() uint64 { return e.hash }

type searcher struct {
	board    *board.Board
	tt       *Table[searchEntry]
	deadline time.Time
	nodes    uint64
}

func (s *searcher) inTime() bool {
	return time.Now().Before(s.deadline)
}

// Search runs an iterative-deepening search on b and blocks until timeout
// elapses, invoking callback once per fully completed depth. It returns the
// best move of the last completed depth. The board is mutated during the
// search (make/undo) and must not be observed concurrently; b must have at
// least one legal move.
func Search(b *board.Board, timeout time.Duration, callback func(SearchData)) board.Move {
	start := time.Now()
	s := &searcher{
		board:    b,
		tt:       NewTable[searchEntry](ttSize),
		deadline: start.Add(timeout),
	}

	moves := b.GenerateMoves(board.GenAll)
	if len(moves) == 0 {
		panic("engine: search called with no legal moves")
	}

	bestMove := moves[0]
	for depth := 1; s.inTime(); depth++ {
		bestScoreAtDepth := -MateScore
		bestMoveAtDepth := moves[0]

		for _, m := range moves {
			if !s.inTime() {
				break
			}

			b.MakeMove(m)
			score := -s.negamax(depth-1, 1, -MateScore, -bestScoreAtDepth, 0)
			b.UndoMove(m)

			if score > bestScoreAtDepth {
				bestScoreAtDepth = score
				bestMoveAtDepth = m
			}
		}

		// Commit only iterations that ran to completion inside the budget.
		if s.inTime() {
			bestMove = bestMoveAtDepth
			callback(SearchData{
				Depth:         depth,
				Score:         bestScoreAtDepth,
				BestMove:      bestMove,
				NodesSearched: s.nodes,
				TimeTaken:     time.Since(start),
			})
		}
	}

	return bestMove
}

// negamax searches to the given remaining depth with an alpha-beta window.
// ply is the distance from the root, used to prefer shorter mates. Out of
// time it returns 0 immediately; the root discards the partial iteration.
func (s *searcher) negamax(depth, ply, alpha, beta, numExtensions int) int {
	if !s.inTime() {
		return 0
	}

	if depth == 0 {
		if s.board.InCheck() && numExtensions < maxExtensions {
			return s.negamax(1, ply, alpha, beta, numExtensions+1)
		}
		return s.quiesce(quiesceDepth, alpha, beta)
	}

	inCheck := s.board.InCheck()

	// Null-move pruning: if passing the turn still beats beta at reduced
	// depth, the position is good enough to cut.
	if depth > 3 && !inCheck && s.board.Score() >= beta {
		s.board.MakeNullMove()
		score := -s.negamax(depth-4, ply+1, -beta, -alpha, numExtensions)
		s.board.UndoNullMove()
		if score >= beta {
			return beta
		}
	}

	// Reverse futility pruning at shallow depths.
	if depth < 4 && !inCheck && s.board.Score() > beta+rfpMargins[depth] {
		return beta
	}

	windowAlpha := alpha
	slot, hit := s.tt.Probe(s.board.Hash())
	var hashMove board.Move
	if hit {
		hashMove = slot.move
		if slot.depth >= depth && slot.score > alpha {
			alpha = slot.score
		}
	}

	moves := s.board.GenerateMoves(board.GenAll)
	if len(moves) == 0 {
		if inCheck {
			return -MateScore + ply
		}
		// No legal moves and not in check: stalemate, worth nothing.
		// Repetition is not checked during the search.
		return 0
	}

	orderMoves(moves, hashMove)

	bestScore := -MateScore
	bestMove := board.NoMove
	for _, m := range moves {
		s.board.MakeMove(m)
		score := -s.negamax(depth-1, ply+1, -beta, -alpha, numExtensions)
		s.board.UndoMove(m)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	// Depth-preferred replacement: keep the deeper of the two entries.
	// The stored score is read back as a lower bound, so a search that never
	// rose above its window's alpha stores none.
	if depth >= slot.depth {
		stored := alpha
		if alpha == windowAlpha {
			stored = -MateScore
		}
		*slot = searchEntry{hash: s.board.Hash(), depth: depth, score: stored, move: bestMove}
	}

	return bestScore
}

// quiesce resolves captures and promotions at the horizon so the evaluation
// is never taken in the middle of a tactic.
func (s *searcher) quiesce(depth, alpha, beta int) int {
	// Nodes are counted here, at quiescence entry.
	s.nodes++

	if depth == 0 {
		return s.board.Score()
	}

	standPat := s.board.Score()
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	// In check every move matters; otherwise only dynamic ones.
	gt := board.GenDynamic
	if s.board.InCheck() {
		gt = board.GenAll
	}

	for _, m := range s.board.GenerateMoves(gt) {
		s.board.MakeMove(m)
		score := -s.quiesce(depth-1, -beta, -alpha)
		s.board.UndoMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// orderMoves rearranges moves so the hash move comes first, then captures
// and promotions, then quiet moves. Within each bucket generation order is
// preserved.
func orderMoves(moves []board.Move, hashMove board.Move) {
	ordered := make([]board.Move, 0, len(moves))

	if hashMove != board.NoMove {
		for _, m := range moves {
			if m == hashMove {
				ordered = append(ordered, m)
				break
			}
		}
	}
	for _, m := range moves {
		if m != hashMove && m.IsDynamic() {
			ordered = append(ordered, m)
		}
	}
	for _, m := range moves {
		if m != hashMove && !m.IsDynamic() {
			ordered = append(ordered, m)
		}
	}

	copy(moves, ordered)
}
