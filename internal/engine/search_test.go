package engine

import (
	"testing"
	"time"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

func TestSearchReturnsLegalMove(t *testing.T) {
	b := board.New()
	legal := b.GenerateMoves(board.GenAll)

	best := Search(b, 100*time.Millisecond, func(SearchData) {})

	found := false
	for _, m := range legal {
		if m == best {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("search returned %s, not a legal root move", b.MoveString(best))
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Rook ladder: the f5 rook seals the fifth rank, Re6 is mate.
	b, err := board.ParseFEN("k5/5R/6/6/6/3KR1 w")
	if err != nil {
		t.Fatal(err)
	}

	var last SearchData
	best := Search(b, 50*time.Millisecond, func(data SearchData) {
		last = data
	})

	if got := b.MoveString(best); got != "e1e6" {
		t.Errorf("best move = %s, want e1e6", got)
	}
	if last.Depth == 0 {
		t.Fatal("no completed search depth")
	}
	if last.Score < MateScore-last.Depth {
		t.Errorf("final score = %d, want at least %d", last.Score, MateScore-last.Depth)
	}
}

func TestSearchPrefersQueenCapture(t *testing.T) {
	// The black queen on d4 hangs to the rook on d1.
	b, err := board.ParseFEN("3k2/6/3q2/6/6/3R1K w")
	if err != nil {
		t.Fatal(err)
	}

	best := Search(b, 100*time.Millisecond, func(SearchData) {})

	if got := b.MoveString(best); got != "d1d4" {
		t.Errorf("best move = %s, want d1d4", got)
	}
}

func TestSearchCallbackDepthsStrictlyIncrease(t *testing.T) {
	b := board.New()

	var depths []int
	Search(b, 100*time.Millisecond, func(data SearchData) {
		depths = append(depths, data.Depth)
	})

	if len(depths) == 0 {
		t.Fatal("callback never invoked")
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] != depths[i-1]+1 {
			t.Fatalf("callback depths %v are not strictly increasing by one", depths)
		}
	}
	if depths[0] != 1 {
		t.Errorf("first callback depth = %d, want 1", depths[0])
	}
}

func TestSearchLeavesBoardIntact(t *testing.T) {
	b := board.New()
	hash := b.Hash()

	Search(b, 50*time.Millisecond, func(SearchData) {})

	if b.Hash() != hash {
		t.Error("search left the board in a different position")
	}
	if b.SideToMove() != board.White {
		t.Errorf("side to move after search = %v, want White", b.SideToMove())
	}
}

func TestSearchRespectsTimeout(t *testing.T) {
	b := board.New()

	start := time.Now()
	Search(b, 50*time.Millisecond, func(SearchData) {})
	elapsed := time.Since(start)

	// The deepening loop stops at the deadline; allow slack for the
	// in-flight iteration to notice.
	if elapsed > 2*time.Second {
		t.Errorf("search took %v with a 50ms budget", elapsed)
	}
}

func TestOrderMoves(t *testing.T) {
	quiet1 := board.NewMove(22, 32, board.NoPieceType, board.NoPieceType)
	quiet2 := board.NewMove(23, 33, board.NoPieceType, board.NoPieceType)
	capture := board.NewMove(24, 34, board.Rook, board.NoPieceType)
	promo := board.NewMove(65, 75, board.NoPieceType, board.Queen)

	moves := []board.Move{quiet1, capture, quiet2, promo}
	orderMoves(moves, quiet2)

	want := []board.Move{quiet2, capture, promo, quiet1}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("order[%d] = %x, want %x (full order %v)", i, moves[i], want[i], moves)
		}
	}

	// Absent hash move: captures first, generation order preserved.
	moves = []board.Move{quiet1, capture, quiet2, promo}
	orderMoves(moves, board.NoMove)

	want = []board.Move{capture, promo, quiet1, quiet2}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("order[%d] = %x, want %x", i, moves[i], want[i])
		}
	}
}
