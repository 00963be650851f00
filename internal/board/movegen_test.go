package board

import "testing"

func TestInitialMoves(t *testing.T) {
	b := New()
	moves := b.GenerateMoves(GenAll)

	// Six pawn pushes plus two jumps for each knight.
	if len(moves) != 10 {
		t.Fatalf("initial position has %d moves, want 10", len(moves))
	}

	seen := make(map[string]bool)
	for _, m := range moves {
		seen[b.MoveString(m)] = true
		if m.Captured() != NoPieceType || m.Promotion() != NoPieceType {
			t.Errorf("initial move %s tagged as capture or promotion", b.MoveString(m))
		}
	}
	for _, want := range []string{
		"a2a3", "b2b3", "c2c3", "d2d3", "e2e3", "f2f3",
		"b1a3", "b1c3", "e1d3", "e1f3",
	} {
		if !seen[want] {
			t.Errorf("initial moves missing %s", want)
		}
	}
}

func TestInitialMovesDynamicEmpty(t *testing.T) {
	b := New()
	if moves := b.GenerateMoves(GenDynamic); len(moves) != 0 {
		t.Errorf("initial position has %d dynamic moves, want 0", len(moves))
	}
}

func TestDynamicIsSubsetOfAll(t *testing.T) {
	b := New()

	// Walk a deterministic line and verify at every ply that the dynamic
	// list is exactly the captures and promotions of the full list.
	for ply := 0; ply < 30; ply++ {
		all := b.GenerateMoves(GenAll)
		if len(all) == 0 {
			break
		}

		var wantDynamic []Move
		for _, m := range all {
			if m.IsDynamic() {
				wantDynamic = append(wantDynamic, m)
			}
		}

		dynamic := b.GenerateMoves(GenDynamic)
		if len(dynamic) != len(wantDynamic) {
			t.Fatalf("ply %d: %d dynamic moves, want %d", ply, len(dynamic), len(wantDynamic))
		}
		for i, m := range dynamic {
			if m != wantDynamic[i] {
				t.Fatalf("ply %d: dynamic move %d = %s, want %s",
					ply, i, b.MoveString(m), b.MoveString(wantDynamic[i]))
			}
		}

		b.MakeMove(all[(ply*7)%len(all)])
	}
}

func TestNoMoveLeavesKingInCheck(t *testing.T) {
	b := New()

	for ply := 0; ply < 40; ply++ {
		moves := b.GenerateMoves(GenAll)
		if len(moves) == 0 {
			break
		}
		for _, m := range moves {
			b.MakeMove(m)
			// After our move it is the opponent's turn; our king must be safe.
			mover := b.SideToMove().Other()
			at := func(loc int) square { return b.squares[loc] }
			if kingAttacked(at, b.top().kingLocations[mover], mover) {
				t.Fatalf("ply %d: move %s leaves own king attacked", ply, b.MoveString(m))
			}
			b.UndoMove(m)
		}
		b.MakeMove(moves[(ply*3)%len(moves)])
	}
}

func TestPawnCaptureAndPromotion(t *testing.T) {
	// White pawn on c5 may push to c6 or capture the rook on d6, promoting
	// either way. The black pawn on b3 is not a pawn target.
	b, err := ParseFEN("k2r2/2P3/6/1p4/6/4K1 w")
	if err != nil {
		t.Fatal(err)
	}

	moves := b.GenerateMoves(GenAll)
	counts := make(map[string]int)
	for _, m := range moves {
		counts[b.MoveString(m)]++
	}

	for _, want := range []string{"c5c6=N", "c5c6=R", "c5c6=Q", "c5d6=N", "c5d6=R", "c5d6=Q"} {
		if counts[want] != 1 {
			t.Errorf("move %s generated %d times, want 1", want, counts[want])
		}
	}
	if counts["c5b6"] > 0 {
		t.Error("pawn captured an empty square")
	}

	// The capture carries the captured piece type for undo.
	for _, m := range moves {
		if b.MoveString(m) == "c5d6=Q" && m.Captured() != Rook {
			t.Errorf("c5d6=Q captured = %v, want Rook", m.Captured())
		}
	}
}

func TestSlidingPieceBlocked(t *testing.T) {
	b := New()

	// Rooks and the queen are boxed in at the start.
	for _, m := range b.GenerateMoves(GenAll) {
		start := m.Start()
		pt := b.squares[start].pieceType()
		if pt == Rook || pt == Queen || pt == King {
			t.Errorf("unexpected %v move %s in the initial position", pt, b.MoveString(m))
		}
	}
}

func TestStalemate(t *testing.T) {
	// Black king in the corner, boxed in by the white queen. Not in check,
	// nowhere to go.
	b, err := ParseFEN("k5/2Q3/6/6/6/K5 b")
	if err != nil {
		t.Fatal(err)
	}

	if b.InCheck() {
		t.Error("stalemated king reported as in check")
	}
	if moves := b.GenerateMoves(GenAll); len(moves) != 0 {
		for _, m := range moves {
			t.Logf("unexpected move: %s", b.MoveString(m))
		}
		t.Errorf("stalemate position has %d moves, want 0", len(moves))
	}
}

func TestCheckmate(t *testing.T) {
	// Rook ladder: Re6 is mate against the bare king.
	b, err := ParseFEN("k5/5R/6/6/6/3KR1 w")
	if err != nil {
		t.Fatal(err)
	}

	b.MakeUserMove(0*BoardSide+4, 5*BoardSide+4, NoPieceType) // e1e6

	if !b.InCheck() {
		t.Error("mated king not reported in check")
	}
	if moves := b.GenerateMoves(GenAll); len(moves) != 0 {
		t.Errorf("mated position has %d moves, want 0", len(moves))
	}
}

func TestInCheckDetectsAllAttackers(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"rook on file", "3k2/6/6/6/6/3K1r b", false},
		{"rook checks king", "3k2/6/6/6/6/3R1K b", true},
		{"knight check", "3k2/6/2N3/6/6/3K2 b", true},
		{"pawn check", "3k2/2P3/6/6/6/3K2 b", true},
		{"pawn straight ahead does not check", "3k2/3P2/6/6/6/3K2 b", false},
		{"queen on diagonal", "k5/6/6/3Q2/6/3K2 b", true},
		{"blocked queen", "k5/1r4/6/3Q2/6/3K2 b", false},
		{"adjacent king", "6/6/6/6/6/kK4 b", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.InCheck(); got != tc.want {
				t.Errorf("InCheck() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTargetsForPiece(t *testing.T) {
	b := New()

	targets := b.TargetsForPiece(0, 1)
	if len(targets) != 2 {
		t.Fatalf("knight on b1 has %d targets, want 2", len(targets))
	}
	want := map[int]bool{2*BoardSide + 0: true, 2*BoardSide + 2: true} // a3, c3
	for _, tgt := range targets {
		if !want[tgt] {
			t.Errorf("unexpected knight target %d", tgt)
		}
	}

	if targets := b.TargetsForPiece(0, 0); len(targets) != 0 {
		t.Errorf("boxed-in rook has %d targets, want 0", len(targets))
	}
}
