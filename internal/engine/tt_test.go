package engine

import (
	"testing"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

func TestTableProbeMiss(t *testing.T) {
	tt := NewTable[searchEntry](64)

	slot, hit := tt.Probe(0x123456789)
	if hit {
		t.Error("probe of empty table reported a hit")
	}
	if slot == nil {
		t.Fatal("probe returned no slot")
	}
}

func TestTableProbeHit(t *testing.T) {
	tt := NewTable[searchEntry](64)

	hash := uint64(0xDEADBEEFCAFE)
	slot, hit := tt.Probe(hash)
	if hit {
		t.Fatal("unexpected hit before store")
	}
	*slot = searchEntry{hash: hash, depth: 5, score: 42, move: board.NewMove(22, 32, board.NoPieceType, board.NoPieceType)}

	slot, hit = tt.Probe(hash)
	if !hit {
		t.Fatal("stored entry not found")
	}
	if slot.depth != 5 || slot.score != 42 {
		t.Errorf("entry = %+v, want depth 5 score 42", *slot)
	}
}

func TestTableCollisionMapsToSameSlot(t *testing.T) {
	tt := NewTable[searchEntry](64)

	// Two hashes congruent mod 64 share a slot; the second probe must see
	// the first entry's slot but report a miss.
	a := uint64(7)
	b := uint64(7 + 64)

	slotA, _ := tt.Probe(a)
	*slotA = searchEntry{hash: a, depth: 3}

	slotB, hit := tt.Probe(b)
	if hit {
		t.Error("collision reported as hit")
	}
	if slotA != slotB {
		t.Error("congruent hashes mapped to different slots")
	}
	if slotB.depth != 3 {
		t.Error("slot does not expose the resident entry")
	}
}
