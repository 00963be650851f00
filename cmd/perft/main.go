// Command perft counts leaf nodes of the move-generation tree from the
// initial position, the standard way to validate a move generator. With
// -parallel the root moves are fanned out over an errgroup, one board clone
// per goroutine.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AlexKent3141/los-alamos/internal/board"
	"github.com/AlexKent3141/los-alamos/internal/engine"
)

// perftEntry caches a subtree count in the transposition table.
type perftEntry struct {
	hash     uint64
	depth    int
	numNodes uint64
}

func (e perftEntry) Key() uint64 { return e.hash }

const ttSize = 1 << 16

func perft(b *board.Board, depth int, tt *engine.Table[perftEntry]) uint64 {
	if depth == 0 {
		return 1
	}

	// Shallow subtrees are cheaper to recount than to cache.
	if entry, hit := tt.Probe(b.Hash()); hit && depth > 2 && entry.depth == depth {
		return entry.numNodes
	}

	moves := b.GenerateMoves(board.GenAll)
	if depth == 1 {
		return uint64(len(moves))
	}

	var total uint64
	for _, m := range moves {
		b.MakeMove(m)
		total += perft(b, depth-1, tt)
		b.UndoMove(m)
	}

	if entry, _ := tt.Probe(b.Hash()); depth >= entry.depth {
		*entry = perftEntry{hash: b.Hash(), depth: depth, numNodes: total}
	}

	return total
}

// perftParallel splits the root moves across workers. Each goroutine owns a
// clone of the board and its own table; boards are not shareable.
func perftParallel(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := b.GenerateMoves(board.GenAll)
	totals := make([]uint64, len(moves))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, m := range moves {
		g.Go(func() error {
			clone := b.Clone()
			clone.MakeMove(m)
			totals[i] = perft(clone, depth-1, engine.NewTable[perftEntry](ttSize))
			return nil
		})
	}

	// The workers never return errors; Wait is just the join point.
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	var total uint64
	for _, n := range totals {
		total += n
	}
	return total
}

func main() {
	maxDepth := flag.Int("depth", 8, "maximum perft depth")
	parallel := flag.Bool("parallel", false, "split root moves across goroutines")
	flag.Parse()

	fmt.Println("Calculating perft")

	b := board.New()
	tt := engine.NewTable[perftEntry](ttSize)

	start := time.Now()
	for d := 1; d <= *maxDepth; d++ {
		var nodes uint64
		if *parallel {
			nodes = perftParallel(b, d)
		} else {
			nodes = perft(b, d, tt)
		}

		fmt.Printf("Depth: %5d, Perft: %15d, Time taken: %10dms\n",
			d, nodes, time.Since(start).Milliseconds())
	}
}
