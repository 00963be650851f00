// Command searchbench runs a fixed-budget search from the initial position
// and prints one line per completed depth.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/AlexKent3141/los-alamos/internal/board"
	"github.com/AlexKent3141/los-alamos/internal/engine"
)

func main() {
	budget := flag.Duration("time", time.Minute, "search time budget")
	flag.Parse()

	b := board.New()

	callback := func(data engine.SearchData) {
		fmt.Printf("%6d %8s %7d %13d %10dms\n",
			data.Depth,
			b.MoveString(data.BestMove),
			data.Score,
			data.NodesSearched,
			data.TimeTaken.Milliseconds())
	}

	best := engine.Search(b, *budget, callback)
	fmt.Printf("best move: %s\n", b.MoveString(best))
}
