package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

func TestWorkerLifecycle(t *testing.T) {
	var mu sync.Mutex
	var depths []int

	w := NewSearchWorker(func(data SearchData) {
		mu.Lock()
		depths = append(depths, data.Depth)
		mu.Unlock()
	})

	if w.Running() {
		t.Error("fresh worker reports running")
	}

	b := board.New()
	w.Start(b, 50*time.Millisecond)
	w.Wait()

	if w.Running() {
		t.Error("worker still running after Wait")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(depths) == 0 {
		t.Fatal("no search results delivered")
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] <= depths[i-1] {
			t.Fatalf("callback depths %v not strictly increasing", depths)
		}
	}
}

func TestWorkerSearchesSnapshot(t *testing.T) {
	w := NewSearchWorker(func(SearchData) {})

	b := board.New()
	hash := b.Hash()

	w.Start(b, 50*time.Millisecond)

	// The UI's board is untouched while the worker runs on its copy.
	if b.Hash() != hash {
		t.Error("worker mutated the caller's board")
	}
	w.Wait()
	if b.Hash() != hash {
		t.Error("worker mutated the caller's board after finishing")
	}
}

func TestWorkerRestarts(t *testing.T) {
	var mu sync.Mutex
	count := 0

	w := NewSearchWorker(func(SearchData) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	b := board.New()
	w.Start(b, 30*time.Millisecond)
	w.Wait()

	mu.Lock()
	first := count
	mu.Unlock()

	w.Start(b, 30*time.Millisecond)
	w.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count <= first {
		t.Error("second search delivered no results")
	}
}

func TestWorkerSurvivesCallbackPanic(t *testing.T) {
	w := NewSearchWorker(func(SearchData) {
		panic("callback exploded")
	})

	w.Start(board.New(), 30*time.Millisecond)
	w.Wait()

	if w.Running() {
		t.Error("worker stuck running after callback panic")
	}
}
