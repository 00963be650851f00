package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

// SearchWorker runs searches on a background goroutine so the UI stays
// responsive. It owns a private copy of the board; the caller polls Running
// and receives per-depth results through the callback, which is invoked on
// the worker goroutine and must do its own synchronization.
type SearchWorker struct {
	callback func(SearchData)
	running  atomic.Bool
	done     chan struct{}

	board   *board.Board
	timeout time.Duration
}

// NewSearchWorker creates an idle worker delivering results to callback.
func NewSearchWorker(callback func(SearchData)) *SearchWorker {
	return &SearchWorker{callback: callback}
}

// Start snapshots the board and launches a search with the given time
// budget. Any previous search is waited for first.
func (w *SearchWorker) Start(b *board.Board, timeout time.Duration) {
	w.running.Store(true)

	w.board = b.Clone()
	w.timeout = timeout

	if w.done != nil {
		<-w.done
	}

	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		defer w.running.Store(false)
		Search(w.board, w.timeout, w.deliver)
	}()
}

// deliver forwards a result to the callback. A panic in the callback must
// not take down the worker goroutine.
func (w *SearchWorker) deliver(data SearchData) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: search callback panicked: %v", r)
		}
	}()
	w.callback(data)
}

// Running reports whether a search is in flight.
func (w *SearchWorker) Running() bool {
	return w.running.Load()
}

// Wait blocks until the current search, if any, has finished.
func (w *SearchWorker) Wait() {
	if w.done != nil {
		<-w.done
	}
}
