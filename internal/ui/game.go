package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/AlexKent3141/los-alamos/internal/board"
	"github.com/AlexKent3141/los-alamos/internal/engine"
	"github.com/AlexKent3141/los-alamos/internal/storage"
)

// UI constants
const (
	SquareSize   = 100
	BoardSize    = SquareSize * board.BoardSide
	PanelWidth   = 280
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
)

// screen selects what the board area shows.
type screen int

const (
	screenBoard screen = iota
	screenSelectPromotion
)

// lastMove remembers the endpoints of the most recent move for highlighting,
// in user indices. from is -1 when no move has been made.
type lastMove struct {
	from, to int
}

// Game implements ebiten.Game.
type Game struct {
	board       *board.Board
	moveHistory []board.Move
	moveStrings []string

	// UI state
	screen   screen
	selected int // user index of the selected piece, or -1
	targets  []int
	lastMove lastMove

	// A pending promotion: the player has picked start and end squares and
	// still owes us the piece type.
	promoStart int
	promoEnd   int

	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	// Search worker state. lines is appended on the worker goroutine and
	// read on the game loop, hence the mutex.
	worker    *engine.SearchWorker
	searching bool
	linesMu   sync.Mutex
	lines     []engine.SearchData

	// Persistence
	storage *storage.Storage
	prefs   *storage.Preferences

	gameOver   bool
	gameResult string
	recorded   bool
	startTime  time.Time
}

// NewGame creates the game in the standard initial position.
func NewGame() *Game {
	g := &Game{
		board:      board.New(),
		selected:   -1,
		lastMove:   lastMove{from: -1},
		renderer:   NewRenderer(SquareSize),
		input:      NewInputHandler(),
		promoStart: -1,
		startTime:  time.Now(),
	}

	g.worker = engine.NewSearchWorker(func(data engine.SearchData) {
		g.linesMu.Lock()
		g.lines = append(g.lines, data)
		g.linesMu.Unlock()
	})

	var err error
	g.storage, err = storage.New()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}
	g.loadPreferences()

	g.panel = NewPanel(g)
	return g
}

func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
}

// Update advances the game state by one tick.
func (g *Game) Update() error {
	g.input.Update()

	// Collect a finished search.
	if g.searching && !g.worker.Running() {
		g.searching = false
		g.applyComputerMove()
	}

	if g.panel.Update(g.input) {
		return nil
	}

	switch g.screen {
	case screenBoard:
		g.updateBoardScreen()
	case screenSelectPromotion:
		g.updatePromotionScreen()
	}
	return nil
}

// updateBoardScreen handles clicks on the board grid.
func (g *Game) updateBoardScreen() {
	if !g.input.IsLeftJustPressed() || g.thinking() || g.gameOver {
		return
	}

	mx, my := g.input.MousePosition()
	if mx >= BoardSize || my >= BoardSize {
		return
	}

	col := mx / SquareSize
	row := board.BoardSide - 1 - my/SquareSize
	index := row*board.BoardSide + col

	// Clicking a highlighted target makes the move.
	for _, t := range g.targets {
		if t == index {
			g.humanMove(g.selected, index)
			return
		}
	}

	// Otherwise (re)select a piece of the side to move.
	p, ok := g.board.PieceAt(row, col)
	if ok && p.Color == g.board.SideToMove() {
		g.selected = index
		g.targets = g.board.TargetsForPiece(row, col)
	} else {
		g.selected = -1
		g.targets = nil
	}
}

// humanMove applies a move chosen by clicking, detouring via the promotion
// picker when a pawn reaches the last rank.
func (g *Game) humanMove(start, end int) {
	g.selected = -1
	g.targets = nil

	p, ok := g.board.PieceAt(start/board.BoardSide, start%board.BoardSide)
	if !ok {
		return
	}

	endRow := end / board.BoardSide
	if (p.Type == board.WhitePawn && endRow == board.BoardSide-1) ||
		(p.Type == board.BlackPawn && endRow == 0) {
		g.promoStart = start
		g.promoEnd = end
		g.screen = screenSelectPromotion
		return
	}

	g.applyUserMove(start, end, board.NoPieceType)
}

// applyUserMove makes a move given in user indices and refreshes game state.
func (g *Game) applyUserMove(start, end int, promo board.PieceType) {
	m := g.board.MakeUserMove(start, end, promo)
	g.moveHistory = append(g.moveHistory, m)
	g.moveStrings = append(g.moveStrings, g.board.MoveString(m))

	g.lastMove = lastMove{from: start, to: end}
	g.checkGameOver()
}

// thinking reports whether the engine is using the board.
func (g *Game) thinking() bool {
	return g.searching || g.worker.Running()
}

// searchLines returns a snapshot of the per-depth search output.
func (g *Game) searchLines() []engine.SearchData {
	g.linesMu.Lock()
	defer g.linesMu.Unlock()
	return append([]engine.SearchData(nil), g.lines...)
}

// startComputerMove hands a snapshot of the position to the worker.
func (g *Game) startComputerMove() {
	if g.thinking() || g.gameOver {
		return
	}

	g.linesMu.Lock()
	g.lines = nil
	g.linesMu.Unlock()

	g.selected = -1
	g.targets = nil
	g.searching = true
	g.worker.Start(g.board, g.prefs.SearchTime)
}

// applyComputerMove applies the best move of the finished search.
func (g *Game) applyComputerMove() {
	lines := g.searchLines()

	var m board.Move
	if len(lines) > 0 {
		m = lines[len(lines)-1].BestMove
	} else {
		// No depth completed inside the budget; fall back to the first
		// legal move, which is what the search would have returned.
		moves := g.board.GenerateMoves(board.GenAll)
		if len(moves) == 0 {
			return
		}
		m = moves[0]
	}

	g.pushMove(m)
	g.checkGameOver()
}

// pushMove applies a packed move and records it.
func (g *Game) pushMove(m board.Move) {
	g.board.MakeMove(m)
	g.moveHistory = append(g.moveHistory, m)
	g.moveStrings = append(g.moveStrings, g.board.MoveString(m))

	g.lastMove = lastMove{from: m.UserStart(), to: m.UserEnd()}
}

// undoMove takes back the most recent ply.
func (g *Game) undoMove() {
	if len(g.moveHistory) == 0 || g.thinking() {
		return
	}

	last := g.moveHistory[len(g.moveHistory)-1]
	g.board.UndoMove(last)
	g.moveHistory = g.moveHistory[:len(g.moveHistory)-1]
	g.moveStrings = g.moveStrings[:len(g.moveStrings)-1]

	g.selected = -1
	g.targets = nil
	g.gameOver = false
	g.gameResult = ""
	g.recorded = false

	if n := len(g.moveHistory); n > 0 {
		prev := g.moveHistory[n-1]
		g.lastMove = lastMove{from: prev.UserStart(), to: prev.UserEnd()}
	} else {
		g.lastMove = lastMove{from: -1}
	}
}

// newGame resets everything to the initial position.
func (g *Game) newGame() {
	if g.thinking() {
		return
	}

	g.board = board.New()
	g.moveHistory = nil
	g.moveStrings = nil
	g.selected = -1
	g.targets = nil
	g.lastMove = lastMove{from: -1}
	g.screen = screenBoard
	g.gameOver = false
	g.gameResult = ""
	g.recorded = false
	g.startTime = time.Now()

	g.linesMu.Lock()
	g.lines = nil
	g.linesMu.Unlock()
}

// checkGameOver updates the banner and records a finished game.
func (g *Game) checkGameOver() {
	moves := g.board.GenerateMoves(board.GenAll)

	var outcome storage.Outcome
	switch {
	case len(moves) == 0 && g.board.InCheck():
		winner := g.board.SideToMove().Other()
		g.gameResult = fmt.Sprintf("Checkmate: %v wins", winner)
		if (winner == board.White) == (g.prefs.PlayerColor == storage.ColorWhite) {
			outcome = storage.OutcomeWin
		} else {
			outcome = storage.OutcomeLoss
		}
	case len(moves) == 0:
		g.gameResult = "Stalemate"
		outcome = storage.OutcomeDraw
	case g.board.IsDraw():
		g.gameResult = "Draw by repetition"
		outcome = storage.OutcomeDraw
	default:
		return
	}

	g.gameOver = true
	g.recordFinishedGame(outcome)
}

func (g *Game) recordFinishedGame(outcome storage.Outcome) {
	if g.recorded || g.storage == nil {
		return
	}
	g.recorded = true

	if _, err := g.storage.RecordGame(g.moveStrings, outcome, time.Since(g.startTime)); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
}

// statusLine describes the game state for the panel.
func (g *Game) statusLine() string {
	switch {
	case g.gameOver:
		return g.gameResult
	case g.thinking():
		return "Thinking..."
	case g.board.InCheck():
		return fmt.Sprintf("%v to move - check!", g.board.SideToMove())
	default:
		return fmt.Sprintf("%v to move", g.board.SideToMove())
	}
}

// Draw renders one frame.
func (g *Game) Draw(screenImg *ebiten.Image) {
	g.renderer.DrawBoard(screenImg)
	g.renderer.DrawHighlights(screenImg, g)
	g.renderer.DrawPieces(screenImg, g.board)
	g.panel.Draw(screenImg, g.input)

	if g.screen == screenSelectPromotion {
		g.renderer.DrawPromotionPicker(screenImg, g.board.SideToMove())
	}
}

// updatePromotionScreen resolves a click on the promotion picker.
func (g *Game) updatePromotionScreen() {
	if !g.input.IsLeftJustPressed() {
		return
	}

	for i, box := range promotionBoxes(SquareSize) {
		if g.input.IsInBounds(box[0], box[1], box[2], box[3]) {
			g.screen = screenBoard
			g.applyUserMove(g.promoStart, g.promoEnd, promotionChoices[i])
			g.promoStart = -1
			return
		}
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
