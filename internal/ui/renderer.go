package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetColor    color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	MutedTextColor color.RGBA
	ButtonColor    color.RGBA
	ButtonHover    color.RGBA
	ButtonDisabled color.RGBA
}

// DefaultTheme returns the default color theme. The blue and white squares
// echo the board of the original program.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{235, 236, 240, 255},
		DarkSquare:     color.RGBA{82, 104, 186, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 170},
		TargetColor:    color.RGBA{236, 106, 106, 200},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 80, 80, 170},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		MutedTextColor: color.RGBA{150, 154, 160, 255},
		ButtonColor:    color.RGBA{60, 64, 72, 255},
		ButtonHover:    color.RGBA{80, 84, 92, 255},
		ButtonDisabled: color.RGBA{48, 50, 56, 255},
	}
}

// Renderer draws the board, highlights and pieces.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	squareSize int
}

// NewRenderer creates a renderer with the given square size in pixels.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		squareSize: squareSize,
	}
}

// squareOrigin returns the top-left pixel of a user-coordinate square.
// Row 0 (white's home rank) is drawn at the bottom.
func (r *Renderer) squareOrigin(row, col int) (int, int) {
	return col * r.squareSize, (board.BoardSide - 1 - row) * r.squareSize
}

// DrawBoard draws the checkered squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < board.BoardSide; row++ {
		for col := 0; col < board.BoardSide; col++ {
			x, y := r.squareOrigin(row, col)

			c := r.theme.DarkSquare
			if (row+col)%2 == 1 {
				c = r.theme.LightSquare
			}
			vector.DrawFilledRect(screen,
				float32(x), float32(y),
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the selection, target squares and check indicator.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, g *Game) {
	if g.lastMove.from >= 0 {
		r.highlightSquare(screen, g.lastMove.from, r.theme.LastMoveColor)
		r.highlightSquare(screen, g.lastMove.to, r.theme.LastMoveColor)
	}

	if g.selected >= 0 {
		r.highlightSquare(screen, g.selected, r.theme.SelectedSquare)
	}

	for _, target := range g.targets {
		x, y := r.squareOrigin(target/board.BoardSide, target%board.BoardSide)
		cx := float32(x) + float32(r.squareSize)/2
		cy := float32(y) + float32(r.squareSize)/2
		vector.DrawFilledCircle(screen, cx, cy, float32(r.squareSize)/6, r.theme.TargetColor, false)
	}

	if g.board.InCheck() {
		for row := 0; row < board.BoardSide; row++ {
			for col := 0; col < board.BoardSide; col++ {
				p, ok := g.board.PieceAt(row, col)
				if ok && p.Type == board.King && p.Color == g.board.SideToMove() {
					r.highlightSquare(screen, row*board.BoardSide+col, r.theme.CheckColor)
				}
			}
		}
	}
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, userIndex int, c color.RGBA) {
	x, y := r.squareOrigin(userIndex/board.BoardSide, userIndex%board.BoardSide)
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(r.squareSize), float32(r.squareSize), c, false)
}

// DrawPieces draws every piece on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for row := 0; row < board.BoardSide; row++ {
		for col := 0; col < board.BoardSide; col++ {
			p, ok := b.PieceAt(row, col)
			if !ok {
				continue
			}
			x, y := r.squareOrigin(row, col)
			r.sprites.DrawPieceAt(screen, p, float64(x), float64(y))
		}
	}
}

// promotionChoices are the picker options, in display order.
var promotionChoices = [3]board.PieceType{board.Knight, board.Rook, board.Queen}

// promotionBoxes returns the bounding boxes of the picker choices, centered
// over the board, one per entry of promotionChoices.
func promotionBoxes(squareSize int) [3][4]int {
	var boxes [3][4]int
	x0 := (board.BoardSide*squareSize - 3*squareSize) / 2
	y0 := (board.BoardSide*squareSize - squareSize) / 2
	for i := range boxes {
		boxes[i] = [4]int{x0 + i*squareSize, y0, squareSize, squareSize}
	}
	return boxes
}

// DrawPromotionPicker draws the three promotion choices over a dimmed board.
func (r *Renderer) DrawPromotionPicker(screen *ebiten.Image, mover board.Color) {
	overlay := color.RGBA{0, 0, 0, 160}
	vector.DrawFilledRect(screen, 0, 0,
		float32(board.BoardSide*r.squareSize), float32(board.BoardSide*r.squareSize),
		overlay, false)

	for i, box := range promotionBoxes(r.squareSize) {
		vector.DrawFilledRect(screen, float32(box[0]), float32(box[1]),
			float32(box[2]), float32(box[3]), r.theme.LightSquare, false)
		r.sprites.DrawPieceAt(screen,
			board.Piece{Color: mover, Type: promotionChoices[i]},
			float64(box[0]), float64(box[1]))
	}
}
