package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/AlexKent3141/los-alamos/internal/engine"
)

const (
	panelPadding = 16
	buttonHeight = 36
	lineHeight   = 20
)

// Button is a clickable rectangle in the side panel.
type Button struct {
	Label      string
	X, Y, W, H int
	Disabled   bool
}

// Panel draws the side panel: controls, search output, move list and status.
type Panel struct {
	game *Game

	computerButton *Button
	undoButton     *Button
	newGameButton  *Button
}

// NewPanel creates the panel and lays out its buttons.
func NewPanel(g *Game) *Panel {
	x := BoardSize + panelPadding
	w := PanelWidth - 2*panelPadding

	return &Panel{
		game:           g,
		computerButton: &Button{Label: "Computer move", X: x, Y: 48, W: w, H: buttonHeight},
		undoButton:     &Button{Label: "Undo", X: x, Y: 48 + buttonHeight + 8, W: w, H: buttonHeight},
		newGameButton:  &Button{Label: "New game", X: x, Y: 48 + 2*(buttonHeight+8), W: w, H: buttonHeight},
	}
}

// Update processes clicks on the panel. It returns true if a click was
// consumed.
func (p *Panel) Update(input *InputHandler) bool {
	g := p.game

	p.computerButton.Disabled = g.thinking() || g.gameOver
	p.undoButton.Disabled = g.thinking() || len(g.moveHistory) == 0
	p.newGameButton.Disabled = g.thinking()

	switch {
	case p.clicked(p.computerButton, input):
		g.startComputerMove()
		return true
	case p.clicked(p.undoButton, input):
		g.undoMove()
		return true
	case p.clicked(p.newGameButton, input):
		g.newGame()
		return true
	}
	return false
}

func (p *Panel) clicked(b *Button, input *InputHandler) bool {
	return !b.Disabled && input.ClickedInBounds(b.X, b.Y, b.W, b.H)
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, input *InputHandler) {
	g := p.game
	theme := g.renderer.theme

	vector.DrawFilledRect(screen, float32(BoardSize), 0,
		float32(PanelWidth), float32(ScreenHeight), theme.Background, false)

	p.drawText(screen, "Los Alamos chess", BoardSize+panelPadding, 16, theme.TextColor, boldFace)

	p.drawButton(screen, p.computerButton, input)
	p.drawButton(screen, p.undoButton, input)
	p.drawButton(screen, p.newGameButton, input)

	y := p.newGameButton.Y + buttonHeight + 2*panelPadding

	p.drawText(screen, g.statusLine(), BoardSize+panelPadding, y, theme.TextColor, regularFace)
	y += int(1.5 * lineHeight)

	// Search output, one line per completed depth.
	for _, line := range g.searchLines() {
		p.drawText(screen, formatSearchLine(g, line), BoardSize+panelPadding, y,
			theme.MutedTextColor, regularFace)
		y += lineHeight
	}

	// Recent moves, most recent last.
	y = ScreenHeight - panelPadding - lineHeight*6
	p.drawText(screen, "Moves", BoardSize+panelPadding, y, theme.TextColor, regularFace)
	y += lineHeight

	moves := g.moveStrings
	const maxShown = 5
	start := 0
	if len(moves) > maxShown {
		start = len(moves) - maxShown
	}
	for i := start; i < len(moves); i++ {
		p.drawText(screen, fmt.Sprintf("%d. %s", i+1, moves[i]),
			BoardSize+panelPadding, y, theme.MutedTextColor, regularFace)
		y += lineHeight
	}
}

func formatSearchLine(g *Game, data engine.SearchData) string {
	return fmt.Sprintf("d%-2d %-7s %6d  %d nodes  %dms",
		data.Depth,
		g.board.MoveString(data.BestMove),
		data.Score,
		data.NodesSearched,
		data.TimeTaken.Milliseconds())
}

func (p *Panel) drawButton(screen *ebiten.Image, b *Button, input *InputHandler) {
	theme := p.game.renderer.theme

	bg := theme.ButtonColor
	switch {
	case b.Disabled:
		bg = theme.ButtonDisabled
	case input.IsInBounds(b.X, b.Y, b.W, b.H):
		bg = theme.ButtonHover
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y),
		float32(b.W), float32(b.H), bg, false)

	labelColor := theme.TextColor
	if b.Disabled {
		labelColor = theme.MutedTextColor
	}
	p.drawText(screen, b.Label, b.X+12, b.Y+(b.H-int(defaultFontSize))/2-2, labelColor, regularFace)
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.RGBA, face *text.GoTextFace) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
