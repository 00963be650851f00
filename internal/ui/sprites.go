// Package ui implements the Los Alamos chess front-end using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/AlexKent3141/los-alamos/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages piece sprites rasterized from the embedded SVGs.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[board.Piece]string{
	{Color: board.White, Type: board.WhitePawn}: "assets/pieces/wP.svg",
	{Color: board.White, Type: board.Knight}:    "assets/pieces/wN.svg",
	{Color: board.White, Type: board.Rook}:      "assets/pieces/wR.svg",
	{Color: board.White, Type: board.Queen}:     "assets/pieces/wQ.svg",
	{Color: board.White, Type: board.King}:      "assets/pieces/wK.svg",
	{Color: board.Black, Type: board.BlackPawn}: "assets/pieces/bP.svg",
	{Color: board.Black, Type: board.Knight}:    "assets/pieces/bN.svg",
	{Color: board.Black, Type: board.Rook}:      "assets/pieces/bR.svg",
	{Color: board.Black, Type: board.Queen}:     "assets/pieces/bQ.svg",
	{Color: board.Black, Type: board.King}:      "assets/pieces/bK.svg",
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes all piece sprites from the embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for piece, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece scaled to the display size at pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	img := sm.pieces[p]
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/sm.renderScale, 1/sm.renderScale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
