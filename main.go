// Los Alamos chess - a 6x6 chess variant, built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/AlexKent3141/los-alamos/internal/ui"
)

func main() {
	game := ui.NewGame()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Los Alamos chess")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
