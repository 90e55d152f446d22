package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"pig-dice/assets"
	"pig-dice/config"
	"pig-dice/render"
	"pig-dice/render/ebitenrender"
)

// sheetSection is one row group of the viewer: a title and its indexed images.
type sheetSection struct {
	title  string
	images []render.Image
}

// SheetViewer implements ebiten.Game interface. It shows every image the
// screens can ask the asset library for, labelled with its index.
type SheetViewer struct {
	sections     []sheetSection
	surface      *ebitenrender.Surface
	screenWidth  int
	screenHeight int
	offsetY      int
}

// NewSheetViewer creates a new sheet viewer
func NewSheetViewer(library *assets.Library) *SheetViewer {
	v := &SheetViewer{
		surface:      ebitenrender.NewSurface(),
		screenWidth:  config.ScreenWidth,
		screenHeight: config.ScreenHeight,
	}
	for _, c := range config.DiceColors {
		v.sections = append(v.sections, sheetSection{title: fmt.Sprintf("%s dice (%s)", c, assets.DiceSheetFile), images: library.Dice(c)})
	}
	v.sections = append(v.sections,
		sheetSection{title: "Buttons (" + assets.ButtonSheetFile + ")", images: library.Buttons()},
		sheetSection{title: "Options (" + assets.OptionsSheetFile + ")", images: library.Options()},
	)
	return v
}

// Update handles input for scrolling
func (v *SheetViewer) Update() error {
	const step = 20
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.offsetY += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) && v.offsetY > 0 {
		v.offsetY -= step
		if v.offsetY < 0 {
			v.offsetY = 0
		}
	}
	return nil
}

// Draw displays all the images with their indexes
func (v *SheetViewer) Draw(screen *ebiten.Image) {
	s := v.surface.Target(screen)
	s.Fill(color.RGBA{30, 30, 30, 255})

	const (
		margin  = 10.0
		gap     = 10.0
		caption = 18.0
	)
	labelColor := color.RGBA{220, 220, 220, 255}

	y := 40.0 - float64(v.offsetY)
	s.DrawText("Arrow keys: scroll", margin, y-30, render.FontSmall, labelColor)
	for _, section := range v.sections {
		s.DrawText(section.title, margin, y, render.FontSmall, labelColor)
		y += caption + 4

		x, rowHeight := margin, 0.0
		for i, img := range section.images {
			w, h := render.Size(img)
			if x+float64(w) > float64(v.screenWidth)-margin {
				x = margin
				y += rowHeight + caption + gap
				rowHeight = 0
			}
			s.FillRect(x, y, float64(w), float64(h), color.RGBA{60, 60, 60, 255})
			s.DrawImage(img, x, y)
			s.DrawText(fmt.Sprintf("#%d", i), x, y+float64(h)+2, render.FontSmall, labelColor)
			x += float64(w) + gap
			rowHeight = max(rowHeight, float64(h))
		}
		y += rowHeight + caption + 2*gap
	}
}

// Layout implements ebiten.Game's Layout.
func (v *SheetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenWidth, v.screenHeight
}
