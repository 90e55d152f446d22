package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pig-dice/config"
)

var (
	outline      = color.RGBA{20, 20, 20, 255}
	buttonFace   = color.RGBA{225, 225, 225, 255}
	buttonPushed = color.RGBA{60, 60, 60, 255}
	optionFace   = color.RGBA{245, 245, 245, 255}
	optionPushed = color.RGBA{200, 200, 200, 255}
)

// pip centres per face value, in thirds of the die size
var pipLayout = map[int][][2]int{
	1: {{1, 1}},
	2: {{0, 0}, {2, 2}},
	3: {{0, 0}, {1, 1}, {2, 2}},
	4: {{0, 0}, {2, 0}, {0, 2}, {2, 2}},
	5: {{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}},
	6: {{0, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {2, 2}},
}

var buttonLabels = []string{"NEW GAME", "RULES", "OPTIONS", "MENU", "ROLL", "STOP"}

var optionLabels = []string{"WHITE", "BLACK", "RED", "100", "200"}

// Generate draws all three sheets procedurally, in the same layout as the
// PNG sheets Load expects.
func Generate() Sheets {
	return Sheets{
		Dice:    generateDice(),
		Buttons: generateButtons(),
		Options: generateOptions(),
	}
}

func generateDice() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: diceSheetSize})
	size := config.DieSize
	for row, c := range config.DiceColors {
		body := c.RGBA()
		pip := color.RGBA{255, 255, 255, 255}
		if c == config.DiceWhite {
			pip = color.RGBA{0, 0, 0, 255}
		}
		for face := 1; face <= facesPerDie; face++ {
			r := image.Rect((face-1)*size, row*size, face*size, (row+1)*size)
			fillRect(img, r.Inset(4), outline)
			fillRect(img, r.Inset(7), body)
			step := size / 4
			for _, p := range pipLayout[face] {
				cx := r.Min.X + step + p[0]*step
				cy := r.Min.Y + step + p[1]*step
				fillCircle(img, cx, cy, size/11, pip)
			}
		}
	}
	return img
}

func generateButtons() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: buttonSheetSize})
	for i, label := range buttonLabels {
		w := config.ButtonWidth
		x, y := 0, 0
		switch {
		case i < 4:
			// two buttons (normal + pressed) per label, four cells per row
			idx := i * 2
			x, y = (idx%4)*w, (idx/4)*config.ButtonHeight
		default:
			w = config.SmallButtonWidth
			idx := (i - 4) * 2
			x, y = idx*w, 2*config.ButtonHeight
		}
		normal := image.Rect(x, y, x+w, y+config.ButtonHeight)
		pressed := normal.Add(image.Pt(w, 0))
		drawLabelCell(img, normal, label, buttonFace, outline)
		drawLabelCell(img, pressed, label, buttonPushed, color.White)
	}
	return img
}

func generateOptions() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: optionsSheetSize})
	w, h := config.OptionIconWidth, config.OptionIconHeight
	for i, label := range optionLabels {
		idx := i * 2
		row, col := 0, idx
		if i >= len(config.DiceColors) {
			row, col = 1, idx-2*len(config.DiceColors)
		}
		normal := image.Rect(col*w, row*h, (col+1)*w, (row+1)*h)
		pressed := normal.Add(image.Pt(w, 0))
		drawLabelCell(img, normal, label, optionFace, outline)
		drawLabelCell(img, pressed, label, optionPushed, outline)
	}
	return img
}

func drawLabelCell(img *image.RGBA, r image.Rectangle, label string, bg, fg color.Color) {
	fillRect(img, r.Inset(1), outline)
	fillRect(img, r.Inset(3), bg)

	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(r.Min.X+(r.Dx()-width)/2, r.Min.Y+r.Dy()/2+face.Ascent/2),
	}
	d.DrawString(label)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				img.Set(cx+x, cy+y, c)
			}
		}
	}
}
