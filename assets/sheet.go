package assets

import (
	"fmt"
	"image"
	"image/draw"

	"pig-dice/config"
	"pig-dice/render"
)

// Sheet file names expected inside an assets directory
const (
	DiceSheetFile    = "DiceSheet.png"
	ButtonSheetFile  = "ButtonSheet.png"
	OptionsSheetFile = "OptionsSheet.png"
)

// Sheet layouts (all indexes 0-based):
//
//	DiceSheet    600x300: one row per colour (white, black, red), six 100x100 faces per row, face value = index+1.
//	ButtonSheet  800x150: rows 0-1 hold four 200x50 cells, row 2 holds four 150x50 cells.
//	OptionsSheet 600x64:  row 0 holds six 100x32 cells, row 1 holds four.
//
// Buttons and option icons come in (normal, pressed) pairs; the constants
// below name the normal image and the pressed image is the next index.
const (
	ButtonNewGame = 0
	ButtonRules   = 2
	ButtonOptions = 4
	ButtonMenu    = 6
	ButtonRoll    = 8
	ButtonStop    = 10
	numButtons    = 12

	OptionWhite     = 0
	OptionBlack     = 2
	OptionRed       = 4
	OptionTarget100 = 6
	OptionTarget200 = 8
	numOptions      = 10

	facesPerDie = 6
)

var (
	diceSheetSize    = image.Pt(6*config.DieSize, 3*config.DieSize)
	buttonSheetSize  = image.Pt(4*config.ButtonWidth, 3*config.ButtonHeight)
	optionsSheetSize = image.Pt(6*config.OptionIconWidth, 2*config.OptionIconHeight)
)

// Sheets are the three source images every indexed image is cut from.
type Sheets struct {
	Dice    image.Image
	Buttons image.Image
	Options image.Image
}

// Library is the indexed image set used by the screens. Images are immutable.
type Library struct {
	dice    map[config.DiceColor][]render.Image
	buttons []render.Image
	options []render.Image
}

// FromSheets slices the sheets into a Library.
func FromSheets(s Sheets) (*Library, error) {
	if err := checkSize("dice", s.Dice, diceSheetSize); err != nil {
		return nil, err
	}
	if err := checkSize("button", s.Buttons, buttonSheetSize); err != nil {
		return nil, err
	}
	if err := checkSize("options", s.Options, optionsSheetSize); err != nil {
		return nil, err
	}

	lib := &Library{dice: make(map[config.DiceColor][]render.Image)}

	for row, c := range config.DiceColors {
		faces := make([]render.Image, 0, facesPerDie)
		for i := 0; i < facesPerDie; i++ {
			faces = append(faces, cell(s.Dice, i*config.DieSize, row*config.DieSize, config.DieSize, config.DieSize))
		}
		lib.dice[c] = faces
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			lib.buttons = append(lib.buttons, cell(s.Buttons,
				col*config.ButtonWidth, row*config.ButtonHeight, config.ButtonWidth, config.ButtonHeight))
		}
	}
	for col := 0; col < 4; col++ {
		lib.buttons = append(lib.buttons, cell(s.Buttons,
			col*config.SmallButtonWidth, 2*config.ButtonHeight, config.SmallButtonWidth, config.ButtonHeight))
	}

	for col := 0; col < 6; col++ {
		lib.options = append(lib.options, cell(s.Options,
			col*config.OptionIconWidth, 0, config.OptionIconWidth, config.OptionIconHeight))
	}
	for col := 0; col < 4; col++ {
		lib.options = append(lib.options, cell(s.Options,
			col*config.OptionIconWidth, config.OptionIconHeight, config.OptionIconWidth, config.OptionIconHeight))
	}

	return lib, nil
}

// Dice returns the six faces for a colour; face value v is at index v-1.
func (l *Library) Dice(c config.DiceColor) []render.Image {
	faces, ok := l.dice[c]
	if !ok {
		panic(fmt.Sprintf("assets: no dice for colour %v", c))
	}
	return faces
}

// Buttons returns all button images in sheet order.
func (l *Library) Buttons() []render.Image { return l.buttons }

// Options returns all option icons in sheet order.
func (l *Library) Options() []render.Image { return l.options }

// ButtonPair returns the normal and pressed images for a button index constant.
func (l *Library) ButtonPair(index int) (normal, pressed render.Image) {
	return pair(l.buttons, index, "button")
}

// OptionPair returns the normal and pressed images for an option index constant.
func (l *Library) OptionPair(index int) (normal, pressed render.Image) {
	return pair(l.options, index, "option")
}

// ColorOption returns the icon pair for a dice colour.
func (l *Library) ColorOption(c config.DiceColor) (normal, pressed render.Image) {
	return l.OptionPair(OptionWhite + 2*int(c))
}

// TargetOption returns the icon pair for the target score at position i of config.TargetScores.
func (l *Library) TargetOption(i int) (normal, pressed render.Image) {
	return l.OptionPair(OptionTarget100 + 2*i)
}

func pair(images []render.Image, index int, what string) (render.Image, render.Image) {
	if index < 0 || index%2 != 0 || index+1 >= len(images) {
		panic(fmt.Sprintf("assets: %s index %d out of range", what, index))
	}
	return images[index], images[index+1]
}

func checkSize(name string, img image.Image, min image.Point) error {
	if img == nil {
		return fmt.Errorf("%s sheet missing", name)
	}
	size := img.Bounds().Size()
	if size.X < min.X || size.Y < min.Y {
		return fmt.Errorf("%s sheet is %v, need at least %v", name, size, min)
	}
	return nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cell cuts a w×h rectangle at (x, y) relative to the sheet origin.
func cell(sheet image.Image, x, y, w, h int) render.Image {
	origin := sheet.Bounds().Min
	r := image.Rect(x, y, x+w, y+h).Add(origin)
	if si, ok := sheet.(subImager); ok {
		return si.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), sheet, r.Min, draw.Src)
	return dst
}
