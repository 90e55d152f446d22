package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

// New returns the image library: loaded from dir when set, generated otherwise.
func New(dir string) (*Library, error) {
	if dir == "" {
		return FromSheets(Generate())
	}
	return Load(dir)
}

// Load reads the three PNG sheets from dir.
func Load(dir string) (*Library, error) {
	dice, err := loadImage(filepath.Join(dir, DiceSheetFile))
	if err != nil {
		return nil, err
	}
	buttons, err := loadImage(filepath.Join(dir, ButtonSheetFile))
	if err != nil {
		return nil, err
	}
	options, err := loadImage(filepath.Join(dir, OptionsSheetFile))
	if err != nil {
		return nil, err
	}

	lib, err := FromSheets(Sheets{Dice: dice, Buttons: buttons, Options: options})
	if err != nil {
		return nil, fmt.Errorf("load sheets from %s: %w", dir, err)
	}
	return lib, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
