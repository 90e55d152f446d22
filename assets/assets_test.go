package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"pig-dice/config"
	"pig-dice/render"
)

func size(img render.Image) image.Point {
	return img.Bounds().Size()
}

func TestGeneratedLibraryLayout(t *testing.T) {
	lib, err := New("")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	for _, c := range config.DiceColors {
		faces := lib.Dice(c)
		if len(faces) != 6 {
			t.Fatalf("%v: expected 6 faces, got %d", c, len(faces))
		}
		if size(faces[5]) != image.Pt(100, 100) {
			t.Fatalf("%v: unexpected face size %v", c, size(faces[5]))
		}
	}
	if len(lib.Buttons()) != 12 || len(lib.Options()) != 10 {
		t.Fatalf("unexpected counts: %d buttons, %d options", len(lib.Buttons()), len(lib.Options()))
	}

	normal, pressed := lib.ButtonPair(ButtonMenu)
	if size(normal) != image.Pt(200, 50) || size(pressed) != image.Pt(200, 50) {
		t.Fatalf("unexpected menu button size %v", size(normal))
	}
	roll, _ := lib.ButtonPair(ButtonRoll)
	if size(roll) != image.Pt(150, 50) {
		t.Fatalf("unexpected roll button size %v", size(roll))
	}
	if roll.Bounds().Min != image.Pt(0, 100) {
		t.Fatalf("roll button should start the third row, got %v", roll.Bounds().Min)
	}
	red, _ := lib.ColorOption(config.DiceRed)
	if red.Bounds().Min != image.Pt(400, 0) {
		t.Fatalf("red option cut from %v", red.Bounds().Min)
	}
	target, _ := lib.TargetOption(1)
	if target.Bounds().Min != image.Pt(200, 32) {
		t.Fatalf("200 option cut from %v", target.Bounds().Min)
	}
}

func TestPairPanicsOnBadIndex(t *testing.T) {
	lib, _ := New("")
	for _, idx := range []int{-2, 1, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for index %d", idx)
				}
			}()
			lib.ButtonPair(idx)
		}()
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	sheets := Generate()
	writePNG(t, filepath.Join(dir, DiceSheetFile), sheets.Dice)
	writePNG(t, filepath.Join(dir, ButtonSheetFile), sheets.Buttons)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for missing options sheet")
	}

	writePNG(t, filepath.Join(dir, OptionsSheetFile), image.NewRGBA(image.Rect(0, 0, 10, 10)))
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for undersized options sheet")
	}

	writePNG(t, filepath.Join(dir, OptionsSheetFile), sheets.Options)
	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(lib.Dice(config.DiceBlack)) != 6 {
		t.Fatal("expected black dice")
	}
}

func TestRules(t *testing.T) {
	rules := DefaultRules()
	if len(rules.Lines()) == 0 {
		t.Fatal("expected built-in rules")
	}

	path := filepath.Join(t.TempDir(), "rules.txt")
	if err := os.WriteFile(path, []byte("first\r\nsecond\n\nfourth"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules returned error: %v", err)
	}
	want := []string{"first", "second", "", "fourth"}
	got := loaded.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}

	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
