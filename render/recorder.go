package render

import (
	"image/color"
	"strings"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string
	X, Y  float64
	W, H  float64
	Text  string
	Image Image
	Color color.Color
}

// Recorder is a Surface that records draw calls instead of rasterising them.
// Text is measured as a fixed-width face scaled to the font size.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder creates a recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", W: float64(r.Width), H: float64(r.Height), Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: cx, Y: cy, W: radius * 2, H: radius * 2, Color: clr})
}

func (r *Recorder) DrawImage(img Image, x, y float64) {
	w, h := Size(img)
	r.Ops = append(r.Ops, Op{Kind: "image", X: x, Y: y, W: float64(w), H: float64(h), Image: img})
}

func (r *Recorder) DrawText(s string, x, y float64, size FontSize, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Color: clr, H: float64(size.Pixels())})
}

func (r *Recorder) TextWidth(s string, size FontSize) float64 {
	return float64(len(s)) * float64(size.Pixels()) * 7 / 13
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any drawn string contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, t := range r.Texts() {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
