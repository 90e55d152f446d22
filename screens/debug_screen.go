package screens

import (
	"image/color"

	"pig-dice/render"
	"pig-dice/systems"
)

// DebugScreen shows the debug log in a modal window drawn over the active
// screen. It never takes part in state changes.
type DebugScreen struct {
	log          *systems.MessageLog
	visible      bool
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a new, hidden debug screen
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		log:        log,
		width:      700,
		height:     420,
		background: color.RGBA{0, 0, 0, 235},
		textColor:  color.White,
	}
}

// Toggle shows or hides the window. Opening it jumps to the newest messages.
func (s *DebugScreen) Toggle() {
	s.visible = !s.visible
	if s.visible {
		s.scrollOffset = s.maxOffset()
	}
}

func (s *DebugScreen) Visible() bool {
	return s.visible
}

func (s *DebugScreen) Offset() int {
	return s.scrollOffset
}

// ScrollUp moves the view up by one line
func (s *DebugScreen) ScrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// ScrollDown moves the view down by one line
func (s *DebugScreen) ScrollDown() {
	if s.scrollOffset < s.maxOffset() {
		s.scrollOffset++
	}
}

const (
	debugStartY     = 30
	debugLineHeight = 16
	debugFooter     = 24
)

func (s *DebugScreen) maxLines() int {
	return (s.height - debugStartY - debugFooter) / debugLineHeight
}

func (s *DebugScreen) maxOffset() int {
	off := s.log.Len() - s.maxLines()
	if off < 0 {
		return 0
	}
	return off
}

// Draw renders the window when visible
func (s *DebugScreen) Draw(screen render.Surface) {
	if !s.visible {
		return
	}

	sw, sh := screen.Size()
	x := float64((sw - s.width) / 2)
	y := float64((sh - s.height) / 2)
	w, h := float64(s.width), float64(s.height)

	screen.FillRect(x, y, w, h, s.background)

	// Frame
	const frame = 2.0
	screen.FillRect(x, y, frame, h, color.White)
	screen.FillRect(x+w-frame, y, frame, h, color.White)
	screen.FillRect(x, y, w, frame, color.White)
	screen.FillRect(x, y+h-frame, w, frame, color.White)

	const title = "DEBUG LOG"
	screen.DrawText(title, render.CenteredX(screen, title, render.FontSmall, x, w), y+6, render.FontSmall, s.textColor)

	messages := s.log.Messages
	maxLines := s.maxLines()
	start := s.scrollOffset
	if start > s.maxOffset() {
		start = s.maxOffset()
	}
	for i := 0; i < maxLines && start+i < len(messages); i++ {
		msg := messages[start+i]
		screen.DrawText(msg.Text, x+10, y+debugStartY+float64(i*debugLineHeight), render.FontSmall, msg.GetColor())
	}

	if len(messages) > maxLines {
		area := h - debugStartY - debugFooter
		barHeight := float64(maxLines) / float64(len(messages)) * area
		barY := y + debugStartY + float64(start)/float64(len(messages))*area
		screen.FillRect(x+w-10, barY, 5, barHeight, color.White)
	}

	screen.DrawText("Up/Down: Scroll  F1: Close", x+10, y+h-debugFooter+4, render.FontSmall, s.textColor)
}
