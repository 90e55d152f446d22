package config

// Screen layout configuration
const (
	// Logical screen size in pixels; every screen lays itself out against these
	ScreenWidth  = 1024
	ScreenHeight = 768

	// Sprite sheet cell sizes
	DieSize            = 100
	ButtonWidth        = 200
	ButtonHeight       = 50
	SmallButtonWidth   = 150
	OptionIconWidth    = 100
	OptionIconHeight   = 32
	DefaultTicksPerSec = 60
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
