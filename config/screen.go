package config

// Screen layout configuration for the level viewer
const (
	// Tile size in pixels
	TileSize = 12

	// Window dimensions in tiles: the level area plus a status panel
	ScreenWidth  = 80
	ScreenHeight = 56

	// Map area
	GameScreenWidth  = 80
	GameScreenHeight = 50

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
