package parameter

// Capability selection
const (
	// FallbackMinWidthPx is the surface width below which the static backdrop replaces the simulation
	FallbackMinWidthPx = 768

	// TerminalCellWidthPx approximates one terminal column in CSS pixels for capability selection
	TerminalCellWidthPx = 8
)

// Static backdrop gradient stops, alpha per palette color
const (
	FallbackAlphaPrimary   = 0x22 / 255.0
	FallbackAlphaSecondary = 0x22 / 255.0
	FallbackAlphaTertiary  = 0x15 / 255.0
)

// HUD
const (
	HUDRows = 1
)

// Window host
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "ballpit"
)
