package parameter

import "time"

// Frame loop & lifecycle timing
const (
	// FrameInterval is the host frame scheduling interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// ResizeDebounce delays surface measurement until resize events settle
	ResizeDebounce = 150 * time.Millisecond

	// ConfigReloadDebounce coalesces editor save bursts on the config file
	ConfigReloadDebounce = 300 * time.Millisecond

	// PostQueueSize is the capacity of the loop's host event queue
	PostQueueSize = 256
)

// Metrics sampling
const (
	// FPSWindow is the span over which frames are counted for the fps gauge
	FPSWindow = time.Second
)
