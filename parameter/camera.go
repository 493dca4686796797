package parameter

// Perspective camera defaults
const (
	CameraFov       = 50.0 // degrees, vertical
	CameraNear      = 0.1
	CameraFar       = 2000.0
	CameraDistance  = 20.0
	CameraMaxAspect = 1.5

	// MaxPixelRatio caps device scale on high density displays
	MaxPixelRatio = 1.5
)
