package parameter

// Software rasterizer
const (
	// BackgroundColor fills pixels no sphere covers
	BackgroundColor = "#0B0B12"

	// ToneExposure scales linear radiance before ACES tone mapping
	ToneExposure = 1.0

	// Hemisphere environment standing in for a neutral room reflection
	EnvSkyIntensity    = 0.9
	EnvGroundIntensity = 0.25
	EnvIntensity       = 1.0

	// EdgeSoftness is the normalized disc radius band faded at sphere silhouettes
	EdgeSoftness = 0.08

	// MinPixelRadius skips instances that project smaller than this
	MinPixelRadius = 0.35
)

// Dielectric specular reflectance at normal incidence
const BaseReflectance = 0.04
