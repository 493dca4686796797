package parameter

// Light defaults
const (
	AmbientColor     = "#FFFFFF"
	AmbientIntensity = 0.5

	TrackingLightIntensity = 200.0

	// TrackingLightFixedZ is the tracking light's Z when particle 0 is not followed
	TrackingLightFixedZ = 5.0

	CursorLightColor     = "#FFFFFF"
	CursorLightIntensity = 150.0
	CursorLightDistance  = 10.0

	// PointLightDecay matches physically based inverse-square falloff
	PointLightDecay = 2.0
)

// Physical material defaults
const (
	MaterialMetalness          = 0.5
	MaterialRoughness          = 0.5
	MaterialClearcoat          = 1.0
	MaterialClearcoatRoughness = 0.15
)
