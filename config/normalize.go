package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/particle"
	"github.com/lixenwraith/ballpit/scene"
	"github.com/lixenwraith/ballpit/vmath"
)

// Normalize repairs values the simulation cannot use and returns one warning per repair
// Nothing here is fatal; a bad palette only disables recoloring
func (c *Config) Normalize() []string {
	var warn []string
	s := &c.Simulation

	if s.Count < 1 {
		warn = append(warn, fmt.Sprintf("simulation.count %d raised to 1", s.Count))
		s.Count = 1
	}
	if s.MinSize > s.MaxSize {
		warn = append(warn, "simulation.min_size exceeds max_size, swapped")
		s.MinSize, s.MaxSize = s.MaxSize, s.MinSize
	}
	if s.Friction < 0 || s.Friction > 1 {
		warn = append(warn, fmt.Sprintf("simulation.friction %g clamped to [0,1]", s.Friction))
		s.Friction = vmath.Clamp(s.Friction, 0, 1)
	}
	if s.MaxVelocity <= 0 {
		warn = append(warn, "simulation.max_velocity must be positive, using default")
		s.MaxVelocity = parameter.DefaultMaxVelocity
	}

	pal, rejected := scene.ParsePalette(s.Colors)
	for _, bad := range rejected {
		warn = append(warn, fmt.Sprintf("simulation.colors: %q is not a hex color, skipped", bad))
	}
	if !pal.Valid() {
		warn = append(warn, "simulation.colors: fewer than 2 usable colors, recoloring disabled")
	}

	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		warn = append(warn, fmt.Sprintf("camera.fov %g out of range, using default", c.Camera.Fov))
		c.Camera.Fov = parameter.CameraFov
	}
	if c.Camera.Distance <= 0 {
		warn = append(warn, "camera.distance must be positive, using default")
		c.Camera.Distance = parameter.CameraDistance
	}
	if c.Camera.MinAspect > 0 && c.Camera.MaxAspect > 0 && c.Camera.MinAspect > c.Camera.MaxAspect {
		warn = append(warn, "camera.min_aspect exceeds max_aspect, swapped")
		c.Camera.MinAspect, c.Camera.MaxAspect = c.Camera.MaxAspect, c.Camera.MinAspect
	}
	if c.Render.Exposure <= 0 {
		warn = append(warn, "render.exposure must be positive, using default")
		c.Render.Exposure = parameter.ToneExposure
	}
	if c.Render.FrameInterval <= 0 {
		c.Render.FrameInterval = parameter.FrameInterval
	}
	if c.Render.MaxPixelRatio <= 0 {
		c.Render.MaxPixelRatio = parameter.MaxPixelRatio
	}
	return warn
}

// Particle converts the simulation section
func (s SimulationConfig) Particle() particle.Config {
	return particle.Config{
		Count:          s.Count,
		MaxX:           s.MaxX,
		MaxY:           s.MaxY,
		MaxZ:           s.MaxZ,
		MinSize:        s.MinSize,
		MaxSize:        s.MaxSize,
		Size0:          s.Size0,
		Gravity:        s.Gravity,
		Friction:       s.Friction,
		WallBounce:     s.WallBounce,
		MaxVelocity:    s.MaxVelocity,
		ControlSphere0: s.ControlSphere0,
		FollowCursor:   s.FollowCursor,
		RepelRadius:    s.RepelRadius,
		RepelStrength:  s.RepelStrength,
	}
}

// Palette parses the configured colors, dropping invalid entries
func (s SimulationConfig) Palette() scene.Palette {
	p, _ := scene.ParsePalette(s.Colors)
	return p
}

// Spheres builds the instanced ballpit configuration
func (c *Config) Spheres() scene.SpheresConfig {
	sc := scene.DefaultSpheresConfig()
	sc.Simulation = c.Simulation.Particle()
	sc.Palette = c.Simulation.Palette()
	sc.AmbientColor = parseColor(c.Lights.AmbientColor, sc.AmbientColor)
	sc.AmbientIntensity = c.Lights.AmbientIntensity
	sc.LightIntensity = c.Lights.LightIntensity
	sc.CursorLightColor = parseColor(c.Lights.CursorLightColor, sc.CursorLightColor)
	sc.CursorLightIntensity = c.Lights.CursorLightIntensity
	sc.CursorLightDistance = c.Lights.CursorLightDistance
	return sc
}

// Apply sets framing on cam; the next resize recomputes the clamped fov
func (c CameraConfig) Apply(cam *camera.Camera) {
	cam.BaseFov = c.Fov
	cam.Fov = c.Fov
	cam.Position = mgl64.Vec3{0, 0, c.Distance}
	cam.MinAspect = c.MinAspect
	cam.MaxAspect = c.MaxAspect
	cam.UpdateProjection()
}

func parseColor(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
