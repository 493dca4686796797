// Package config loads ballpit settings from YAML with environment overrides
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ballpit/audio"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/particle"
)

// Config is the full settings tree; every field has a working default
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Lights     LightsConfig     `yaml:"lights"`
	Camera     CameraConfig     `yaml:"camera"`
	Render     RenderConfig     `yaml:"render"`
	Audio      audio.Config     `yaml:"audio"`
	Contact    ContactConfig    `yaml:"contact"`
	Log        LogConfig        `yaml:"log"`
}

type SimulationConfig struct {
	Count          int      `yaml:"count"`
	MaxX           float64  `yaml:"max_x"`
	MaxY           float64  `yaml:"max_y"`
	MaxZ           float64  `yaml:"max_z"`
	MinSize        float64  `yaml:"min_size"`
	MaxSize        float64  `yaml:"max_size"`
	Size0          float64  `yaml:"size0"`
	Gravity        float64  `yaml:"gravity"`
	Friction       float64  `yaml:"friction"`
	WallBounce     float64  `yaml:"wall_bounce"`
	MaxVelocity    float64  `yaml:"max_velocity"`
	ControlSphere0 bool     `yaml:"control_sphere0"`
	FollowCursor   bool     `yaml:"follow_cursor"`
	RepelRadius    float64  `yaml:"repel_radius"`
	RepelStrength  float64  `yaml:"repel_strength"`
	Colors         []string `yaml:"colors"`
	Seed           uint64   `yaml:"seed"` // 0 seeds from the clock
}

type LightsConfig struct {
	AmbientColor         string  `yaml:"ambient_color"`
	AmbientIntensity     float64 `yaml:"ambient_intensity"`
	LightIntensity       float64 `yaml:"light_intensity"`
	CursorLightColor     string  `yaml:"cursor_light_color"`
	CursorLightIntensity float64 `yaml:"cursor_light_intensity"`
	CursorLightDistance  float64 `yaml:"cursor_light_distance"`
}

type CameraConfig struct {
	Fov       float64 `yaml:"fov"`
	Distance  float64 `yaml:"distance"`
	MinAspect float64 `yaml:"min_aspect"`
	MaxAspect float64 `yaml:"max_aspect"`
}

type RenderConfig struct {
	Background       string        `yaml:"background"`
	Exposure         float64       `yaml:"exposure"`
	MaxPixelRatio    float64       `yaml:"max_pixel_ratio"`
	FrameInterval    time.Duration `yaml:"frame_interval"`
	FallbackMinWidth int           `yaml:"fallback_min_width"` // surface px; 0 disables the fallback
}

type ContactConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default mirrors the stock ballpit
func Default() *Config {
	sim := particle.DefaultConfig()
	return &Config{
		Simulation: SimulationConfig{
			Count:          sim.Count,
			MaxX:           sim.MaxX,
			MaxY:           sim.MaxY,
			MaxZ:           sim.MaxZ,
			MinSize:        sim.MinSize,
			MaxSize:        sim.MaxSize,
			Size0:          sim.Size0,
			Gravity:        sim.Gravity,
			Friction:       sim.Friction,
			WallBounce:     sim.WallBounce,
			MaxVelocity:    sim.MaxVelocity,
			ControlSphere0: sim.ControlSphere0,
			FollowCursor:   sim.FollowCursor,
			RepelRadius:    sim.RepelRadius,
			RepelStrength:  sim.RepelStrength,
			Colors:         append([]string(nil), parameter.DefaultColors...),
		},
		Lights: LightsConfig{
			AmbientColor:         parameter.AmbientColor,
			AmbientIntensity:     parameter.AmbientIntensity,
			LightIntensity:       parameter.TrackingLightIntensity,
			CursorLightColor:     parameter.CursorLightColor,
			CursorLightIntensity: parameter.CursorLightIntensity,
			CursorLightDistance:  parameter.CursorLightDistance,
		},
		Camera: CameraConfig{
			Fov:       parameter.CameraFov,
			Distance:  parameter.CameraDistance,
			MaxAspect: parameter.CameraMaxAspect,
		},
		Render: RenderConfig{
			Background:       parameter.BackgroundColor,
			Exposure:         parameter.ToneExposure,
			MaxPixelRatio:    parameter.MaxPixelRatio,
			FrameInterval:    parameter.FrameInterval,
			FallbackMinWidth: parameter.FallbackMinWidthPx,
		},
		Audio: audio.DefaultConfig(),
		Contact: ContactConfig{
			URL:     DefaultContactURL,
			Timeout: 15 * time.Second,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// DefaultContactURL is the local development relay
const DefaultContactURL = "http://localhost:8888/.netlify/functions"

// Environment overrides
const (
	EnvContactURL = "BALLPIT_CONTACT_URL"
	EnvCount      = "BALLPIT_COUNT"
	EnvDebug      = "BALLPIT_DEBUG"
)

// Load reads path over the defaults; a missing file yields defaults
// Environment overrides apply in both cases
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if url := os.Getenv(EnvContactURL); url != "" {
		c.Contact.URL = url
	}
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCount, err)
		}
		c.Simulation.Count = n
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Log.Debug = b
	}
	return nil
}
