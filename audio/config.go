package audio

import (
	"github.com/lixenwraith/ballpit/parameter"
)

// Config controls wall impact ticks
type Config struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0-1.0
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// DefaultConfig leaves audio off; terminals are often run without a sound device
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     parameter.ImpactVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}
