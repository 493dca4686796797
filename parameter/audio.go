package parameter

import "time"

// Wall impact audio
const (
	AudioSampleRate = 48000

	// ImpactMinSpeed is the wall impact speed below which no tick is played
	ImpactMinSpeed = 0.05

	// ImpactCooldown rate limits ticks so dense contact does not saturate the mixer
	ImpactCooldown = 60 * time.Millisecond

	ImpactDuration = 40 * time.Millisecond
	ImpactBaseFreq = 220.0
	ImpactVolume   = 0.25
)
