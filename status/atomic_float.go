package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as IEEE bits; the zero value reads 0
type AtomicFloat struct {
	v atomic.Uint64
}

func (f *AtomicFloat) Store(val float64) { f.v.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Load() float64 { return math.Float64frombits(f.v.Load()) }

// Max keeps the larger of the stored value and val, returning what is stored
func (f *AtomicFloat) Max(val float64) float64 {
	for {
		old := f.v.Load()
		if cur := math.Float64frombits(old); val <= cur {
			return cur
		}
		if f.v.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}
