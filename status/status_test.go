package status

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMetricMapGetIsStable(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ints.Get(KeyFrames)
	b := reg.Ints.Get(KeyFrames)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	if !reg.Ints.Has(KeyFrames) || reg.Ints.Has("missing") {
		t.Error("Has reports wrong membership")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	reg := NewRegistry()
	for _, k := range []string{"c", "a", "b"} {
		reg.Ints.Get(k)
	}
	var keys []string
	reg.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("Range order = %v, want [a b c]", keys)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Ints.Get(KeyCollisions).Add(1)
		}()
	}
	wg.Wait()
	if got := reg.Ints.Get(KeyCollisions).Load(); got != 50 {
		t.Errorf("collisions = %d, want 50", got)
	}
	if reg.TotalCount() != 1 {
		t.Errorf("TotalCount = %d, want 1", reg.TotalCount())
	}
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Max(0.1)
	f.Max(0.05)
	if got := f.Load(); got != 0.1 {
		t.Errorf("Max = %v, want 0.1", got)
	}
}

func TestFrameMeterFPS(t *testing.T) {
	reg := NewRegistry()
	m := NewFrameMeter(reg)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i <= 60; i++ {
		m.Record(start.Add(time.Duration(i)*time.Second/60), 2, 1, 0.01)
	}

	if got := reg.Ints.Get(KeyFrames).Load(); got != 61 {
		t.Errorf("frames = %d, want 61", got)
	}
	if got := reg.Ints.Get(KeyCollisions).Load(); got != 122 {
		t.Errorf("collisions = %d, want 122", got)
	}
	// 61 frames counted across the first full second
	if got := reg.Floats.Get(KeyFPS).Load(); got < 60 || got > 62 {
		t.Errorf("fps = %v, want ~61", got)
	}
	if m.Summary() == "" {
		t.Error("empty summary")
	}
}
