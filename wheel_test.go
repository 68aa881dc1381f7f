package main

import (
	"testing"
	"time"
)

func TestZoomNormalizerWarmup(t *testing.T) {
	n := &zoomNormalizer{}
	for i := 0; i < binaryDetectCnt+1; i++ {
		if _, ok := n.Steps(120); ok {
			t.Fatalf("Normalizer must not be ready after %d events", i+1)
		}
	}
	if _, ok := n.Steps(120); !ok {
		t.Error("Normalizer must be ready after the warmup events")
	}
}

func TestZoomNormalizerBinaryWheel(t *testing.T) {
	interval := 10 * time.Millisecond

	testCases := map[string]struct {
		magnitude float64
	}{
		"Notch1":   {magnitude: 1},
		"Notch120": {magnitude: 120},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			n := &zoomNormalizer{}
			for i := 0; i < binaryDetectCnt+2; i++ {
				time.Sleep(interval)
				n.Steps(tt.magnitude)
			}

			for _, in := range []struct {
				d        float64
				expected int
			}{
				{tt.magnitude, 1},
				{-tt.magnitude, -1},
				{0, 0},
				{tt.magnitude, 1},
			} {
				time.Sleep(interval)
				steps, ok := n.Steps(in.d)
				if !ok {
					t.Fatal("Normalizer should be ready")
				}
				if steps != in.expected {
					t.Errorf("Expected %d steps for delta %f, got: %d", in.expected, in.d, steps)
				}
			}
		})
	}
}

func TestZoomNormalizerContinuousAccumulates(t *testing.T) {
	interval := 10 * time.Millisecond
	n := &zoomNormalizer{}

	// Varying magnitudes classify the device as continuous; sustained
	// scrolling must eventually produce whole steps in one direction.
	var total int
	mags := []float64{80, 120, 100, 90, 110}
	for i := 0; i < 100; i++ {
		time.Sleep(interval)
		steps, _ := n.Steps(mags[i%len(mags)])
		if steps < 0 {
			t.Fatalf("Positive deltas must never yield negative steps, got: %d", steps)
		}
		total += steps
	}
	if total < 1 {
		t.Errorf("Sustained scrolling must produce at least one step, got: %d", total)
	}
	if n.kind != wheelKindContinuous {
		t.Error("Varying magnitudes must classify as continuous")
	}
}

func TestZoomNormalizerKindSwitchResetsAccum(t *testing.T) {
	interval := 10 * time.Millisecond
	n := &zoomNormalizer{}

	mags := []float64{80, 120, 100, 90, 110}
	for i := 0; i < 20; i++ {
		time.Sleep(interval)
		n.Steps(mags[i%len(mags)])
	}

	// A run of identical magnitudes re-classifies as binary and clears
	// the partial continuous accumulation.
	for i := 0; i < binaryDetectCnt+2; i++ {
		time.Sleep(interval)
		n.Steps(120)
	}
	if n.kind != wheelKindBinary {
		t.Fatal("Identical magnitudes must classify as binary")
	}
	if n.accum != 0 {
		t.Errorf("Kind switch must reset the accumulator, got: %f", n.accum)
	}

	time.Sleep(interval)
	steps, ok := n.Steps(-120)
	if !ok || steps != -1 {
		t.Errorf("Expected -1 step, got: (%d, %v)", steps, ok)
	}
}
