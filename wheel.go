package main

import (
	"time"
)

const (
	binaryDetectCnt = 4
	initialPeakRate = 10
	stepThreshold   = 1.0
)

type wheelKind int

const (
	wheelKindNone wheelKind = iota
	wheelKindBinary
	wheelKindContinuous
)

// zoomNormalizer turns heterogeneous wheel hardware deltas into discrete
// zoom steps. Mice reporting a fixed magnitude per notch are detected as
// binary and map one event to one step; trackpads reporting continuous
// deltas are scaled by a low-pass-filtered peak rate and accumulated
// until a whole step is reached.
type zoomNormalizer struct {
	ready    bool
	eventCnt int

	kind     wheelKind
	peakRate float64

	repeatCnt int
	repeatAbs float64

	timePrev time.Time
	dSum     float64

	accum float64
}

// Steps returns the number of whole zoom steps produced by this wheel
// event (negative toward the viewer) and whether the normalizer has seen
// enough events to classify the hardware.
func (n *zoomNormalizer) Steps(d float64) (int, bool) {
	v, ok := n.normalize(d)
	if !ok || v == 0 {
		return 0, ok
	}
	if n.kind == wheelKindBinary {
		if v < 0 {
			return -1, true
		}
		return 1, true
	}
	n.accum += v
	var steps int
	for n.accum >= stepThreshold {
		n.accum -= stepThreshold
		steps++
	}
	for n.accum <= -stepThreshold {
		n.accum += stepThreshold
		steps--
	}
	return steps, true
}

func (n *zoomNormalizer) normalize(d float64) (float64, bool) {
	if n.eventCnt > binaryDetectCnt {
		n.ready = true
	} else {
		n.eventCnt++
	}

	dAbs := d
	if dAbs < 0 {
		dAbs = -d
	}
	if dAbs == 0 {
		return 0, n.ready
	}

	// A run of identical magnitudes means a notched wheel.
	if n.repeatAbs == dAbs {
		n.repeatCnt++
	} else {
		n.repeatCnt = 0
	}
	n.repeatAbs = dAbs

	kindPrev := n.kind
	if n.repeatCnt > binaryDetectCnt {
		n.kind = wheelKindBinary
	} else {
		n.kind = wheelKindContinuous
	}
	if n.kind != kindPrev {
		n.peakRate = initialPeakRate
		n.accum = 0
	}

	now := time.Now()
	dt := now.Sub(n.timePrev).Seconds()
	if dt > 0 {
		if dt > 0.1 {
			dt = 0.1
		}

		n.dSum += d
		dps := n.dSum / dt
		n.dSum = 0
		n.timePrev = now

		dpsAbs := dps
		if dpsAbs < 0 {
			dpsAbs = -dps
		}

		if n.peakRate < dpsAbs {
			// LPF to suppress spikes
			n.peakRate = n.peakRate*0.5 + dpsAbs*0.5
		}
		n.peakRate *= 0.95
	} else {
		n.dSum += d
	}

	if n.peakRate < 1 {
		n.peakRate = 1
	}
	if n.kind == wheelKindBinary {
		if d < 0 {
			return -1, n.ready
		}
		return 1, n.ready
	}
	return d * 2.5 / n.peakRate, n.ready
}
