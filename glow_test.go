package icongen

import (
	"testing"
)

func TestGlow_MonotonicFalloff(t *testing.T) {
	const (
		size = 200
		cx   = size / 2
		cy   = size / 3
		r    = size / 2
	)
	layer := Glow(size, cx, cy, r)

	prev := layer.NRGBAAt(cx, cy).A
	for d := 1; cx+d < size; d++ {
		a := layer.NRGBAAt(cx+d, cy).A
		if a > prev {
			t.Fatalf("alpha at distance %d expected to be <= %d. Got %d", d, prev, a)
		}
		prev = a
	}
}

func TestGlow_PeakAndEdge(t *testing.T) {
	const (
		size = 200
		cx   = size / 2
		cy   = size / 3
		r    = size / 2
	)
	layer := Glow(size, cx, cy, r)

	center := layer.NRGBAAt(cx, cy)
	if center.A > glowPeak || center.A < glowPeak-5 {
		t.Errorf("center alpha expected to be close to %d. Got %d", glowPeak, center.A)
	}
	if center.R != 255 || center.G != 255 || center.B != 255 {
		t.Errorf("the glow expected to be white. Got %v", center)
	}

	// Beyond the maximum radius the layer stays fully transparent.
	if got := layer.NRGBAAt(size-1, cy).A; got != 0 {
		t.Errorf("alpha outside the glow radius expected to be 0. Got %d", got)
	}
}
