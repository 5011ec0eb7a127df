package linalg

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// PhaseFromVec estimates the unit-modulus scalar p such that actual ≈
// p*reference, reading the ratio at the reference entry of largest magnitude.
// The second return is false when reference is identically zero and no phase
// can be detected; callers then fall back to requiring actual ≈ 0.
//
// The ratio is normalized to unit modulus so that amplitude mismatches are
// never absorbed into the phase. When actual is zero at the probe position the
// phase defaults to 1 and the subsequent deviation check reports the mismatch.
func PhaseFromVec(actual, reference []complex128) (complex128, bool) {
	best := -1
	bestMag := 0.0
	for i, v := range reference {
		if m := cmplx.Abs(v); m > bestMag {
			bestMag = m
			best = i
		}
	}
	if best < 0 || bestMag == 0 {
		return 1, false
	}
	if cmplx.Abs(actual[best]) == 0 {
		return 1, true
	}
	p := actual[best] / reference[best]
	m := cmplx.Abs(p)
	return p / complex(m, 0), true
}

// MaxPhasedDeviation returns the maximum of |actual[i] - phase*reference[i]|.
func MaxPhasedDeviation(actual, reference []complex128, phase complex128) float64 {
	max := 0.0
	for i := range actual {
		if d := cmplx.Abs(actual[i] - phase*reference[i]); d > max {
			max = d
		}
	}
	return max
}

// AllCloseUpToGlobalPhase reports whether actual and reference agree
// elementwise within atol after factoring out a single unit-modulus phase,
// together with the maximum deviation observed under that phase.
func AllCloseUpToGlobalPhase(actual, reference *mat.CDense, atol float64) (bool, float64) {
	r, c := actual.Dims()
	rr, rc := reference.Dims()
	if r != rr || c != rc {
		return false, 0
	}
	av := flatten(actual)
	rv := flatten(reference)
	phase, detected := PhaseFromVec(av, rv)
	if !detected {
		// Reference block is zero; actual must be zero too.
		max := 0.0
		for _, x := range av {
			if d := cmplx.Abs(x); d > max {
				max = d
			}
		}
		return max <= atol, max
	}
	dev := MaxPhasedDeviation(av, rv, phase)
	return dev <= atol, dev
}

func flatten(m *mat.CDense) []complex128 {
	r, c := m.Dims()
	out := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
