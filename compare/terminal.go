// Package compare decides whether two circuits ending in terminal
// measurements are observably indistinguishable under computational-basis
// readout. It synthesizes both circuits' unitaries over a shared qubit
// ordering and compares them block by measurement block, allowing one hidden
// phase per block.
package compare

import (
	"sort"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/verr"
)

// MeasurementSet is the logical measurement set of a circuit: measured qubit
// to invert flag. Order across moments is irrelevant.
type MeasurementSet map[circuit.Qubit]bool

// Qubits returns the measured qubits in sorted order.
func (s MeasurementSet) Qubits() []circuit.Qubit {
	out := make([]circuit.Qubit, 0, len(s))
	for q := range s {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SameQubits reports whether two sets measure the same qubits, ignoring
// invert flags and order.
func (s MeasurementSet) SameQubits(o MeasurementSet) bool {
	if len(s) != len(o) {
		return false
	}
	for q := range s {
		if _, ok := o[q]; !ok {
			return false
		}
	}
	return true
}

// SplitTerminalMeasurements splits a circuit into its unitary prefix and its
// logical measurement set. Measurements on disjoint qubits merge into one
// set whether they share a moment or not. A qubit touched by any operation
// after being measured makes the circuit invalid.
func SplitTerminalMeasurements(c *circuit.Circuit) (*circuit.Circuit, MeasurementSet, error) {
	measured := MeasurementSet{}
	var moments []circuit.Moment
	for i, m := range c.Moments {
		var unitary circuit.Moment
		for _, op := range m {
			for _, q := range op.Qubits() {
				if _, done := measured[q]; done {
					return nil, nil, verr.Validationf(
						"measurement is not terminal: qubit %v is touched again in moment %d after being measured",
						q, i)
				}
			}
			if meas, ok := op.(*circuit.Measurement); ok {
				for j, q := range meas.Targets {
					measured[q] = meas.InvertFlag(j)
				}
			} else {
				unitary = append(unitary, op)
			}
		}
		if len(unitary) > 0 {
			moments = append(moments, unitary)
		}
	}
	return &circuit.Circuit{Moments: moments}, measured, nil
}

// UnionQubits computes the canonical ordered union of the qubits referenced
// by either circuit, the shared basis ordering for synthesis.
func UnionQubits(a, b *circuit.Circuit) []circuit.Qubit {
	seen := map[circuit.Qubit]bool{}
	for _, q := range a.Qubits() {
		seen[q] = true
	}
	for _, q := range b.Qubits() {
		seen[q] = true
	}
	out := make([]circuit.Qubit, 0, len(seen))
	for q := range seen {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
