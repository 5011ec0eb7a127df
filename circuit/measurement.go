package circuit

import (
	"fmt"
	"strings"
)

// Measurement reads out its target qubits in the computational basis. Each
// target carries an invert flag that flips the reported bit; masks shorter
// than the target list pad with false.
type Measurement struct {
	Targets []Qubit
	Invert  []bool
}

// Measure builds a measurement of the given qubits with no inversion.
func Measure(qubits ...Qubit) *Measurement {
	return &Measurement{Targets: qubits}
}

// MeasureInvert builds a measurement with an invert mask. A short mask pads
// with false; a mask longer than the targets is truncated.
func MeasureInvert(qubits []Qubit, invert []bool) *Measurement {
	m := &Measurement{Targets: qubits, Invert: make([]bool, len(qubits))}
	copy(m.Invert, invert)
	return m
}

func (m *Measurement) Qubits() []Qubit { return m.Targets }

// InvertFlag reports the invert flag for target index i, padding with false.
func (m *Measurement) InvertFlag(i int) bool {
	return i < len(m.Invert) && m.Invert[i]
}

func (m *Measurement) String() string {
	parts := make([]string, len(m.Targets))
	for i, q := range m.Targets {
		if m.InvertFlag(i) {
			parts[i] = fmt.Sprintf("!%d", q)
		} else {
			parts[i] = fmt.Sprintf("%d", q)
		}
	}
	return fmt.Sprintf("M(%s)", strings.Join(parts, ","))
}

func (m *Measurement) DiagramSymbols() []string {
	syms := make([]string, len(m.Targets))
	for i := range m.Targets {
		if m.InvertFlag(i) {
			syms[i] = "!M"
		} else {
			syms[i] = "M"
		}
	}
	return syms
}
