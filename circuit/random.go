package circuit

import (
	"math"

	"github.com/zaqqwerty/Cirq/linalg"
)

// Random generates a random unitary-only circuit over the given qubits, with
// nMoments moments and roughly density fraction of the qubits busy per
// moment. All randomness comes from the explicit source, so a seed pins the
// circuit exactly.
func Random(src *linalg.Source, qubits []Qubit, nMoments int, density float64) *Circuit {
	moments := make([]Moment, 0, nMoments)
	for i := 0; i < nMoments; i++ {
		var m Moment
		free := append([]Qubit(nil), qubits...)
		for len(free) > 0 {
			if src.Float64() >= density {
				free = free[1:]
				continue
			}
			q := free[0]
			// A two-qubit gate needs a free partner.
			if len(free) > 1 && src.Float64() < 0.3 {
				j := 1 + src.Intn(len(free)-1)
				p := free[j]
				if src.Intn(2) == 0 {
					m = append(m, CZ{A: q, B: p})
				} else {
					m = append(m, CNOT{Control: q, Target: p})
				}
				free = append(free[1:j], free[j+1:]...)
				continue
			}
			m = append(m, randomSingleQubitGate(src, q))
			free = free[1:]
		}
		moments = append(moments, m)
	}
	return MustNew(moments...)
}

func randomSingleQubitGate(src *linalg.Source, q Qubit) Operation {
	switch src.Intn(5) {
	case 0:
		return PauliX{Target: q}
	case 1:
		return PauliY{Target: q}
	case 2:
		return PauliZ{Target: q}
	case 3:
		return Hadamard{Target: q}
	default:
		return RotateZ{Target: q, Theta: 2 * math.Pi * src.Float64()}
	}
}
