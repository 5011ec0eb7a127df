package compare

import (
	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/linalg"
	"github.com/zaqqwerty/Cirq/measure"
	"github.com/zaqqwerty/Cirq/verr"
)

// Synthesize builds the dense unitary of a unitary-only circuit over the
// fixed qubit ordering. Moments multiply in time order; operations within a
// moment act at disjoint qubit positions. Qubits in the ordering that the
// circuit never references contribute identity factors.
func Synthesize(c *circuit.Circuit, order []circuit.Qubit) (*mat.CDense, error) {
	n := len(order)
	pos := make(map[circuit.Qubit]int, n)
	for i, q := range order {
		pos[q] = i
	}
	u := linalg.Eye(1 << n)
	for i, m := range c.Moments {
		for _, op := range m {
			if _, isMeas := op.(*circuit.Measurement); isMeas {
				return nil, verr.Validationf(
					"moment %d contains a measurement; synthesis wants a unitary-only circuit", i)
			}
			gm, err := OperationMatrix(op)
			if err != nil {
				return nil, err
			}
			axes := make([]int, 0, len(op.Qubits()))
			for _, q := range op.Qubits() {
				p, ok := pos[q]
				if !ok {
					return nil, verr.Validationf(
						"qubit %v of operation in moment %d is absent from the basis ordering", q, i)
				}
				axes = append(axes, p)
			}
			if u, err = linalg.ApplyMatrixToMatrix(gm, u, axes, n); err != nil {
				return nil, err
			}
		}
	}
	measure.Global.Add("synthesized_bytes", int64(measure.BytesMatrix(n)))
	return u, nil
}

// OperationMatrix resolves an operation's dense matrix: declared directly, or
// reconstructed from its incremental primitive column by column.
func OperationMatrix(op circuit.Operation) (*mat.CDense, error) {
	switch circuit.CapabilityOf(op) {
	case circuit.CapMatrix, circuit.CapBoth:
		return op.(circuit.MatrixOp).Matrix(), nil
	case circuit.CapApply:
		return ReconstructMatrix(op.(circuit.ApplyOp))
	default:
		return nil, verr.Representationf(
			"operation %v exposes neither a dense matrix nor an incremental apply primitive",
			opLabel(op))
	}
}

// ReconstructMatrix recovers an operation's matrix by applying its
// incremental primitive to each standard basis vector and assembling the
// resulting columns.
func ReconstructMatrix(op circuit.ApplyOp) (*mat.CDense, error) {
	k := len(op.Qubits())
	dim := 1 << k
	axes := make([]int, k)
	for i := range axes {
		axes[i] = i
	}
	cols := make([][]complex128, dim)
	for j := range cols {
		res := op.Apply(circuit.ApplyArgs{
			Target:    linalg.BasisVector(dim, j),
			Buffer:    make([]complex128, dim),
			Axes:      axes,
			NumQubits: k,
		})
		out, ok := res.State()
		if !ok {
			return nil, verr.Representationf(
				"operation %v declines to apply over %d qubits; its matrix cannot be reconstructed",
				opLabel(op), k)
		}
		cols[j] = out
	}
	return linalg.ColumnsToMatrix(cols), nil
}

func opLabel(op circuit.Operation) string {
	if s, ok := op.(interface{ String() string }); ok {
		return s.String()
	}
	return "<unnamed operation>"
}
