// Package circuit models quantum circuits as ordered sequences of moments of
// simultaneous operations, together with a standard gate set, measurement
// operations with invert masks, and a text-diagram renderer. The verification
// oracle treats these values as immutable inputs.
package circuit

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/verr"
)

// Qubit is an opaque, totally ordered qubit identity, printed as its line
// number in diagrams.
type Qubit int

// Operation acts on an ordered tuple of qubits. Concrete operations may
// additionally implement MatrixOp, ApplyOp or PowOp; capabilities are probed
// once through CapabilityOf rather than ad hoc at call sites.
type Operation interface {
	Qubits() []Qubit
}

// MatrixOp exposes a dense 2^k x 2^k unitary matrix over the operation's k
// qubits, most significant bit first.
type MatrixOp interface {
	Operation
	Matrix() *mat.CDense
}

// ApplyOp exposes an optimized incremental state-update primitive. The
// primitive may decline unsupported layouts by returning NotApplicable.
type ApplyOp interface {
	Operation
	Apply(args ApplyArgs) ApplyResult
}

// PowOp exposes exponentiation of the operation by an integer power.
type PowOp interface {
	Operation
	Pow(e int) Operation
}

// ApplyArgs carries the state tensor an incremental primitive acts on.
type ApplyArgs struct {
	// Target is the state vector of length 2^NumQubits. Primitives may
	// mutate it in place.
	Target []complex128
	// Buffer is scratch space of the same length as Target. A primitive
	// may write its result here and return it instead of Target.
	Buffer []complex128
	// Axes gives, per operation qubit, the register axis it occupies.
	// Axis a owns bit (NumQubits-1-a) of the basis index.
	Axes []int
	// NumQubits is the register size n; len(Target) == 1<<n.
	NumQubits int
}

// ApplyResult is the tagged outcome of an incremental primitive: either the
// updated state tensor, or an explicit declination.
type ApplyResult struct {
	state   []complex128
	applied bool
}

// Applied wraps the updated state tensor.
func Applied(state []complex128) ApplyResult {
	return ApplyResult{state: state, applied: true}
}

// NotApplicable reports that the primitive declines to handle this layout.
// It is a legitimate partial-implementation response, not a failure.
func NotApplicable() ApplyResult {
	return ApplyResult{}
}

// State returns the updated tensor, or false if the primitive declined.
func (r ApplyResult) State() ([]complex128, bool) {
	return r.state, r.applied
}

// Capability classifies which representations an operation exposes.
type Capability int

const (
	CapNeither Capability = iota
	CapMatrix
	CapApply
	CapBoth
)

// CapabilityOf resolves an operation's representation capabilities once.
func CapabilityOf(op Operation) Capability {
	_, hasMatrix := op.(MatrixOp)
	_, hasApply := op.(ApplyOp)
	switch {
	case hasMatrix && hasApply:
		return CapBoth
	case hasMatrix:
		return CapMatrix
	case hasApply:
		return CapApply
	default:
		return CapNeither
	}
}

// Moment is a set of operations acting on pairwise-disjoint qubits,
// conceptually simultaneous.
type Moment []Operation

// Circuit is an ordered sequence of moments.
type Circuit struct {
	Moments []Moment
}

// New builds a circuit, validating that each moment's operations act on
// pairwise-disjoint qubits.
func New(moments ...Moment) (*Circuit, error) {
	for i, m := range moments {
		seen := map[Qubit]bool{}
		for _, op := range m {
			for _, q := range op.Qubits() {
				if seen[q] {
					return nil, verr.Validationf(
						"moment %d touches qubit %v more than once", i, q)
				}
				seen[q] = true
			}
		}
	}
	return &Circuit{Moments: moments}, nil
}

// MustNew is New for statically known-valid circuits; it panics on overlap.
func MustNew(moments ...Moment) *Circuit {
	c, err := New(moments...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromOps builds a circuit with one moment per operation.
func FromOps(ops ...Operation) *Circuit {
	moments := make([]Moment, len(ops))
	for i, op := range ops {
		moments[i] = Moment{op}
	}
	return &Circuit{Moments: moments}
}

// Qubits returns the sorted set of qubits referenced by the circuit.
func (c *Circuit) Qubits() []Qubit {
	seen := map[Qubit]bool{}
	for _, m := range c.Moments {
		for _, op := range m {
			for _, q := range op.Qubits() {
				seen[q] = true
			}
		}
	}
	out := make([]Qubit, 0, len(seen))
	for q := range seen {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
