package consistency

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/verr"
)

// sameEffect declares X and applies X.
type sameEffect struct{}

func (sameEffect) Qubits() []circuit.Qubit { return []circuit.Qubit{0} }
func (sameEffect) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}
func (sameEffect) Apply(args circuit.ApplyArgs) circuit.ApplyResult {
	return circuit.PauliX{Target: 0}.Apply(args)
}

// differentEffect declares Z but applies X.
type differentEffect struct{}

func (differentEffect) Qubits() []circuit.Qubit { return []circuit.Qubit{0} }
func (differentEffect) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
}
func (differentEffect) Apply(args circuit.ApplyArgs) circuit.ApplyResult {
	return circuit.PauliX{Target: 0}.Apply(args)
}

// staleBuffer declares the identity but returns its untouched scratch buffer.
type staleBuffer struct{}

func (staleBuffer) Qubits() []circuit.Qubit { return []circuit.Qubit{0} }
func (staleBuffer) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
}
func (staleBuffer) Apply(args circuit.ApplyArgs) circuit.ApplyResult {
	return circuit.Applied(args.Buffer)
}

// effectWithoutUnitary applies X but declares no matrix.
type effectWithoutUnitary struct{}

func (effectWithoutUnitary) Qubits() []circuit.Qubit { return []circuit.Qubit{0} }
func (effectWithoutUnitary) Apply(args circuit.ApplyArgs) circuit.ApplyResult {
	return circuit.PauliX{Target: 0}.Apply(args)
}

// noEffect declines every layout and declares nothing.
type noEffect struct{}

func (noEffect) Qubits() []circuit.Qubit { return []circuit.Qubit{0} }
func (noEffect) Apply(circuit.ApplyArgs) circuit.ApplyResult {
	return circuit.NotApplicable()
}

// unknownCount has no matrix, no qubit tuple and no usable primitive.
type unknownCount struct{}

func (unknownCount) Qubits() []circuit.Qubit { return nil }
func (unknownCount) Apply(circuit.ApplyArgs) circuit.ApplyResult {
	return circuit.NotApplicable()
}

// stuckPow raises the matrix correctly but its primitive ignores the
// exponent: S at every power.
type stuckPow struct{}

func (stuckPow) Qubits() []circuit.Qubit { return []circuit.Qubit{0} }
func (stuckPow) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1i})
}
func (g stuckPow) Apply(args circuit.ApplyArgs) circuit.ApplyResult {
	t := args.Target
	bit := 1 << (args.NumQubits - 1 - args.Axes[0])
	for i := range t {
		if i&bit != 0 {
			t[i] *= 1i
		}
	}
	return circuit.Applied(t)
}
func (g stuckPow) Pow(e int) circuit.Operation { return g }

func TestSameEffectPasses(t *testing.T) {
	if err := AssertApplyMatchesMatrix(sameEffect{}, 1e-9, Options{Seed: 1}); err != nil {
		t.Fatal(err)
	}
}

func TestDifferentEffectFails(t *testing.T) {
	err := AssertApplyMatchesMatrix(differentEffect{}, 1e-8, Options{Seed: 1})
	require.Error(t, err)
	require.IsType(t, &verr.ComparisonError{}, err)
}

func TestStaleBufferFails(t *testing.T) {
	err := AssertApplyMatchesMatrix(staleBuffer{}, 1e-8, Options{Seed: 1})
	require.Error(t, err)
	require.IsType(t, &verr.ComparisonError{}, err)
}

func TestApplyWithoutMatrixFails(t *testing.T) {
	err := AssertApplyMatchesMatrix(effectWithoutUnitary{}, 1e-8, Options{Seed: 1})
	require.Error(t, err)
	require.IsType(t, &verr.RepresentationError{}, err)
}

func TestDecliningEffectPassesVacuously(t *testing.T) {
	if err := AssertApplyMatchesMatrix(noEffect{}, 0, Options{Seed: 1}); err != nil {
		t.Fatal(err)
	}
}

func TestUnknowableQubitCount(t *testing.T) {
	err := AssertApplyMatchesMatrix(unknownCount{}, 0, Options{Seed: 1})
	require.Error(t, err)
	require.IsType(t, &verr.RepresentationError{}, err)

	// An explicit count makes the same operation checkable (and vacuous).
	if err := AssertApplyMatchesMatrix(unknownCount{}, 0, Options{QubitCount: 1, Seed: 1}); err != nil {
		t.Fatal(err)
	}
}

func TestExplicitCountConflicts(t *testing.T) {
	err := AssertApplyMatchesMatrix(sameEffect{}, 0, Options{QubitCount: 2, Seed: 1})
	require.Error(t, err)
	require.IsType(t, &verr.ValidationError{}, err)
}

func TestStuckPowFailsAtHigherExponents(t *testing.T) {
	// Consistent at exponent 1.
	if err := AssertApplyMatchesMatrix(stuckPow{}, 1e-9, Options{Seed: 1}); err != nil {
		t.Fatal(err)
	}
	err := AssertApplyMatchesMatrix(stuckPow{}, 1e-8, Options{Exponents: []int{1, 2}, Trials: 4, Seed: 1})
	require.Error(t, err)
	require.IsType(t, &verr.ComparisonError{}, err)
}

// TestStandardGates runs the checker over the whole standard gate set.
func TestStandardGates(t *testing.T) {
	ops := []circuit.Operation{
		circuit.Identity{Target: 0},
		circuit.PauliX{Target: 0},
		circuit.PauliY{Target: 0},
		circuit.PauliZ{Target: 0},
		circuit.Hadamard{Target: 0},
		circuit.RotateZ{Target: 0, Theta: 0.7},
		circuit.GlobalPhase{Target: 0, Theta: 0.2},
		circuit.CZ{A: 0, B: 1},
		circuit.CNOT{Control: 0, Target: 1},
		circuit.Swap{A: 0, B: 1},
		circuit.QFT{Targets: []circuit.Qubit{0, 1}},
	}
	for _, op := range ops {
		opts := Options{Exponents: []int{1, 2, 3}, Trials: 3, Seed: 5}
		if err := AssertApplyMatchesMatrix(op, 1e-9, opts); err != nil {
			t.Fatalf("%v: %v", op, err)
		}
	}
}

// TestRotationInverseExponent exercises a negative exponent through Pow.
func TestRotationInverseExponent(t *testing.T) {
	op := circuit.RotateZ{Target: 0, Theta: 0.9}
	opts := Options{Exponents: []int{-1, 1}, Seed: 2}
	if err := AssertApplyMatchesMatrix(op, 1e-9, opts); err != nil {
		t.Fatal(err)
	}
}

func TestSeedReproducibility(t *testing.T) {
	a := AssertApplyMatchesMatrix(differentEffect{}, 1e-8, Options{Seed: 9})
	b := AssertApplyMatchesMatrix(differentEffect{}, 1e-8, Options{Seed: 9})
	require.Error(t, a)
	require.Error(t, b)
	require.Equal(t, a.Error(), b.Error())
}
