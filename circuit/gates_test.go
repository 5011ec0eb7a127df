package circuit

import (
	"testing"

	"github.com/zaqqwerty/Cirq/linalg"
)

// TestGateMatricesAreUnitary multiplies each gate matrix by its conjugate
// transpose and checks the result against the identity.
func TestGateMatricesAreUnitary(t *testing.T) {
	ops := []MatrixOp{
		Identity{Target: 0},
		PauliX{Target: 0},
		PauliY{Target: 0},
		PauliZ{Target: 0},
		Hadamard{Target: 0},
		RotateZ{Target: 0, Theta: 1.1},
		GlobalPhase{Target: 0, Theta: 0.4},
		CZ{A: 0, B: 1},
		CNOT{Control: 0, Target: 1},
		Swap{A: 0, B: 1},
		QFT{Targets: []Qubit{0, 1, 2}},
	}
	for _, op := range ops {
		m := op.Matrix()
		dim, _ := m.Dims()
		prod := linalg.Mul(m, linalg.ConjTranspose(m))
		if d := linalg.MaxAbsDiff(prod, linalg.Eye(dim)); d > 1e-12 {
			t.Fatalf("%v: U U† deviates from identity by %g", op, d)
		}
	}
}

func TestPauliPowCollapses(t *testing.T) {
	for _, op := range []PowOp{PauliX{Target: 0}, PauliY{Target: 0}, PauliZ{Target: 0}} {
		if _, ok := op.Pow(2).(Identity); !ok {
			t.Fatalf("%v squared should be the identity, got %v", op, op.Pow(2))
		}
		if op.Pow(3) != op.(Operation) {
			t.Fatalf("%v cubed should be itself", op)
		}
	}
}

func TestRotateZPowScalesAngle(t *testing.T) {
	g := RotateZ{Target: 0, Theta: 0.3}
	p := g.Pow(-2).(RotateZ)
	if p.Theta != -0.6 {
		t.Fatalf("Rz(0.3)^-2 has θ=%g, want -0.6", p.Theta)
	}
}

func TestDenseValidatesDimensions(t *testing.T) {
	if _, err := NewDense("bad", linalg.Eye(4), 0); err == nil {
		t.Fatal("4x4 matrix over one qubit should be rejected")
	}
	g, err := NewDense("ok", linalg.Eye(4), 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Qubits()) != 2 {
		t.Fatalf("dense gate qubits %v", g.Qubits())
	}
}
