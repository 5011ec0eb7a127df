package circuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/linalg"
)

// The standard gate set. Gates with cheap bit-mask state updates implement
// ApplyOp alongside their dense matrix; others are matrix-only. The mix keeps
// every capability combination represented.

// Identity is the single-qubit identity gate.
type Identity struct{ Target Qubit }

func (g Identity) Qubits() []Qubit { return []Qubit{g.Target} }
func (g Identity) Matrix() *mat.CDense {
	return linalg.Eye(2)
}
func (g Identity) Pow(e int) Operation      { return g }
func (g Identity) String() string           { return fmt.Sprintf("I(%d)", g.Target) }
func (g Identity) DiagramSymbols() []string { return []string{"I"} }

// PauliX is the bit-flip gate.
type PauliX struct{ Target Qubit }

func (g PauliX) Qubits() []Qubit { return []Qubit{g.Target} }
func (g PauliX) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}

// Apply swaps the amplitude pairs that differ only in the target bit.
func (g PauliX) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != 1 {
		return NotApplicable()
	}
	bit := 1 << (args.NumQubits - 1 - args.Axes[0])
	t := args.Target
	for i := range t {
		if i&bit == 0 {
			t[i], t[i|bit] = t[i|bit], t[i]
		}
	}
	return Applied(t)
}

func (g PauliX) Pow(e int) Operation {
	if e%2 == 0 {
		return Identity{Target: g.Target}
	}
	return g
}
func (g PauliX) String() string           { return fmt.Sprintf("X(%d)", g.Target) }
func (g PauliX) DiagramSymbols() []string { return []string{"X"} }

// PauliY is the Y gate.
type PauliY struct{ Target Qubit }

func (g PauliY) Qubits() []Qubit { return []Qubit{g.Target} }
func (g PauliY) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})
}
func (g PauliY) Pow(e int) Operation {
	if e%2 == 0 {
		return Identity{Target: g.Target}
	}
	return g
}
func (g PauliY) String() string           { return fmt.Sprintf("Y(%d)", g.Target) }
func (g PauliY) DiagramSymbols() []string { return []string{"Y"} }

// PauliZ is the phase-flip gate.
type PauliZ struct{ Target Qubit }

func (g PauliZ) Qubits() []Qubit { return []Qubit{g.Target} }
func (g PauliZ) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
}

// Apply negates the amplitudes whose target bit is set.
func (g PauliZ) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != 1 {
		return NotApplicable()
	}
	bit := 1 << (args.NumQubits - 1 - args.Axes[0])
	t := args.Target
	for i := range t {
		if i&bit != 0 {
			t[i] = -t[i]
		}
	}
	return Applied(t)
}

func (g PauliZ) Pow(e int) Operation {
	if e%2 == 0 {
		return Identity{Target: g.Target}
	}
	return g
}
func (g PauliZ) String() string           { return fmt.Sprintf("Z(%d)", g.Target) }
func (g PauliZ) DiagramSymbols() []string { return []string{"Z"} }

// Hadamard is the H gate. Matrix-only.
type Hadamard struct{ Target Qubit }

func (g Hadamard) Qubits() []Qubit { return []Qubit{g.Target} }
func (g Hadamard) Matrix() *mat.CDense {
	s := complex(1/math.Sqrt2, 0)
	return mat.NewCDense(2, 2, []complex128{s, s, s, -s})
}
func (g Hadamard) String() string           { return fmt.Sprintf("H(%d)", g.Target) }
func (g Hadamard) DiagramSymbols() []string { return []string{"H"} }

// RotateZ rotates the target's |1> amplitude by e^{iθ}.
type RotateZ struct {
	Target Qubit
	Theta  float64
}

func (g RotateZ) Qubits() []Qubit { return []Qubit{g.Target} }
func (g RotateZ) Matrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, cmplx.Rect(1, g.Theta)})
}

// Apply multiplies the |1> amplitudes by the rotation phase.
func (g RotateZ) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != 1 {
		return NotApplicable()
	}
	bit := 1 << (args.NumQubits - 1 - args.Axes[0])
	phase := cmplx.Rect(1, g.Theta)
	t := args.Target
	for i := range t {
		if i&bit != 0 {
			t[i] *= phase
		}
	}
	return Applied(t)
}

func (g RotateZ) Pow(e int) Operation {
	return RotateZ{Target: g.Target, Theta: g.Theta * float64(e)}
}
func (g RotateZ) String() string           { return fmt.Sprintf("Rz(%d, θ=%g)", g.Target, g.Theta) }
func (g RotateZ) DiagramSymbols() []string { return []string{"Rz"} }

// GlobalPhase multiplies the whole state by e^{iθ}. It is attached to a qubit
// only so it can live in a moment; the effect is register-wide.
type GlobalPhase struct {
	Target Qubit
	Theta  float64
}

func (g GlobalPhase) Qubits() []Qubit { return []Qubit{g.Target} }
func (g GlobalPhase) Matrix() *mat.CDense {
	p := cmplx.Rect(1, g.Theta)
	return mat.NewCDense(2, 2, []complex128{p, 0, 0, p})
}
func (g GlobalPhase) Pow(e int) Operation {
	return GlobalPhase{Target: g.Target, Theta: g.Theta * float64(e)}
}
func (g GlobalPhase) String() string           { return fmt.Sprintf("Ph(%d, θ=%g)", g.Target, g.Theta) }
func (g GlobalPhase) DiagramSymbols() []string { return []string{"Ph"} }

// CZ is the controlled-Z gate.
type CZ struct{ A, B Qubit }

func (g CZ) Qubits() []Qubit { return []Qubit{g.A, g.B} }
func (g CZ) Matrix() *mat.CDense {
	m := linalg.Eye(4)
	m.Set(3, 3, -1)
	return m
}

// Apply negates the amplitudes with both qubit bits set.
func (g CZ) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != 2 {
		return NotApplicable()
	}
	aBit := 1 << (args.NumQubits - 1 - args.Axes[0])
	bBit := 1 << (args.NumQubits - 1 - args.Axes[1])
	t := args.Target
	for i := range t {
		if i&aBit != 0 && i&bBit != 0 {
			t[i] = -t[i]
		}
	}
	return Applied(t)
}

func (g CZ) String() string           { return fmt.Sprintf("CZ(%d,%d)", g.A, g.B) }
func (g CZ) DiagramSymbols() []string { return []string{"@", "@"} }

// CNOT is the controlled-X gate, control first.
type CNOT struct{ Control, Target Qubit }

func (g CNOT) Qubits() []Qubit { return []Qubit{g.Control, g.Target} }
func (g CNOT) Matrix() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

// Apply swaps the target-bit amplitude pairs where the control bit is set.
func (g CNOT) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != 2 {
		return NotApplicable()
	}
	cBit := 1 << (args.NumQubits - 1 - args.Axes[0])
	tBit := 1 << (args.NumQubits - 1 - args.Axes[1])
	t := args.Target
	for i := range t {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			t[i], t[j] = t[j], t[i]
		}
	}
	return Applied(t)
}

func (g CNOT) String() string           { return fmt.Sprintf("CNOT(%d,%d)", g.Control, g.Target) }
func (g CNOT) DiagramSymbols() []string { return []string{"@", "X"} }

// Swap exchanges two qubits.
type Swap struct{ A, B Qubit }

func (g Swap) Qubits() []Qubit { return []Qubit{g.A, g.B} }
func (g Swap) Matrix() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
}

// Apply exchanges the amplitudes of the |01> / |10> index pairs.
func (g Swap) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != 2 {
		return NotApplicable()
	}
	aBit := 1 << (args.NumQubits - 1 - args.Axes[0])
	bBit := 1 << (args.NumQubits - 1 - args.Axes[1])
	t := args.Target
	for i := range t {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			t[i], t[j] = t[j], t[i]
		}
	}
	return Applied(t)
}

func (g Swap) String() string           { return fmt.Sprintf("SWAP(%d,%d)", g.A, g.B) }
func (g Swap) DiagramSymbols() []string { return []string{"×", "×"} }

// Dense is an arbitrary unitary gate given by an explicit matrix over its
// qubits, most significant bit first.
type Dense struct {
	Targets []Qubit
	M       *mat.CDense
	Name    string
}

// NewDense validates that m is square with dimension 2^len(targets).
func NewDense(name string, m *mat.CDense, targets ...Qubit) (Dense, error) {
	r, c := m.Dims()
	if r != c || r != 1<<len(targets) {
		return Dense{}, fmt.Errorf(
			"dense gate %q: matrix is %dx%d, want %dx%d for %d qubits",
			name, r, c, 1<<len(targets), 1<<len(targets), len(targets))
	}
	return Dense{Targets: targets, M: m, Name: name}, nil
}

func (g Dense) Qubits() []Qubit     { return g.Targets }
func (g Dense) Matrix() *mat.CDense { return g.M }
func (g Dense) Pow(e int) Operation {
	return Dense{Targets: g.Targets, M: linalg.MatPow(g.M, e), Name: g.Name}
}
func (g Dense) String() string {
	return fmt.Sprintf("%s%v", g.name(), g.Targets)
}
func (g Dense) DiagramSymbols() []string {
	syms := make([]string, len(g.Targets))
	for i := range syms {
		syms[i] = fmt.Sprintf("%s[%d]", g.name(), i)
	}
	return syms
}

func (g Dense) name() string {
	if g.Name == "" {
		return "U"
	}
	return g.Name
}

// QFT is the quantum Fourier transform over its qubits. Its incremental
// primitive reuses the FFT kernel and therefore only handles the layout where
// the gate covers the full register in ascending axis order; any other layout
// is declined with NotApplicable.
type QFT struct{ Targets []Qubit }

func (g QFT) Qubits() []Qubit { return g.Targets }

func (g QFT) Matrix() *mat.CDense {
	k := len(g.Targets)
	dim := 1 << k
	m := mat.NewCDense(dim, dim, nil)
	scale := 1 / math.Sqrt(float64(dim))
	for j := 0; j < dim; j++ {
		for l := 0; l < dim; l++ {
			angle := 2 * math.Pi * float64(j*l) / float64(dim)
			m.Set(j, l, cmplx.Rect(scale, angle))
		}
	}
	return m
}

func (g QFT) Apply(args ApplyArgs) ApplyResult {
	if len(args.Axes) != args.NumQubits {
		return NotApplicable()
	}
	for i, a := range args.Axes {
		if a != i {
			return NotApplicable()
		}
	}
	return Applied(linalg.QFTTransform(args.Target, len(args.Target)))
}

func (g QFT) String() string { return fmt.Sprintf("QFT%v", g.Targets) }
func (g QFT) DiagramSymbols() []string {
	syms := make([]string, len(g.Targets))
	for i := range syms {
		syms[i] = fmt.Sprintf("QFT[%d]", i)
	}
	return syms
}
