// Package consistency cross-validates an operation's optimized incremental
// state-update primitive against its declared dense matrix, across sampled
// exponents and randomized tensor layouts.
package consistency

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/linalg"
	"github.com/zaqqwerty/Cirq/measure"
	"github.com/zaqqwerty/Cirq/verr"
)

// Options configures a consistency check. The zero value means: infer the
// qubit count, sample exponent 1 only, three randomized layouts per
// exponent, seed 0.
type Options struct {
	// QubitCount pins the operation's qubit count explicitly. Zero means
	// infer it from the declared matrix or the operation's qubit tuple.
	QubitCount int
	// Exponents lists the integer powers to sample. Empty means {1}.
	// Each exponent is allowed its own independent global phase.
	Exponents []int
	// Trials is the number of randomized tensor layouts per exponent.
	// Zero means 3.
	Trials int
	// Seed keys all randomness, making failures reproducible.
	Seed uint64
}

// AssertApplyMatchesMatrix checks that the operation's incremental apply
// primitive agrees with its declared matrix within atol. Trials where the
// primitive answers NotApplicable pass vacuously. An operation with no
// primitive passes vacuously as long as its qubit count is determinable.
func AssertApplyMatchesMatrix(op circuit.Operation, atol float64, opts Options) error {
	var declared *mat.CDense
	if mo, ok := op.(circuit.MatrixOp); ok {
		declared = mo.Matrix()
	}
	k, err := resolveQubitCount(op, declared, opts.QubitCount)
	if err != nil {
		return err
	}
	applier, hasApply := op.(circuit.ApplyOp)
	if !hasApply {
		// Count is known and there is no primitive to cross-check.
		return nil
	}

	exponents := opts.Exponents
	if len(exponents) == 0 {
		exponents = []int{1}
	}
	trials := opts.Trials
	if trials <= 0 {
		trials = 3
	}
	src := linalg.NewSource(opts.Seed)

	for _, e := range exponents {
		applyE, ok, err := raisedApply(op, applier, e)
		if err != nil {
			return err
		}
		if !ok {
			// The raised operation exposes no primitive; vacuous.
			continue
		}
		var matE *mat.CDense
		if declared != nil {
			matE = linalg.MatPow(declared, e)
		}

		var phase complex128
		havePhase := false
		for t := 0; t < trials; t++ {
			extra := src.Intn(3)
			n := k + extra
			perm := src.Perm(n)
			axes := perm[:k]
			state := linalg.RandomSuperposition(1<<n, src)

			target := make([]complex128, len(state))
			copy(target, state)
			res := applyE(circuit.ApplyArgs{
				Target:    target,
				Buffer:    make([]complex128, len(state)),
				Axes:      axes,
				NumQubits: n,
			})
			measure.Global.Add("consistency_trials", 1)
			actual, applied := res.State()
			if !applied {
				continue
			}
			if matE == nil {
				return verr.Representationf(
					"operation %v applies incrementally but declares no matrix to check against", op)
			}
			expected, err := linalg.ApplyMatrixToState(matE, state, axes, n)
			if err != nil {
				return err
			}
			if !havePhase {
				phase, _ = linalg.PhaseFromVec(actual, expected)
				havePhase = true
			}
			dev := linalg.MaxPhasedDeviation(actual, expected, phase)
			if dev > atol {
				return &verr.ComparisonError{
					MaxDeviation: dev,
					Msg: fmt.Sprintf(
						"incremental apply disagrees with the declared matrix at exponent %d (atol=%g)\nmax deviation: %g\nlayout: %d register qubits, operation on axes %v\ndeclared matrix^%d:\n%s",
						e, atol, dev, n, axes, e, linalg.Format(matE)),
				}
			}
		}
	}
	return nil
}

// resolveQubitCount determines the operation's qubit count: explicit option
// first, then the declared matrix dimension, then the operation's qubit
// tuple. An explicit count conflicting with the declared matrix is a hard
// error; a count that cannot be determined at all is distinct from any
// ordinary mismatch.
func resolveQubitCount(op circuit.Operation, declared *mat.CDense, explicit int) (int, error) {
	var fromMatrix int
	if declared != nil {
		r, c := declared.Dims()
		if r != c || !linalg.IsPowerOfTwo(r) {
			return 0, verr.Validationf(
				"declared matrix is %dx%d; a unitary over qubits must be square with power-of-two dimension", r, c)
		}
		fromMatrix = linalg.Log2(r)
	}
	if explicit > 0 {
		if declared != nil && fromMatrix != explicit {
			return 0, verr.Validationf(
				"explicit qubit count %d conflicts with declared matrix over %d qubits",
				explicit, fromMatrix)
		}
		return explicit, nil
	}
	if declared != nil {
		return fromMatrix, nil
	}
	if qs := op.Qubits(); len(qs) > 0 {
		return len(qs), nil
	}
	return 0, verr.Representationf(
		"qubit count is unknowable: no explicit count, no declared matrix, and no qubit tuple")
}

// raisedApply produces the incremental primitive of op raised to exponent e.
// Operations implementing PowOp are raised through it; otherwise positive
// exponents are realized by repeated application.
func raisedApply(op circuit.Operation, applier circuit.ApplyOp, e int) (func(circuit.ApplyArgs) circuit.ApplyResult, bool, error) {
	if e == 1 {
		return applier.Apply, true, nil
	}
	if p, ok := op.(circuit.PowOp); ok {
		raised := p.Pow(e)
		ra, ok := raised.(circuit.ApplyOp)
		if !ok {
			return nil, false, nil
		}
		return ra.Apply, true, nil
	}
	if e < 0 {
		return nil, false, verr.Validationf(
			"exponent %d needs the operation to implement Pow", e)
	}
	return func(args circuit.ApplyArgs) circuit.ApplyResult {
		state := args.Target
		for i := 0; i < e; i++ {
			res := applier.Apply(circuit.ApplyArgs{
				Target:    state,
				Buffer:    args.Buffer,
				Axes:      args.Axes,
				NumQubits: args.NumQubits,
			})
			out, applied := res.State()
			if !applied {
				return circuit.NotApplicable()
			}
			state = out
		}
		return circuit.Applied(state)
	}, true, nil
}
