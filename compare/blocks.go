package compare

import (
	"fmt"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/linalg"
	"github.com/zaqqwerty/Cirq/measure"
	"github.com/zaqqwerty/Cirq/verr"
)

// AssertEquivalent checks that two circuits with terminal measurements are
// observably indistinguishable under any computational-basis readout, within
// absolute tolerance atol. It returns nil on success; on mismatch it returns
// a *verr.ComparisonError naming the failing measurement block and the
// maximum observed deviation. Structural problems surface as
// *verr.ValidationError or *verr.RepresentationError.
//
// Differing measured-qubit sets are an unconditional inequality, never
// absorbed by tolerance or phase.
func AssertEquivalent(actual, reference *circuit.Circuit, atol float64) error {
	prefixA, measA, err := SplitTerminalMeasurements(actual)
	if err != nil {
		return err
	}
	prefixB, measB, err := SplitTerminalMeasurements(reference)
	if err != nil {
		return err
	}
	if !measA.SameQubits(measB) {
		return verr.Comparisonf(
			"circuits are not equivalent: they measure different qubit sets\nactual measures:    %v\nreference measures: %v\n\nactual circuit:\n%s\nreference circuit:\n%s",
			measA.Qubits(), measB.Qubits(),
			circuit.Render(actual), circuit.Render(reference))
	}

	order := UnionQubits(actual, reference)
	ua, err := Synthesize(prefixA, order)
	if err != nil {
		return err
	}
	ub, err := Synthesize(prefixB, order)
	if err != nil {
		return err
	}

	worst, failed := compareBlocks(ua, ub, order, measA, measB, atol)
	if failed == nil {
		return nil
	}
	return &verr.ComparisonError{
		MaxDeviation: failed.deviation,
		Msg: fmt.Sprintf(
			"circuits are not equivalent up to terminal measurements (atol=%g)\nfirst failing measurement block: outcome %s on qubits %v (max deviation %g)\nworst deviation over all blocks: %g\n\nactual circuit:\n%s\nreference circuit:\n%s\nactual unitary:\n%s\nreference unitary:\n%s",
			atol, failed.outcomeLabel(), measA.Qubits(), failed.deviation, worst,
			circuit.Render(actual), circuit.Render(reference),
			linalg.Format(ua), linalg.Format(ub)),
	}
}

// Equivalent is the boolean form of AssertEquivalent. Comparison failures
// yield false with no error; structural failures are returned as errors.
func Equivalent(actual, reference *circuit.Circuit, atol float64) (bool, error) {
	err := AssertEquivalent(actual, reference, atol)
	if err == nil {
		return true, nil
	}
	if _, isCmp := err.(*verr.ComparisonError); isCmp {
		return false, nil
	}
	return false, err
}

// MaxDeviation runs the comparison pipeline and returns the worst per-block
// deviation after factoring out block phases. Both circuits must measure the
// same qubit set.
func MaxDeviation(actual, reference *circuit.Circuit) (float64, error) {
	prefixA, measA, err := SplitTerminalMeasurements(actual)
	if err != nil {
		return 0, err
	}
	prefixB, measB, err := SplitTerminalMeasurements(reference)
	if err != nil {
		return 0, err
	}
	if !measA.SameQubits(measB) {
		return 0, verr.Validationf("circuits measure different qubit sets: %v vs %v",
			measA.Qubits(), measB.Qubits())
	}
	order := UnionQubits(actual, reference)
	ua, err := Synthesize(prefixA, order)
	if err != nil {
		return 0, err
	}
	ub, err := Synthesize(prefixB, order)
	if err != nil {
		return 0, err
	}
	worst, _ := compareBlocks(ua, ub, order, measA, measB, -1)
	return worst, nil
}

// blockFailure describes one measurement block beyond tolerance.
type blockFailure struct {
	outcome   int
	nBits     int
	deviation float64
}

func (b *blockFailure) outcomeLabel() string {
	if b.nBits == 0 {
		return "<global>"
	}
	return fmt.Sprintf("%0*b", b.nBits, b.outcome)
}

// compareBlocks partitions the rows of both unitaries into measurement
// blocks keyed by the physical outcome pattern on the measured qubits (basis
// bits XOR invert flags) and tests each block for equality up to one
// unit-modulus phase. It returns the worst deviation over all blocks and the
// lowest-outcome failing block, nil if every block is within atol. A negative
// atol collects deviations without flagging failures.
//
// Blocks are independent, so they are checked concurrently; the verdict is a
// plain AND over blocks and carries no ordering obligation.
func compareBlocks(ua, ub *mat.CDense, order []circuit.Qubit, measA, measB MeasurementSet, atol float64) (float64, *blockFailure) {
	n := len(order)
	dim := 1 << n
	mqs := measA.Qubits()
	m := len(mqs)

	// Row-bit mask per measured qubit, and the row-space embedding of the
	// invert masks. Rows of the actual matrix pair with rows of the
	// reference matrix that differ exactly where the invert flags differ.
	maskBits := make([]int, m)
	invA, invB := 0, 0
	for j, q := range mqs {
		p := 0
		for i, oq := range order {
			if oq == q {
				p = i
				break
			}
		}
		maskBits[j] = 1 << (n - 1 - p)
		if measA[q] {
			invA |= maskBits[j]
		}
		if measB[q] {
			invB |= maskBits[j]
		}
	}
	partnerDiff := invA ^ invB

	// Group rows by physical outcome under the actual circuit's flags.
	blocks := make([][]int, 1<<m)
	for r := 0; r < dim; r++ {
		o := 0
		for j, bit := range maskBits {
			if (r^invA)&bit != 0 {
				o |= 1 << (m - 1 - j)
			}
		}
		blocks[o] = append(blocks[o], r)
	}
	measure.Global.Add("comparator_blocks", int64(len(blocks)))

	devs := make([]float64, len(blocks))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for o, rows := range blocks {
		o, rows := o, rows
		g.Go(func() error {
			av := make([]complex128, 0, len(rows)*dim)
			rv := make([]complex128, 0, len(rows)*dim)
			for _, r := range rows {
				for c := 0; c < dim; c++ {
					av = append(av, ua.At(r, c))
					rv = append(rv, ub.At(r^partnerDiff, c))
				}
			}
			phase, detected := linalg.PhaseFromVec(av, rv)
			if !detected {
				max := 0.0
				for _, x := range av {
					if d := cmplx.Abs(x); d > max {
						max = d
					}
				}
				devs[o] = max
				return nil
			}
			devs[o] = linalg.MaxPhasedDeviation(av, rv, phase)
			return nil
		})
	}
	// Workers only write disjoint slots and never fail.
	_ = g.Wait()

	worst := 0.0
	var failed *blockFailure
	for o, d := range devs {
		if d > worst {
			worst = d
		}
		if atol >= 0 && d > atol && failed == nil {
			failed = &blockFailure{outcome: o, nBits: m, deviation: d}
		}
	}
	return worst, failed
}
