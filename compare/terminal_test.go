package compare

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/verr"
)

func TestSplitMergesMeasurementsAcrossMoments(t *testing.T) {
	c := circuit.MustNew(
		circuit.Moment{circuit.Hadamard{Target: 0}, circuit.Measure(2)},
		circuit.Moment{circuit.MeasureInvert([]circuit.Qubit{0, 1}, []bool{true, false})},
	)
	prefix, meas, err := SplitTerminalMeasurements(c)
	require.NoError(t, err)
	require.Equal(t, []circuit.Qubit{0, 1, 2}, meas.Qubits())
	require.True(t, meas[0])
	require.False(t, meas[1])
	require.False(t, meas[2])

	// The prefix keeps only the unitary operations.
	require.Len(t, prefix.Moments, 1)
	require.Len(t, prefix.Moments[0], 1)
}

func TestSplitRejectsTouchAfterMeasure(t *testing.T) {
	cases := []*circuit.Circuit{
		circuit.MustNew(
			circuit.Moment{circuit.Measure(0)},
			circuit.Moment{circuit.PauliX{Target: 0}},
		),
		circuit.MustNew(
			circuit.Moment{circuit.Measure(0)},
			circuit.Moment{circuit.Measure(0)},
		),
		circuit.MustNew(
			circuit.Moment{circuit.Measure(0)},
			circuit.Moment{circuit.CNOT{Control: 0, Target: 1}},
		),
	}
	for i, c := range cases {
		_, _, err := SplitTerminalMeasurements(c)
		require.Error(t, err, "case %d", i)
		require.IsType(t, &verr.ValidationError{}, err, "case %d", i)
	}
}

func TestSplitNoMeasurements(t *testing.T) {
	c := circuit.FromOps(circuit.Hadamard{Target: 0})
	prefix, meas, err := SplitTerminalMeasurements(c)
	require.NoError(t, err)
	require.Empty(t, meas)
	require.Len(t, prefix.Moments, 1)
}

func TestUnionQubitsSorted(t *testing.T) {
	a := circuit.FromOps(circuit.PauliX{Target: 3})
	b := circuit.FromOps(circuit.CNOT{Control: 1, Target: 0})
	require.Equal(t, []circuit.Qubit{0, 1, 3}, UnionQubits(a, b))
}

func TestSynthesizeRejectsMeasurement(t *testing.T) {
	c := circuit.FromOps(circuit.Measure(0))
	_, err := Synthesize(c, []circuit.Qubit{0})
	require.Error(t, err)
	require.IsType(t, &verr.ValidationError{}, err)
}

func TestSameQubitsIgnoresInvert(t *testing.T) {
	a := MeasurementSet{0: true, 1: false}
	b := MeasurementSet{1: true, 0: false}
	require.True(t, a.SameQubits(b))
	require.False(t, a.SameQubits(MeasurementSet{0: true}))
}
