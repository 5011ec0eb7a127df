package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zaqqwerty/Cirq/verr"
)

func TestNewRejectsOverlappingMoment(t *testing.T) {
	_, err := New(Moment{PauliX{Target: 0}, PauliZ{Target: 0}})
	require.Error(t, err)
	require.IsType(t, &verr.ValidationError{}, err)

	_, err = New(Moment{CNOT{Control: 0, Target: 1}, Hadamard{Target: 1}})
	require.Error(t, err)
}

func TestNewAcceptsDisjointMoment(t *testing.T) {
	c, err := New(
		Moment{Hadamard{Target: 0}, PauliX{Target: 2}},
		Moment{CNOT{Control: 0, Target: 1}},
	)
	require.NoError(t, err)
	require.Equal(t, []Qubit{0, 1, 2}, c.Qubits())
}

func TestFromOpsOneMomentPerOp(t *testing.T) {
	c := FromOps(Hadamard{Target: 0}, CNOT{Control: 0, Target: 1})
	require.Len(t, c.Moments, 2)
}

func TestCapabilityOf(t *testing.T) {
	cases := []struct {
		op   Operation
		want Capability
	}{
		{Hadamard{Target: 0}, CapMatrix},
		{PauliX{Target: 0}, CapBoth},
		{CZ{A: 0, B: 1}, CapBoth},
		{QFT{Targets: []Qubit{0, 1}}, CapBoth},
		{Measure(0), CapNeither},
	}
	for _, tc := range cases {
		if got := CapabilityOf(tc.op); got != tc.want {
			t.Fatalf("%v: capability %v, want %v", tc.op, got, tc.want)
		}
	}
}

func TestMeasurementInvertFlagPads(t *testing.T) {
	m := MeasureInvert([]Qubit{0, 1, 2}, []bool{true})
	require.True(t, m.InvertFlag(0))
	require.False(t, m.InvertFlag(1))
	require.False(t, m.InvertFlag(2))
	require.Equal(t, "M(!0,1,2)", m.String())
}
