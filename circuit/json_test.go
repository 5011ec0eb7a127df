package circuit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	c := MustNew(
		Moment{Hadamard{Target: 0}, RotateZ{Target: 1, Theta: 0.25}},
		Moment{CNOT{Control: 0, Target: 1}},
		Moment{QFT{Targets: []Qubit{0, 1}}},
		Moment{MeasureInvert([]Qubit{0, 1}, []bool{true, false})},
	)
	data, err := MarshalJSONCircuit(c)
	require.NoError(t, err)

	back, err := UnmarshalJSONCircuit(data)
	require.NoError(t, err)

	again, err := MarshalJSONCircuit(back)
	require.NoError(t, err)
	if diff := cmp.Diff(string(data), string(again)); diff != "" {
		t.Fatalf("round trip changed the encoding (-first +second):\n%s", diff)
	}
	require.Equal(t, Render(c), Render(back))
}

func TestUnmarshalValidates(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"unknown gate", `{"moments": [[{"gate": "FOO", "targets": [0]}]]}`},
		{"wrong arity", `{"moments": [[{"gate": "CNOT", "targets": [0]}]]}`},
		{"overlapping moment", `{"moments": [[{"gate": "X", "targets": [0]}, {"gate": "Z", "targets": [0]}]]}`},
		{"empty measure", `{"moments": [[{"gate": "measure", "targets": []}]]}`},
	}
	for _, tc := range cases {
		if _, err := UnmarshalJSONCircuit([]byte(tc.json)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestUnmarshalMeasurementInvert(t *testing.T) {
	c, err := UnmarshalJSONCircuit([]byte(
		`{"moments": [[{"gate": "measure", "targets": [0, 1], "invert": [true]}]]}`))
	require.NoError(t, err)
	m, ok := c.Moments[0][0].(*Measurement)
	require.True(t, ok)
	require.True(t, m.InvertFlag(0))
	require.False(t, m.InvertFlag(1))
}
