package circuit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderBellPairWithMeasurement(t *testing.T) {
	c := MustNew(
		Moment{Hadamard{Target: 0}},
		Moment{CNOT{Control: 0, Target: 1}},
		Moment{Measure(0, 1)},
	)
	want := "" +
		"0: ───H───@───M───\n" +
		"          │   │\n" +
		"1: ───────X───M───\n"
	if diff := cmp.Diff(want, Render(c)); diff != "" {
		t.Fatalf("diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWideSymbolPadsNeighbours(t *testing.T) {
	c := MustNew(
		Moment{RotateZ{Target: 0, Theta: 0.5}},
		Moment{PauliX{Target: 1}},
	)
	want := "" +
		"0: ───Rz───────\n" +
		"\n" +
		"1: ────────X───\n"
	if diff := cmp.Diff(want, Render(c)); diff != "" {
		t.Fatalf("diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNonAdjacentSpanCrossesBareWire(t *testing.T) {
	c := MustNew(Moment{CZ{A: 0, B: 2}})
	want := "" +
		"0: ───@───\n" +
		"      │\n" +
		"1: ───│───\n" +
		"      │\n" +
		"2: ───@───\n"
	if diff := cmp.Diff(want, Render(c)); diff != "" {
		t.Fatalf("diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNonAdjacentSpanKeepsIntermediateSymbol(t *testing.T) {
	c := MustNew(Moment{CZ{A: 0, B: 2}, PauliX{Target: 1}})
	want := "" +
		"0: ───@───\n" +
		"      │\n" +
		"1: ───X───\n" +
		"      │\n" +
		"2: ───@───\n"
	if diff := cmp.Diff(want, Render(c)); diff != "" {
		t.Fatalf("diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSkipsUnreferencedQubits(t *testing.T) {
	c := FromOps(PauliX{Target: 5})
	want := "5: ───X───\n"
	if diff := cmp.Diff(want, Render(c)); diff != "" {
		t.Fatalf("diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmptyCircuit(t *testing.T) {
	if got := Render(&Circuit{}); got != "" {
		t.Fatalf("empty circuit rendered %q", got)
	}
}
