package circuit

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// JSON circuit interchange used by the command-line tools. A circuit is a
// list of moments, each a list of gates:
//
//	{"moments": [
//	  [{"gate": "H", "targets": [0]}, {"gate": "CNOT", "targets": [1, 2]}],
//	  [{"gate": "measure", "targets": [0], "invert": [true]}]
//	]}

type jsonGate struct {
	Gate    string  `json:"gate"`
	Targets []int   `json:"targets"`
	Theta   float64 `json:"theta,omitempty"`
	Invert  []bool  `json:"invert,omitempty"`
}

type jsonCircuit struct {
	Moments [][]jsonGate `json:"moments"`
}

// UnmarshalJSONCircuit decodes the interchange format, validating moment
// disjointness and gate arities.
func UnmarshalJSONCircuit(data []byte) (*Circuit, error) {
	var jc jsonCircuit
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, errors.Wrap(err, "decoding circuit JSON")
	}
	moments := make([]Moment, len(jc.Moments))
	for i, jm := range jc.Moments {
		m := make(Moment, 0, len(jm))
		for _, jg := range jm {
			op, err := jg.toOperation()
			if err != nil {
				return nil, errors.Wrapf(err, "moment %d", i)
			}
			m = append(m, op)
		}
		moments[i] = m
	}
	return New(moments...)
}

// LoadJSONCircuit reads and decodes a circuit file.
func LoadJSONCircuit(path string) (*Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading circuit file %s", path)
	}
	return UnmarshalJSONCircuit(data)
}

func (jg jsonGate) toOperation() (Operation, error) {
	qs := make([]Qubit, len(jg.Targets))
	for i, t := range jg.Targets {
		qs[i] = Qubit(t)
	}
	name := strings.ToUpper(jg.Gate)
	arity := map[string]int{
		"I": 1, "X": 1, "Y": 1, "Z": 1, "H": 1, "RZ": 1, "PH": 1,
		"CZ": 2, "CNOT": 2, "SWAP": 2,
	}
	if n, fixed := arity[name]; fixed && len(qs) != n {
		return nil, errors.Errorf("gate %q wants %d targets, got %d", jg.Gate, n, len(qs))
	}
	switch name {
	case "I":
		return Identity{Target: qs[0]}, nil
	case "X":
		return PauliX{Target: qs[0]}, nil
	case "Y":
		return PauliY{Target: qs[0]}, nil
	case "Z":
		return PauliZ{Target: qs[0]}, nil
	case "H":
		return Hadamard{Target: qs[0]}, nil
	case "RZ":
		return RotateZ{Target: qs[0], Theta: jg.Theta}, nil
	case "PH":
		return GlobalPhase{Target: qs[0], Theta: jg.Theta}, nil
	case "CZ":
		return CZ{A: qs[0], B: qs[1]}, nil
	case "CNOT":
		return CNOT{Control: qs[0], Target: qs[1]}, nil
	case "SWAP":
		return Swap{A: qs[0], B: qs[1]}, nil
	case "QFT":
		if len(qs) == 0 {
			return nil, errors.New("QFT wants at least one target")
		}
		return QFT{Targets: qs}, nil
	case "MEASURE", "M":
		if len(qs) == 0 {
			return nil, errors.New("measure wants at least one target")
		}
		return MeasureInvert(qs, jg.Invert), nil
	default:
		return nil, errors.Errorf("unknown gate %q", jg.Gate)
	}
}

// MarshalJSONCircuit encodes a circuit built from the standard gate set.
// Dense gates have no JSON form and are rejected.
func MarshalJSONCircuit(c *Circuit) ([]byte, error) {
	jc := jsonCircuit{Moments: make([][]jsonGate, len(c.Moments))}
	for i, m := range c.Moments {
		for _, op := range m {
			jg, err := toJSONGate(op)
			if err != nil {
				return nil, errors.Wrapf(err, "moment %d", i)
			}
			jc.Moments[i] = append(jc.Moments[i], jg)
		}
		if jc.Moments[i] == nil {
			jc.Moments[i] = []jsonGate{}
		}
	}
	return json.MarshalIndent(jc, "", "  ")
}

func toJSONGate(op Operation) (jsonGate, error) {
	ints := func(qs []Qubit) []int {
		out := make([]int, len(qs))
		for i, q := range qs {
			out[i] = int(q)
		}
		return out
	}
	switch g := op.(type) {
	case Identity:
		return jsonGate{Gate: "I", Targets: ints(g.Qubits())}, nil
	case PauliX:
		return jsonGate{Gate: "X", Targets: ints(g.Qubits())}, nil
	case PauliY:
		return jsonGate{Gate: "Y", Targets: ints(g.Qubits())}, nil
	case PauliZ:
		return jsonGate{Gate: "Z", Targets: ints(g.Qubits())}, nil
	case Hadamard:
		return jsonGate{Gate: "H", Targets: ints(g.Qubits())}, nil
	case RotateZ:
		return jsonGate{Gate: "RZ", Targets: ints(g.Qubits()), Theta: g.Theta}, nil
	case GlobalPhase:
		return jsonGate{Gate: "PH", Targets: ints(g.Qubits()), Theta: g.Theta}, nil
	case CZ:
		return jsonGate{Gate: "CZ", Targets: ints(g.Qubits())}, nil
	case CNOT:
		return jsonGate{Gate: "CNOT", Targets: ints(g.Qubits())}, nil
	case Swap:
		return jsonGate{Gate: "SWAP", Targets: ints(g.Qubits())}, nil
	case QFT:
		return jsonGate{Gate: "QFT", Targets: ints(g.Qubits())}, nil
	case *Measurement:
		return jsonGate{Gate: "measure", Targets: ints(g.Targets), Invert: g.Invert}, nil
	default:
		return jsonGate{}, errors.Errorf("operation %T has no JSON form", op)
	}
}
