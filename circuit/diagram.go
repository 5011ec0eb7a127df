package circuit

import (
	"fmt"
	"strings"
)

// DiagramOp lets an operation pick its diagram symbols, one per qubit in
// Qubits() order. Operations without it render as "?".
type DiagramOp interface {
	DiagramSymbols() []string
}

// Render draws the circuit as a text diagram, one wire row per referenced
// qubit with `───` segments per moment and `│` connectors for multi-qubit
// operations:
//
//	0: ───@───
//	      │
//	1: ───X───
func Render(c *Circuit) string {
	qubits := c.Qubits()
	if len(qubits) == 0 {
		return ""
	}
	rowOf := map[Qubit]int{}
	for i, q := range qubits {
		rowOf[q] = i
	}

	prefixes := make([]string, len(qubits))
	prefixWidth := 0
	for i, q := range qubits {
		prefixes[i] = fmt.Sprintf("%d: ", q)
		if w := len([]rune(prefixes[i])); w > prefixWidth {
			prefixWidth = w
		}
	}

	wires := make([][]rune, len(qubits))
	links := make([][]rune, len(qubits)-1)
	for i := range wires {
		wires[i] = []rune(fmt.Sprintf("%-*s───", prefixWidth, prefixes[i]))
	}
	for i := range links {
		links[i] = []rune(strings.Repeat(" ", prefixWidth+3))
	}

	for _, moment := range c.Moments {
		symAt := make([]string, len(qubits))
		spans := [][2]int{}
		for _, op := range moment {
			syms := symbolsFor(op)
			qs := op.Qubits()
			lo, hi := len(qubits), -1
			for i, q := range qs {
				r := rowOf[q]
				symAt[r] = syms[i]
				if r < lo {
					lo = r
				}
				if r > hi {
					hi = r
				}
			}
			if hi > lo {
				spans = append(spans, [2]int{lo, hi})
			}
		}

		width := 1
		for _, s := range symAt {
			if w := len([]rune(s)); w > width {
				width = w
			}
		}

		symStart := len(wires[0])
		for r := range wires {
			s := symAt[r]
			if s == "" {
				// Bare wire through this moment.
				wires[r] = append(wires[r], []rune(strings.Repeat("─", width+3))...)
				continue
			}
			pad := width - len([]rune(s))
			wires[r] = append(wires[r], []rune(s+strings.Repeat("─", pad+3))...)
		}
		for r := range links {
			links[r] = append(links[r], []rune(strings.Repeat(" ", width+3))...)
		}
		for _, span := range spans {
			for b := span[0]; b < span[1]; b++ {
				links[b][symStart] = '│'
				// A bare wire strictly inside the span is crossed by the
				// connector; a row holding another operation's symbol
				// keeps it.
				if b > span[0] && symAt[b] == "" {
					wires[b][symStart] = '│'
				}
			}
		}
	}

	var sb strings.Builder
	for i := range wires {
		sb.WriteString(strings.TrimRight(string(wires[i]), " "))
		sb.WriteString("\n")
		if i < len(links) {
			sb.WriteString(strings.TrimRight(string(links[i]), " "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func symbolsFor(op Operation) []string {
	if d, ok := op.(DiagramOp); ok {
		syms := d.DiagramSymbols()
		if len(syms) == len(op.Qubits()) {
			return syms
		}
	}
	syms := make([]string, len(op.Qubits()))
	for i := range syms {
		syms[i] = "?"
	}
	return syms
}
