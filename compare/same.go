package compare

import (
	"sort"
	"strings"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/verr"
)

// AssertSameCircuits checks moment-by-moment structural equality, with no
// phase or tolerance allowance. On mismatch it reports the index of the
// first differing moment.
func AssertSameCircuits(actual, desired *circuit.Circuit) error {
	limit := len(actual.Moments)
	if len(desired.Moments) > limit {
		limit = len(desired.Moments)
	}
	for i := 0; i < limit; i++ {
		var a, d circuit.Moment
		if i < len(actual.Moments) {
			a = actual.Moments[i]
		}
		if i < len(desired.Moments) {
			d = desired.Moments[i]
		}
		if momentLabel(a) != momentLabel(d) {
			return verr.Comparisonf(
				"circuits differ\ndiffering moment:\n%d\nactual moment:  %s\ndesired moment: %s\n\nactual circuit:\n%s\ndesired circuit:\n%s",
				i, momentLabel(a), momentLabel(d),
				circuit.Render(actual), circuit.Render(desired))
		}
	}
	return nil
}

// momentLabel renders a moment as its sorted operation labels, so that
// operation order within a moment does not matter.
func momentLabel(m circuit.Moment) string {
	if len(m) == 0 {
		return "<empty>"
	}
	labels := make([]string, len(m))
	for i, op := range m {
		labels[i] = opLabel(op)
	}
	sort.Strings(labels)
	return strings.Join(labels, "  ")
}
