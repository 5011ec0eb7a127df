// Package measure is an env-gated accounting of how much dense linear
// algebra the verification oracle performs: synthesized matrix bytes,
// comparator blocks, consistency trials. Set QVERIFY_MEASURE=1 to enable.
package measure

import (
	"fmt"
	"os"
	"sync"
)

var Enabled bool
var Global Counter

func init() {
	Enabled = os.Getenv("QVERIFY_MEASURE") == "1"
	Global = Counter{M: make(map[string]int64)}
}

// BytesState returns the size in bytes of a complex128 state vector over n
// qubits.
func BytesState(n int) int {
	return (1 << n) * 16
}

// BytesMatrix returns the size in bytes of a dense complex128 matrix over n
// qubits.
func BytesMatrix(n int) int {
	return (1 << n) * (1 << n) * 16
}

func Human(n int64) string {
	const (
		KiB = 1024
		MiB = 1024 * KiB
	)
	switch {
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

type Counter struct {
	mu sync.Mutex
	M  map[string]int64
}

func (c *Counter) Add(key string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	c.M[key] += n
	c.mu.Unlock()
}

func (c *Counter) Dump() {
	if !Enabled {
		return
	}
	fmt.Println("[measure] Work report:")
	for k, v := range c.M {
		fmt.Printf("[measure] %s = %s\n", k, Human(v))
	}
}

func Section(name string, f func()) {
	if !Enabled {
		f()
		return
	}
	fmt.Printf("[measure] Begin %s\n", name)
	f()
	fmt.Printf("[measure] End %s\n", name)
}
