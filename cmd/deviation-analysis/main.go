//go:build analysis
// +build analysis

// deviation-analysis samples random circuits, perturbs their rotation angles
// and plots the distribution of the resulting comparator deviations. Useful
// for picking a sensible atol for a gate set.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/compare"
	"github.com/zaqqwerty/Cirq/linalg"
)

const (
	runs       = 200
	numQubits  = 3
	numMoments = 6
	density    = 0.7
	epsilon    = 1e-4
	outDir     = "deviation_samples"
)

// sampleDeviation builds one random circuit, perturbs every rotation angle by
// epsilon and returns the comparator's worst phased deviation between the
// original and the perturbed circuit.
func sampleDeviation(src *linalg.Source) (float64, error) {
	qubits := make([]circuit.Qubit, numQubits)
	for i := range qubits {
		qubits[i] = circuit.Qubit(i)
	}
	original := circuit.Random(src, qubits, numMoments, density)
	perturbed := perturb(original)
	return compare.MaxDeviation(original, perturbed)
}

// perturb shifts the angle of every rotation gate by epsilon, leaving all
// other operations untouched.
func perturb(c *circuit.Circuit) *circuit.Circuit {
	moments := make([]circuit.Moment, len(c.Moments))
	for i, m := range c.Moments {
		moment := make(circuit.Moment, len(m))
		for j, op := range m {
			if rz, ok := op.(circuit.RotateZ); ok {
				moment[j] = circuit.RotateZ{Target: rz.Target, Theta: rz.Theta + epsilon}
			} else {
				moment[j] = op
			}
		}
		moments[i] = moment
	}
	return &circuit.Circuit{Moments: moments}
}

// saveSamples writes the collected deviations to a timestamped JSON file.
func saveSamples(values []float64) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	out := struct {
		Timestamp string    `json:"timestamp"`
		Epsilon   float64   `json:"epsilon"`
		Samples   []float64 `json:"samples"`
	}{
		Timestamp: time.Now().Format("20060102_150405"),
		Epsilon:   epsilon,
		Samples:   values,
	}
	fname := filepath.Join(outDir, fmt.Sprintf("deviations_%s.json", out.Timestamp))
	f, err := os.Create(fname)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", err
	}
	return fname, nil
}

// plotHistogram plots the histogram of values and saves it to path.
func plotHistogram(values []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Comparator Deviation Distribution"
	p.X.Label.Text = "max phased deviation"
	h, err := plotter.NewHist(plotter.Values(values), 50)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func main() {
	src := linalg.NewSource(uint64(time.Now().UnixNano()))
	values := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		if (i+1)%50 == 0 {
			log.Printf("Run %d/%d", i+1, runs)
		}
		dev, err := sampleDeviation(src)
		if err != nil {
			log.Fatalf("sampleDeviation: %v", err)
		}
		values = append(values, dev)
	}
	fname, err := saveSamples(values)
	if err != nil {
		log.Fatalf("saveSamples: %v", err)
	}
	log.Printf("saved samples to %s", fname)
	png := filepath.Join(outDir, "deviation_distribution.png")
	if err := plotHistogram(values, png); err != nil {
		log.Fatalf("plotHistogram: %v", err)
	}
	fmt.Printf("Histogram saved to %s\n", png)
}
