// Package linalg provides the dense complex linear algebra used by the
// circuit verification oracle: small unitary matrices over gonum's CDense,
// state-tensor application, FFT kernels and seeded randomness.
package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Eye returns the dim x dim identity matrix.
func Eye(dim int) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Mul returns a*b. gonum's CDense carries no complex matmul, so the product
// is accumulated entry by entry like ConjTranspose and Kron below.
func Mul(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic("Mul: dimension mismatch")
	}
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var acc complex128
			for k := 0; k < ac; k++ {
				acc += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

// ConjTranspose returns the conjugate transpose of m.
func ConjTranspose(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

// MatPow returns m raised to the integer power e. Negative exponents use the
// conjugate transpose, which is the inverse for unitary m.
func MatPow(m *mat.CDense, e int) *mat.CDense {
	dim, _ := m.Dims()
	if e < 0 {
		return MatPow(ConjTranspose(m), -e)
	}
	out := Eye(dim)
	for i := 0; i < e; i++ {
		out = Mul(out, m)
	}
	return out
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			v := a.At(i, j)
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, v*b.At(k, l))
				}
			}
		}
	}
	return out
}

// MaxAbsDiff computes the maximum absolute elementwise difference between two
// equally sized matrices.
func MaxAbsDiff(a, b *mat.CDense) float64 {
	r, c := a.Dims()
	max := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d := cmplx.Abs(a.At(i, j) - b.At(i, j)); d > max {
				max = d
			}
		}
	}
	return max
}

// formatLimit bounds how large a matrix is rendered entry by entry in
// diagnostics before falling back to a dimension summary.
const formatLimit = 16

// Format renders m for diagnostics. Matrices larger than formatLimit rows are
// summarized by their dimensions.
func Format(m *mat.CDense) string {
	r, c := m.Dims()
	if r > formatLimit {
		return fmt.Sprintf("<%dx%d complex matrix>", r, c)
	}
	var sb strings.Builder
	for i := 0; i < r; i++ {
		sb.WriteString("[")
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			v := m.At(i, j)
			sb.WriteString(fmt.Sprintf("%6.3f%+6.3fi", real(v), imag(v)))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a power-of-two n.
func Log2(n int) int {
	l := 0
	for 1<<l < n {
		l++
	}
	return l
}

// MaxAbsDiffVec computes the maximum absolute difference between two equally
// sized complex vectors.
func MaxAbsDiffVec(a, b []complex128) float64 {
	max := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []complex128) float64 {
	var sum float64
	for _, x := range v {
		sum += real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(sum)
}
