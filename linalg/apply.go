package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/zaqqwerty/Cirq/verr"
)

// Axis conventions: an n-qubit register is a state vector of length 2^n.
// Axis a (the a-th qubit of the register) owns bit (n-1-a) of the basis
// index, so axis 0 is the most significant bit. Within a k-qubit gate the
// same convention applies to the gate's own index space.

// ApplyMatrixToState applies the 2^k x 2^k matrix m to the state tensor at
// the given register axes and returns the resulting state. The input state is
// not modified. len(axes) must equal k and state must have length 2^n.
func ApplyMatrixToState(m *mat.CDense, state []complex128, axes []int, n int) ([]complex128, error) {
	k := len(axes)
	dim := 1 << n
	if len(state) != dim {
		return nil, verr.Validationf("state has length %d, want 2^%d = %d", len(state), n, dim)
	}
	mr, mc := m.Dims()
	if mr != 1<<k || mc != 1<<k {
		return nil, verr.Validationf("matrix is %dx%d, want %dx%d for %d axes", mr, mc, 1<<k, 1<<k, k)
	}
	bits := make([]int, k)
	maskAll := 0
	for i, a := range axes {
		if a < 0 || a >= n {
			return nil, verr.Validationf("axis %d out of range for %d qubits", a, n)
		}
		bits[i] = n - 1 - a
		if maskAll&(1<<bits[i]) != 0 {
			return nil, verr.Validationf("duplicate axis %d", a)
		}
		maskAll |= 1 << bits[i]
	}

	out := make([]complex128, dim)
	sub := make([]complex128, 1<<k)
	idxOf := func(base, s int) int {
		idx := base
		for j := 0; j < k; j++ {
			if s&(1<<(k-1-j)) != 0 {
				idx |= 1 << bits[j]
			}
		}
		return idx
	}
	for base := 0; base < dim; base++ {
		if base&maskAll != 0 {
			continue
		}
		for s := 0; s < 1<<k; s++ {
			sub[s] = state[idxOf(base, s)]
		}
		for r := 0; r < 1<<k; r++ {
			var acc complex128
			for c := 0; c < 1<<k; c++ {
				acc += m.At(r, c) * sub[c]
			}
			out[idxOf(base, r)] = acc
		}
	}
	return out, nil
}

// ApplyMatrixToMatrix applies the gate matrix m at the given axes to every
// column of u, composing the gate after the transformation u represents. u is
// modified in place and returned.
func ApplyMatrixToMatrix(m *mat.CDense, u *mat.CDense, axes []int, n int) (*mat.CDense, error) {
	dim := 1 << n
	col := make([]complex128, dim)
	for j := 0; j < dim; j++ {
		for i := 0; i < dim; i++ {
			col[i] = u.At(i, j)
		}
		res, err := ApplyMatrixToState(m, col, axes, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < dim; i++ {
			u.Set(i, j, res[i])
		}
	}
	return u, nil
}

// BasisVector returns the dim-length standard basis vector e_i.
func BasisVector(dim, i int) []complex128 {
	v := make([]complex128, dim)
	v[i] = 1
	return v
}

// ColumnsToMatrix assembles column vectors into a dim x dim matrix.
func ColumnsToMatrix(cols [][]complex128) *mat.CDense {
	dim := len(cols)
	m := mat.NewCDense(dim, dim, nil)
	for j, col := range cols {
		for i := 0; i < dim; i++ {
			m.Set(i, j, col[i])
		}
	}
	return m
}
