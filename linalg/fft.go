package linalg

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// FFT computes the forward radix-2 Fast Fourier Transform of the input. The
// input length must be exactly n and n must be a power of 2. The input is not
// modified.
func FFT(coeffs []complex128, n int) []complex128 {
	if len(coeffs) != n {
		panic("FFT: input length must be exactly n")
	}
	if n == 0 || (n&(n-1)) != 0 {
		panic("FFT: n must be a power of 2")
	}

	result := make([]complex128, n)
	copy(result, coeffs)

	logN := bits.Len(uint(n)) - 1
	for i := 0; i < n; i++ {
		j := bitReverse(i, logN)
		if i < j {
			result[i], result[j] = result[j], result[i]
		}
	}

	// Cooley-Tukey iterative butterflies, negative twiddle sign.
	for size := 2; size <= n; size *= 2 {
		halfSize := size / 2
		angle := -2 * math.Pi / float64(size)
		wn := cmplx.Rect(1, angle)

		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for j := 0; j < halfSize; j++ {
				idx1 := start + j
				idx2 := start + j + halfSize

				temp := w * result[idx2]
				result[idx2] = result[idx1] - temp
				result[idx1] = result[idx1] + temp

				w *= wn
			}
		}
	}

	return result
}

// IFFT computes the inverse transform of FFT, including the 1/n scaling.
func IFFT(evals []complex128, n int) []complex128 {
	if len(evals) != n {
		panic("IFFT: input length must be exactly n")
	}
	if n == 0 || (n&(n-1)) != 0 {
		panic("IFFT: n must be a power of 2")
	}

	result := make([]complex128, n)
	copy(result, evals)
	logN := bits.Len(uint(n)) - 1
	for i := 0; i < n; i++ {
		j := bitReverse(i, logN)
		if i < j {
			result[i], result[j] = result[j], result[i]
		}
	}

	for size := 2; size <= n; size *= 2 {
		halfSize := size / 2
		angle := 2 * math.Pi / float64(size)
		wn := cmplx.Rect(1, angle)

		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for j := 0; j < halfSize; j++ {
				idx1 := start + j
				idx2 := start + j + halfSize

				temp := w * result[idx2]
				result[idx2] = result[idx1] - temp
				result[idx1] = result[idx1] + temp

				w *= wn
			}
		}
	}

	for i := 0; i < n; i++ {
		result[i] /= complex(float64(n), 0)
	}

	return result
}

// QFTTransform applies the quantum Fourier transform to a full register state
// of length n (a power of two). The QFT matrix has entries ω^{jl}/√n with
// ω = e^{2πi/n}, which is the inverse DFT rescaled by √n.
func QFTTransform(state []complex128, n int) []complex128 {
	result := IFFT(state, n)
	scale := complex(math.Sqrt(float64(n)), 0)
	for i := range result {
		result[i] *= scale
	}
	return result
}

// bitReverse computes the bit-reversal of i with respect to logN bits.
func bitReverse(i int, logN int) int {
	var reversed int
	for j := 0; j < logN; j++ {
		if (i>>j)&1 == 1 {
			reversed |= 1 << (logN - 1 - j)
		}
	}
	return reversed
}
