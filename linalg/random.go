package linalg

import (
	"encoding/binary"
	"math"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Source is a deterministic randomness source keyed by an explicit seed.
// Every randomized sampling in the oracle (consistency trials, random
// circuits, random superpositions) draws from a Source so that failures
// reproduce exactly.
type Source struct {
	prng utils.PRNG
}

// NewSource builds a Source keyed by seed. Equal seeds yield equal streams.
func NewSource(seed uint64) *Source {
	key := make([]byte, 32)
	binary.BigEndian.PutUint64(key, seed)
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		// NewKeyedPRNG only fails on malformed keys; a fixed-size key
		// cannot trigger it.
		panic(err)
	}
	return &Source{prng: prng}
}

// Uint64 returns the next 8 bytes of the stream as an unsigned integer.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	if _, err := s.prng.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(buf[:])
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Intn returns a uniform value in [0, n).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("Intn: n must be positive")
	}
	return int(s.Uint64() % uint64(n))
}

// NormFloat64 samples a standard normal via Box-Muller.
func (s *Source) NormFloat64() float64 {
	u1 := s.Float64()
	for u1 == 0 {
		u1 = s.Float64()
	}
	u2 := s.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Perm returns a random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// RandomSuperposition samples a uniformly random unit state vector of the
// given dimension: independent gaussian components, normalized.
func RandomSuperposition(dim int, s *Source) []complex128 {
	v := make([]complex128, dim)
	for i := range v {
		v[i] = complex(s.NormFloat64(), s.NormFloat64())
	}
	norm := Norm2(v)
	if norm == 0 {
		v[0] = 1
		return v
	}
	for i := range v {
		v[i] /= complex(norm, 0)
	}
	return v
}
