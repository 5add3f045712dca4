package beam

import (
	"math"
	"math/cmplx"
)

// Vec is a beam amplitude vector (A_x, A_y, a).
type Vec [3]complex128

func (v Vec) IsValid() bool {
	for _, c := range v {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return false
		}
	}
	return true
}

// Matrix is a dense 3x3 complex matrix in row-major [row][col] order.
type Matrix [3][3]complex128

func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Rotation returns the polarization-frame rotation by angle psi about the
// propagation axis. The ALP component is unaffected.
func Rotation(psi float64) Matrix {
	c := complex(math.Cos(psi), 0)
	s := complex(math.Sin(psi), 0)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func (m Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum complex128
			for k := 0; k < 3; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Matrix) MulVec(v Vec) Vec {
	var out Vec
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			out[i] += m[i][k] * v[k]
		}
	}
	return out
}

func (m Matrix) Add(other Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + other[i][j]
		}
	}
	return out
}

func (m Matrix) Scale(f complex128) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = f * m[i][j]
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (m Matrix) Dagger() Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = cmplx.Conj(m[j][i])
		}
	}
	return out
}

func (m Matrix) Trace() complex128 {
	return m[0][0] + m[1][1] + m[2][2]
}

func (m Matrix) IsValid() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if cmplx.IsNaN(m[i][j]) || cmplx.IsInf(m[i][j]) {
				return false
			}
		}
	}
	return true
}
