// Package transform computes world-to-clip transforms from camera parameters
// and culls domains against the resulting clip cube.
//
// Matrices act on column vectors: p' = M·p. A composition A·B applies B first.
package transform

import "math"

// Matrix4 is a 4x4 homogeneous matrix stored row-major.
type Matrix4 [16]float64

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Diagonal returns the matrix with x, y, z, w on its diagonal.
func Diagonal(x, y, z, w float64) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, w,
	}
}

// Translation returns the matrix that translates by (x, y, z).
func Translation(x, y, z float64) Matrix4 {
	m := Identity()
	m[3], m[7], m[11] = x, y, z
	return m
}

// At returns element (row, col).
func (m Matrix4) At(row, col int) float64 {
	return m[row*4+col]
}

// Set assigns element (row, col).
func (m *Matrix4) Set(row, col int, v float64) {
	m[row*4+col] = v
}

// Mul returns m·n.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for r := range 4 {
		for c := range 4 {
			var s float64
			for k := range 4 {
				s += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = s
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for r := range 4 {
		for c := range 4 {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// MultiplyPoint returns m·p for a homogeneous point p.
func (m Matrix4) MultiplyPoint(p [4]float64) [4]float64 {
	var out [4]float64
	for r := range 4 {
		out[r] = m[r*4]*p[0] + m[r*4+1]*p[1] + m[r*4+2]*p[2] + m[r*4+3]*p[3]
	}
	return out
}

// TransformPoint maps a 3D point and returns its homogenized coordinates
// together with the homogeneous W. When W is zero the coordinates are
// returned undivided.
func (m Matrix4) TransformPoint(p [3]float64) ([3]float64, float64) {
	h := m.MultiplyPoint([4]float64{p[0], p[1], p[2], 1})
	if h[3] == 0 {
		return [3]float64{h[0], h[1], h[2]}, 0
	}
	return [3]float64{h[0] / h[3], h[1] / h[3], h[2] / h[3]}, h[3]
}

// ApproxEqual reports whether every element of m and n differs by at most eps.
func (m Matrix4) ApproxEqual(n Matrix4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}

type vec3 [3]float64

func (a vec3) sub(b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func (a vec3) dot(b vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3) norm() float64 { return math.Sqrt(a.dot(a)) }

func (a vec3) scale(s float64) vec3 { return vec3{a[0] * s, a[1] * s, a[2] * s} }
