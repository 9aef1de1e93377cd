package common

import "github.com/chewxy/math32"

// Matrix is a 4x4 transform flattened into 16 scalars.
//
// Storage is row-major under the row-vector convention (p' = p·M), which is the same memory layout as a
// column-major matrix applied to column vectors (OpenGL/WebGPU). Indices 3, 7, 11 and 15 therefore hold the
// terms that produce the homogeneous w coordinate.
type Matrix [16]float32

// IdentityMatrix returns the 4x4 identity.
//
// Returns:
//   - Matrix: the identity matrix
func IdentityMatrix() Matrix {
	var m Matrix
	Identity(m[:])
	return m
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// Matrices are in the Matrix layout; the result applies b first, then a.
// out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Transpose writes the transpose of m into out. out may alias m.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements)
func Transpose(out, m []float32) {
	var buf [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			buf[c*4+r] = m[r*4+c]
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix with clip-space depth in [-w, w].
// This is the depth convention the near and far plane extraction assumes.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) / (near - far)
	out[11] = -1.0
	out[14] = (2 * far * near) / (near - far)
	out[15] = 0.0
}

// Orthographic creates an orthographic projection matrix mapping the given box to the [-1, 1] cube.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: horizontal extent in view space
//   - bottom, top: vertical extent in view space
//   - near, far: distances to the depth bounds along -Z
func Orthographic(out []float32, left, right, bottom, top, near, far float32) {
	Identity(out)

	out[0] = 2 / (right - left)
	out[5] = 2 / (top - bottom)
	out[10] = -2 / (far - near)
	out[12] = -(right + left) / (right - left)
	out[13] = -(top + bottom) / (top - bottom)
	out[14] = -(far + near) / (far - near)
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eye, center, up Vector3) {
	z := eye.Sub(center)
	if l := z.Length(); l != 0 {
		z = z.Scale(1 / l)
	}

	x := Vector3{
		up[1]*z[2] - up[2]*z[1],
		up[2]*z[0] - up[0]*z[2],
		up[0]*z[1] - up[1]*z[0],
	}
	if l := x.Length(); l != 0 {
		x = x.Scale(1 / l)
	}

	y := Vector3{
		z[1]*x[2] - z[2]*x[1],
		z[2]*x[0] - z[0]*x[2],
		z[0]*x[1] - z[1]*x[0],
	}

	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -x.Dot(eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -y.Dot(eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -z.Dot(eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}
