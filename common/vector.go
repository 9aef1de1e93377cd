// package common contains the plain value types and free functions shared by the engine packages: vectors, matrices,
// planes and the frustum geometry built from them. None of these types are interface-wrapped; they are passed and copied
// by value.
package common

import "github.com/chewxy/math32"

// Vector3 is an ordered (x, y, z) triple.
type Vector3 [3]float32

// Vec3 builds a Vector3 from its components.
//
// Parameters:
//   - x, y, z: the vector components
//
// Returns:
//   - Vector3: the assembled vector
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// X returns the x component.
func (v Vector3) X() float32 { return v[0] }

// Y returns the y component.
func (v Vector3) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vector3) Z() float32 { return v[2] }

// Dot returns the dot product of v and o.
//
// Parameters:
//   - o: the other vector
//
// Returns:
//   - float32: v·o
func (v Vector3) Dot(o Vector3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Length returns the Euclidean magnitude of v.
//
// Returns:
//   - float32: |v|
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Scale returns v with every component multiplied by s.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - Vector3: the scaled vector
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}
