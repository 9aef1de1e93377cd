package common

import "github.com/chewxy/math32"

// Plane is a directed half-space boundary described by the equation Normal·P + D = 0.
// Points with Normal·P + D >= 0 lie inside the half-space.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane builds a plane from raw coefficients and normalizes it.
//
// Parameters:
//   - nx, ny, nz: the raw normal components
//   - d: the raw offset
//
// Returns:
//   - Plane: the normalized plane, or the zero plane when the normal is degenerate
func NewPlane(nx, ny, nz, d float32) Plane {
	var p Plane
	p.Set(nx, ny, nz, d)
	return p
}

// Set overwrites the plane with the given raw coefficients and normalizes the result in place.
//
// Parameters:
//   - nx, ny, nz: the raw normal components
//   - d: the raw offset
func (p *Plane) Set(nx, ny, nz, d float32) {
	p.Normal = Vector3{nx, ny, nz}
	p.D = d
	p.Normalize()
}

// Normalize scales the plane so that its normal has unit length.
// A normal whose length is zero, NaN or infinite cannot be normalized; the plane is then reset to the zero plane,
// which has a signed distance of 0 to every point and therefore rejects nothing.
func (p *Plane) Normalize() {
	length := p.Normal.Length()
	if length == 0 || math32.IsNaN(length) || math32.IsInf(length, 0) {
		*p = Plane{}
		return
	}

	invLen := 1.0 / length
	p.Normal[0] *= invLen
	p.Normal[1] *= invLen
	p.Normal[2] *= invLen
	p.D *= invLen
}

// Degenerate reports whether the plane is the zero plane produced by normalizing an unusable normal.
//
// Returns:
//   - bool: true when the normal is the zero vector
func (p Plane) Degenerate() bool {
	return p.Normal == Vector3{}
}

// SignedDistance returns Normal·point + D. For a normalized plane this is the distance from the plane,
// positive or zero on the inside and negative on the outside.
//
// Parameters:
//   - point: the point to measure
//
// Returns:
//   - float32: the signed distance
func (p Plane) SignedDistance(point Vector3) float32 {
	return p.Normal.Dot(point) + p.D
}
