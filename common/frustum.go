package common

// Frustum plane indices. Planes extracted by ExtractPlanes always appear in this order and culling code indexes by
// position, so the order is part of the API.
const (
	PlaneNear = iota
	PlaneFar
	PlaneLeft
	PlaneRight
	PlaneTop
	PlaneBottom

	// PlaneCount is the number of planes bounding a frustum.
	PlaneCount
)

// Planes holds the six bounding planes of a view frustum, indexed by the Plane* constants.
// Every plane faces inward: the frustum is the intersection of their positive half-spaces.
type Planes [PlaneCount]Plane

// extractPlane writes the plane built from column 3 of m plus sign times column col, then normalizes it.
// This is the Gribb/Hartmann extraction; the six frustum planes differ only in (col, sign).
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
func extractPlane(m *Matrix, col int, sign float32, p *Plane) {
	p.Set(
		m[3]+sign*m[col],
		m[7]+sign*m[4+col],
		m[11]+sign*m[8+col],
		m[15]+sign*m[12+col],
	)
}

// ExtractNearPlane overwrites p with the near plane of the frustum described by m.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - p: destination plane
func ExtractNearPlane(m *Matrix, p *Plane) { extractPlane(m, 2, 1, p) }

// ExtractFarPlane overwrites p with the far plane of the frustum described by m.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - p: destination plane
func ExtractFarPlane(m *Matrix, p *Plane) { extractPlane(m, 2, -1, p) }

// ExtractLeftPlane overwrites p with the left plane of the frustum described by m.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - p: destination plane
func ExtractLeftPlane(m *Matrix, p *Plane) { extractPlane(m, 0, 1, p) }

// ExtractRightPlane overwrites p with the right plane of the frustum described by m.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - p: destination plane
func ExtractRightPlane(m *Matrix, p *Plane) { extractPlane(m, 0, -1, p) }

// ExtractTopPlane overwrites p with the top plane of the frustum described by m.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - p: destination plane
func ExtractTopPlane(m *Matrix, p *Plane) { extractPlane(m, 1, -1, p) }

// ExtractBottomPlane overwrites p with the bottom plane of the frustum described by m.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - p: destination plane
func ExtractBottomPlane(m *Matrix, p *Plane) { extractPlane(m, 1, 1, p) }

// ExtractPlanes overwrites all six planes of dst from m in the order near, far, left, right, top, bottom.
// Each slot is computed independently; a degenerate plane does not affect the others.
// m is never modified and dst is not retained, so dst can be reused every frame.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//   - dst: destination planes
func ExtractPlanes(m *Matrix, dst *Planes) {
	ExtractNearPlane(m, &dst[PlaneNear])
	ExtractFarPlane(m, &dst[PlaneFar])
	ExtractLeftPlane(m, &dst[PlaneLeft])
	ExtractRightPlane(m, &dst[PlaneRight])
	ExtractTopPlane(m, &dst[PlaneTop])
	ExtractBottomPlane(m, &dst[PlaneBottom])
}

// NewPlanes allocates a fresh set of planes and fills it from m.
// Callers extracting once per frame should prefer ExtractPlanes with reused storage.
//
// Parameters:
//   - m: combined view-projection (or model-view-projection) matrix
//
// Returns:
//   - *Planes: the six extracted planes
func NewPlanes(m *Matrix) *Planes {
	p := new(Planes)
	ExtractPlanes(m, p)
	return p
}

// IsPointInFrustum reports whether point lies inside every one of the first six planes.
// A point exactly on a plane is inside. Entries past the sixth are ignored, and fewer than six planes
// cannot bound a frustum so the result is false.
//
// Parameters:
//   - point: the point to test
//   - planes: at least six inward-facing planes
//
// Returns:
//   - bool: true if the point is inside or on the boundary
func IsPointInFrustum(point Vector3, planes []Plane) bool {
	if len(planes) < PlaneCount {
		return false
	}
	for i := 0; i < PlaneCount; i++ {
		if planes[i].SignedDistance(point) < 0 {
			return false
		}
	}
	return true
}

// IsSphereInFrustum reports whether a sphere is inside or intersects the frustum.
// The sphere is rejected only when it lies entirely behind one of the first six planes.
//
// Parameters:
//   - center: sphere center
//   - radius: sphere radius (non-negative)
//   - planes: at least six inward-facing planes
//
// Returns:
//   - bool: true if any part of the sphere may be visible
func IsSphereInFrustum(center Vector3, radius float32, planes []Plane) bool {
	if len(planes) < PlaneCount {
		return false
	}
	for i := 0; i < PlaneCount; i++ {
		if planes[i].SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// IsBoxInFrustum reports whether an axis-aligned box is inside or intersects the frustum.
// For each plane only the box corner furthest along the normal is tested; if even that corner is outside,
// the whole box is. The test is conservative: boxes near frustum corners may be reported visible.
//
// Parameters:
//   - lo, hi: opposite corners of the box (lo <= hi per axis)
//   - planes: at least six inward-facing planes
//
// Returns:
//   - bool: true if any part of the box may be visible
func IsBoxInFrustum(lo, hi Vector3, planes []Plane) bool {
	if len(planes) < PlaneCount {
		return false
	}
	for i := 0; i < PlaneCount; i++ {
		n := planes[i].Normal
		var corner Vector3
		for a := 0; a < 3; a++ {
			if n[a] >= 0 {
				corner[a] = hi[a]
			} else {
				corner[a] = lo[a]
			}
		}
		if planes[i].SignedDistance(corner) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint is IsPointInFrustum over f.
func (f *Planes) ContainsPoint(point Vector3) bool {
	return IsPointInFrustum(point, f[:])
}

// ContainsSphere is IsSphereInFrustum over f.
func (f *Planes) ContainsSphere(center Vector3, radius float32) bool {
	return IsSphereInFrustum(center, radius, f[:])
}

// ContainsBox is IsBoxInFrustum over f.
func (f *Planes) ContainsBox(lo, hi Vector3) bool {
	return IsBoxInFrustum(lo, hi, f[:])
}
