package transform

import (
	"math"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
)

// cubeRadius is the radius of the sphere circumscribing [-1,1]^3.
var cubeRadius = math.Sqrt(3)

// GetDomainsList returns the leaves of tree whose bounding boxes may be
// visible from view. Aspect ratio does not change which domains intersect
// the view, so the transform is built with an aspect of 1.
func GetDomainsList(view domain.ViewInfo, tree ports.SpatialTree) ([]int, error) {
	m, err := CalculateTransform(view, [3]float64{1, 1, 1}, 1)
	if err != nil {
		return nil, err
	}
	return DomainsInView(m, tree), nil
}

// DomainsInView returns the leaves of tree whose bounding boxes, mapped by m,
// may intersect the clip cube. A box with a corner at or behind the camera
// plane (W <= 0) is kept.
func DomainsInView(m Matrix4, tree ports.SpatialTree) []int {
	domains := []int{}
	for i := range tree.LeafCount() {
		corners := BoxCorners(tree.LeafExtents(i))
		var hex [8][3]float64
		behind := false
		for c, p := range corners {
			q, w := m.TransformPoint(p)
			if w <= 0 {
				behind = true
				break
			}
			hex[c] = q
		}
		if behind || HexIntersectsImageCube(hex) {
			domains = append(domains, i)
		}
	}
	return domains
}

// BoxCorners returns the 8 corners of the box xmin, xmax, ymin, ymax, zmin, zmax.
func BoxCorners(b [6]float64) [8][3]float64 {
	var out [8][3]float64
	for i := range 8 {
		out[i] = [3]float64{b[i&1], b[2+(i>>1)&1], b[4+(i>>2)&1]}
	}
	return out
}

// HexIntersectsImageCube reports whether a hexahedron given by its 8
// homogenized corners may intersect [-1,1]^3. It never reports false for a
// hexahedron that intersects the cube; it may report true for one that does
// not.
func HexIntersectsImageCube(hex [8][3]float64) bool {
	// Any corner inside the cube.
	for _, p := range hex {
		if inside(p[0]) && inside(p[1]) && inside(p[2]) {
			return true
		}
	}

	// All corners strictly outside one face.
	var side [3]int
	for _, p := range hex {
		for axis := range 3 {
			switch {
			case p[axis] > 1:
				side[axis]++
			case p[axis] < -1:
				side[axis]--
			}
		}
	}
	for _, s := range side {
		if s == 8 || s == -8 {
			return false
		}
	}

	// Circumscribing spheres overlap.
	var center [3]float64
	for _, p := range hex {
		for axis := range 3 {
			center[axis] += p[axis] / 8
		}
	}
	var radius float64
	for _, p := range hex {
		radius = math.Max(radius, vec3(p).sub(center).norm())
	}
	return vec3(center).norm() <= radius+cubeRadius
}

func inside(v float64) bool {
	return v >= -1 && v <= 1
}
