package transform

import (
	"math"

	"go.trai.ch/visit/internal/core/domain"
)

// ClipFudgeFraction widens tightened clipping planes by this fraction of the
// current near-to-far distance.
const ClipFudgeFraction = 0.01

// WorldToImage holds a view and the world-to-clip transform derived from it.
type WorldToImage struct {
	view   domain.ViewInfo
	scale  [3]float64
	aspect float64
	matrix Matrix4
}

// New builds the transform for view, scale and aspect.
func New(view domain.ViewInfo, scale [3]float64, aspect float64) (*WorldToImage, error) {
	m, err := CalculateTransform(view, scale, aspect)
	if err != nil {
		return nil, err
	}
	return &WorldToImage{view: view, scale: scale, aspect: aspect, matrix: m}, nil
}

// Matrix returns the current world-to-clip matrix.
func (t *WorldToImage) Matrix() Matrix4 {
	return t.matrix
}

// View returns the view, including any tightened clipping planes.
func (t *WorldToImage) View() domain.ViewInfo {
	return t.view
}

// TightenClippingPlanes moves the near and far planes towards the box
// bounds (xmin, xmax, ymin, ymax, zmin, zmax) when that makes them tighter.
// It reports whether either plane moved; the matrix is recomputed if so.
func (t *WorldToImage) TightenClippingPlanes(bounds [6]float64) (bool, error) {
	corners := BoxCorners(bounds)

	nearZ, farZ := math.Inf(1), math.Inf(-1)
	var nearCorner, farCorner [3]float64
	for _, p := range corners {
		q, w := t.matrix.TransformPoint(p)
		if w <= 0 {
			return false, nil
		}
		if q[2] < nearZ {
			nearZ, nearCorner = q[2], p
		}
		if q[2] > farZ {
			farZ, farCorner = q[2], p
		}
	}

	pos := vec3(t.view.CameraPosition)
	dir := vec3(t.view.Focus).sub(pos)
	length := dir.norm()
	if length == 0 {
		return false, nil
	}
	distance := func(p [3]float64) float64 {
		return vec3(p).sub(pos).dot(dir) / length
	}

	fudge := ClipFudgeFraction * (t.view.FarPlane - t.view.NearPlane)
	changed := false

	if nearZ > 0 {
		if candidate := distance(nearCorner) - fudge; candidate > t.view.NearPlane {
			t.view.NearPlane = candidate
			changed = true
		}
	}
	if farZ < 1 {
		if candidate := distance(farCorner) + fudge; candidate < t.view.FarPlane {
			t.view.FarPlane = candidate
			changed = true
		}
	}

	if !changed {
		return false, nil
	}

	m, err := CalculateTransform(t.view, t.scale, t.aspect)
	if err != nil {
		return false, err
	}
	t.matrix = m
	return true, nil
}
