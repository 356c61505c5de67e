package transform

import (
	"math"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

const degenerateEpsilon = 1e-12

// CalculateTransform returns the matrix mapping world space to the clip cube
// for view. scale stretches clip x, y and z; x is additionally divided by
// aspect (width over height).
//
// The net map is Rx·ZP·S·B, where B is the orthographic or perspective base
// transform, S the scale, ZP the image zoom and pan, and Rx a reflection
// across X, because image space has the opposite handedness of world space.
func CalculateTransform(view domain.ViewInfo, scale [3]float64, aspect float64) (Matrix4, error) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return Matrix4{}, degenerate("aspect must be positive", "aspect", aspect)
	}

	var (
		base Matrix4
		err  error
	)
	if view.Orthographic {
		base, err = CalculateOrthographicTransform(view)
	} else {
		base, err = CalculatePerspectiveTransform(view)
	}
	if err != nil {
		return Matrix4{}, err
	}

	s := Diagonal(scale[0]/aspect, scale[1], scale[2], 1)

	zoom := view.ImageZoom
	if zoom == 0 {
		zoom = 1
	}
	zp := Diagonal(zoom, zoom, 1, 1)
	zp.Set(0, 3, 2*view.ImagePan[0]*zoom)
	zp.Set(1, 3, 2*view.ImagePan[1]*zoom)

	reflectX := Diagonal(-1, 1, 1, 1)

	return reflectX.Mul(zp).Mul(s).Mul(base), nil
}

// CalculatePerspectiveTransform returns the camera transform followed by a
// frustum projection whose depth is remapped from [-1,1] to [0,1], so that
// geometry on the near plane lands at Z=0.
func CalculatePerspectiveTransform(view domain.ViewInfo) (Matrix4, error) {
	n, f := view.NearPlane, view.FarPlane
	switch {
	case !(n > 0):
		return Matrix4{}, degenerate("near plane must be positive for perspective views", "near", n)
	case !(f > n):
		return Matrix4{}, degenerate("far plane must lie beyond the near plane", "near", n, "far", f)
	case !(view.ViewAngle > 0 && view.ViewAngle < 180):
		return Matrix4{}, degenerate("view angle must lie strictly between 0 and 180 degrees", "viewAngle", view.ViewAngle)
	}

	camera, err := cameraTransform(view)
	if err != nil {
		return Matrix4{}, err
	}

	cot := 1 / math.Tan(view.ViewAngle*math.Pi/360)
	var proj Matrix4
	proj.Set(0, 0, cot)
	proj.Set(1, 1, cot)
	proj.Set(2, 2, -(f+n)/(f-n))
	proj.Set(2, 3, -2*f*n/(f-n))
	proj.Set(3, 2, -1)

	depth := Identity()
	depth.Set(2, 2, 0.5)
	depth.Set(2, 3, 0.5)

	return depth.Mul(proj).Mul(camera), nil
}

// CalculateOrthographicTransform returns the camera transform followed by a
// translation to the near plane, a scale by 1/parallelScale in X and Y and
// 1/(far-near) in Z, and a reflection of Z, mapping near to 0 and far to 1.
func CalculateOrthographicTransform(view domain.ViewInfo) (Matrix4, error) {
	n, f := view.NearPlane, view.FarPlane
	switch {
	case !(f > n):
		return Matrix4{}, degenerate("far plane must lie beyond the near plane", "near", n, "far", f)
	case !(view.ParallelScale > 0):
		return Matrix4{}, degenerate("parallel scale must be positive", "parallelScale", view.ParallelScale)
	}

	camera, err := cameraTransform(view)
	if err != nil {
		return Matrix4{}, err
	}

	toNear := Translation(0, 0, n)
	s := Diagonal(1/view.ParallelScale, 1/view.ParallelScale, 1/(f-n), 1)
	reflectZ := Diagonal(1, 1, -1, 1)

	return reflectZ.Mul(s).Mul(toNear).Mul(camera), nil
}

// cameraTransform returns the look-at matrix taking world space into a camera
// frame that looks down -Z with Y up.
func cameraTransform(view domain.ViewInfo) (Matrix4, error) {
	pos := vec3(view.CameraPosition)
	normal := pos.sub(vec3(view.Focus))
	length := normal.norm()
	if length < degenerateEpsilon {
		return Matrix4{}, degenerate("camera position coincides with focus")
	}
	normal = normal.scale(1 / length)

	up := vec3(view.ViewUp)
	side := up.cross(normal)
	sideLen := side.norm()
	if sideLen < degenerateEpsilon*math.Max(up.norm(), 1) {
		return Matrix4{}, degenerate("view up is parallel to the view direction")
	}
	side = side.scale(1 / sideLen)
	orthoUp := normal.cross(side)

	m := Identity()
	for c := range 3 {
		m.Set(0, c, side[c])
		m.Set(1, c, orthoUp[c])
		m.Set(2, c, normal[c])
	}
	m.Set(0, 3, -side.dot(pos))
	m.Set(1, 3, -orthoUp.dot(pos))
	m.Set(2, 3, -normal.dot(pos))
	return m, nil
}

func degenerate(msg string, kv ...any) error {
	var err error = zerr.Wrap(domain.ErrDegenerateView, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		if key == "" {
			continue
		}
		err = zerr.With(err, key, kv[i+1])
	}
	return err
}
