package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/transform"
)

const eps = 1e-9

func perspectiveView() domain.ViewInfo {
	return domain.ViewInfo{
		CameraPosition: [3]float64{0, 0, 10},
		Focus:          [3]float64{0, 0, 0},
		ViewUp:         [3]float64{0, 1, 0},
		ViewAngle:      30,
		NearPlane:      0.1,
		FarPlane:       100,
		ImageZoom:      1,
	}
}

func orthographicView() domain.ViewInfo {
	v := perspectiveView()
	v.Orthographic = true
	v.ParallelScale = 1
	v.NearPlane = 1
	v.FarPlane = 19
	return v
}

func TestCalculateTransform_Deterministic(t *testing.T) {
	for _, view := range []domain.ViewInfo{perspectiveView(), orthographicView()} {
		a, err := transform.CalculateTransform(view, [3]float64{1, 2, 3}, 1.5)
		require.NoError(t, err)
		b, err := transform.CalculateTransform(view, [3]float64{1, 2, 3}, 1.5)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCalculatePerspectiveTransform_DepthRange(t *testing.T) {
	view := perspectiveView()
	m, err := transform.CalculateTransform(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)

	onNear, _ := m.TransformPoint([3]float64{0, 0, 10 - view.NearPlane})
	onFar, _ := m.TransformPoint([3]float64{0, 0, 10 - view.FarPlane})
	focus, w := m.TransformPoint(view.Focus)

	assert.InDelta(t, 0, onNear[2], eps)
	assert.InDelta(t, 1, onFar[2], eps)
	assert.InDelta(t, 0, focus[0], eps)
	assert.InDelta(t, 0, focus[1], eps)
	assert.InDelta(t, 10, w, eps)
}

func TestCalculatePerspectiveTransform_FieldOfView(t *testing.T) {
	view := perspectiveView()
	view.ViewAngle = 90
	m, err := transform.CalculateTransform(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)

	// With a 90 degree field of view the top of the frustum rises one unit per unit of depth.
	top, _ := m.TransformPoint([3]float64{0, 10, 0})
	assert.InDelta(t, 1, top[1], eps)
}

func TestCalculateOrthographicTransform_DepthAndScale(t *testing.T) {
	view := orthographicView()
	m, err := transform.CalculateTransform(view, [3]float64{1, 1, 1}, 2)
	require.NoError(t, err)

	onNear, _ := m.TransformPoint([3]float64{0, 0, 10 - view.NearPlane})
	onFar, _ := m.TransformPoint([3]float64{0, 0, 10 - view.FarPlane})
	assert.InDelta(t, 0, onNear[2], eps)
	assert.InDelta(t, 1, onFar[2], eps)

	// X is divided by the aspect ratio and reflected into image space.
	p, w := m.TransformPoint([3]float64{0.5, 0.25, 0})
	assert.InDelta(t, 1, w, eps)
	assert.InDelta(t, -0.25, p[0], eps)
	assert.InDelta(t, 0.25, p[1], eps)
}

func TestCalculateTransform_ZoomAndPan(t *testing.T) {
	view := orthographicView()
	view.ImageZoom = 2
	view.ImagePan = [2]float64{0.1, -0.2}
	m, err := transform.CalculateTransform(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)

	p, _ := m.TransformPoint(view.Focus)
	assert.InDelta(t, -2*0.1*2, p[0], eps)
	assert.InDelta(t, 2*-0.2*2, p[1], eps)

	q, _ := m.TransformPoint([3]float64{0, 0.25, 0})
	assert.InDelta(t, 0.25*2+2*-0.2*2, q[1], eps)
}

// rowVectorTransform composes the same transform the way a row-vector
// library does: every factor is transposed, multiplied left to right in
// application order, and the product transposed back.
func rowVectorTransform(t *testing.T, view domain.ViewInfo, scale [3]float64, aspect float64) transform.Matrix4 {
	t.Helper()
	var base transform.Matrix4
	var err error
	if view.Orthographic {
		base, err = transform.CalculateOrthographicTransform(view)
	} else {
		base, err = transform.CalculatePerspectiveTransform(view)
	}
	require.NoError(t, err)

	s := transform.Diagonal(scale[0]/aspect, scale[1], scale[2], 1)
	zp := transform.Diagonal(view.ImageZoom, view.ImageZoom, 1, 1)
	zp.Set(0, 3, 2*view.ImagePan[0]*view.ImageZoom)
	zp.Set(1, 3, 2*view.ImagePan[1]*view.ImageZoom)
	r := transform.Diagonal(-1, 1, 1, 1)

	row := base.Transpose().Mul(s.Transpose()).Mul(zp.Transpose()).Mul(r.Transpose())
	return row.Transpose()
}

func TestCalculateTransform_MatchesRowVectorComposition(t *testing.T) {
	views := []domain.ViewInfo{perspectiveView(), orthographicView()}

	oblique := perspectiveView()
	oblique.CameraPosition = [3]float64{3, -4, 7}
	oblique.Focus = [3]float64{0.5, 0.5, -1}
	oblique.ViewUp = [3]float64{0, 0, 1}
	oblique.ViewAngle = 45
	oblique.ImageZoom = 1.7
	oblique.ImagePan = [2]float64{0.05, 0.3}
	views = append(views, oblique)

	wide := oblique
	wide.ViewAngle = 120
	wide.NearPlane = 2
	wide.FarPlane = 3
	views = append(views, wide)

	flat := oblique
	flat.Orthographic = true
	flat.ParallelScale = 4.5
	flat.NearPlane = -2
	views = append(views, flat)

	for _, view := range views {
		for _, aspect := range []float64{0.5, 1, 16.0 / 9.0} {
			scale := [3]float64{1, 0.5, 2}
			got, err := transform.CalculateTransform(view, scale, aspect)
			require.NoError(t, err)
			want := rowVectorTransform(t, view, scale, aspect)
			assert.True(t, got.ApproxEqual(want, eps), "view %+v aspect %v", view, aspect)
		}
	}
}

func TestCalculateTransform_DegenerateViews(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ViewInfo)
		aspect float64
	}{
		{name: "near equals far", mutate: func(v *domain.ViewInfo) { v.NearPlane, v.FarPlane = 5, 5 }, aspect: 1},
		{name: "near behind far", mutate: func(v *domain.ViewInfo) { v.NearPlane, v.FarPlane = 6, 5 }, aspect: 1},
		{name: "zero near in perspective", mutate: func(v *domain.ViewInfo) { v.NearPlane = 0 }, aspect: 1},
		{name: "zero view angle", mutate: func(v *domain.ViewInfo) { v.ViewAngle = 0 }, aspect: 1},
		{name: "straight view angle", mutate: func(v *domain.ViewInfo) { v.ViewAngle = 180 }, aspect: 1},
		{name: "camera at focus", mutate: func(v *domain.ViewInfo) { v.Focus = v.CameraPosition }, aspect: 1},
		{name: "up along view", mutate: func(v *domain.ViewInfo) { v.ViewUp = [3]float64{0, 0, 3} }, aspect: 1},
		{name: "zero aspect", mutate: func(*domain.ViewInfo) {}, aspect: 0},
		{name: "zero parallel scale", mutate: func(v *domain.ViewInfo) {
			v.Orthographic = true
			v.ParallelScale = 0
		}, aspect: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := perspectiveView()
			tt.mutate(&view)
			_, err := transform.CalculateTransform(view, [3]float64{1, 1, 1}, tt.aspect)
			require.ErrorIs(t, err, domain.ErrDegenerateView)
		})
	}
}

func TestMatrix4_Basics(t *testing.T) {
	m := transform.Translation(1, 2, 3)
	assert.Equal(t, m, m.Mul(transform.Identity()))
	assert.Equal(t, m, transform.Identity().Mul(m))
	assert.Equal(t, m, m.Transpose().Transpose())

	p, w := m.TransformPoint([3]float64{1, 1, 1})
	assert.Equal(t, [3]float64{2, 3, 4}, p)
	assert.InDelta(t, 1, w, eps)

	var z transform.Matrix4
	q, w := z.TransformPoint([3]float64{1, 1, 1})
	assert.Zero(t, w)
	assert.Equal(t, [3]float64{}, q)
	assert.False(t, math.IsNaN(q[0]))
}
