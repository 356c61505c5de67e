package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/engine/transform"
)

func TestTightenClippingPlanes_Perspective(t *testing.T) {
	view := perspectiveView()
	w2i, err := transform.New(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)
	before := w2i.Matrix()

	changed, err := w2i.TightenClippingPlanes([6]float64{-1, 1, -1, 1, -1, 1})
	require.NoError(t, err)
	require.True(t, changed)

	fudge := transform.ClipFudgeFraction * (view.FarPlane - view.NearPlane)
	got := w2i.View()
	assert.InDelta(t, 9-fudge, got.NearPlane, eps)
	assert.InDelta(t, 11+fudge, got.FarPlane, eps)
	assert.NotEqual(t, before, w2i.Matrix())

	want, err := transform.CalculateTransform(got, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, want, w2i.Matrix())
}

func TestTightenClippingPlanes_Orthographic(t *testing.T) {
	view := orthographicView()
	w2i, err := transform.New(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)

	changed, err := w2i.TightenClippingPlanes([6]float64{-1, 1, -1, 1, -2, 2})
	require.NoError(t, err)
	require.True(t, changed)

	fudge := transform.ClipFudgeFraction * (view.FarPlane - view.NearPlane)
	assert.InDelta(t, 8-fudge, w2i.View().NearPlane, eps)
	assert.InDelta(t, 12+fudge, w2i.View().FarPlane, eps)
}

func TestTightenClippingPlanes_KeepsLooserBounds(t *testing.T) {
	view := perspectiveView()
	view.NearPlane = 9.5
	view.FarPlane = 10.5
	w2i, err := transform.New(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)
	before := w2i.Matrix()

	// The box reaches past both planes.
	changed, err := w2i.TightenClippingPlanes([6]float64{-1, 1, -1, 1, -1, 1})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, view, w2i.View())
	assert.Equal(t, before, w2i.Matrix())
}

func TestTightenClippingPlanes_OnlyFarMoves(t *testing.T) {
	view := perspectiveView()
	view.NearPlane = 9.5
	w2i, err := transform.New(view, [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)

	changed, err := w2i.TightenClippingPlanes([6]float64{-1, 1, -1, 1, -1, 1})
	require.NoError(t, err)
	require.True(t, changed)

	fudge := transform.ClipFudgeFraction * (view.FarPlane - view.NearPlane)
	assert.InDelta(t, 9.5, w2i.View().NearPlane, eps)
	assert.InDelta(t, 11+fudge, w2i.View().FarPlane, eps)
}

func TestTightenClippingPlanes_CameraInsideBox(t *testing.T) {
	w2i, err := transform.New(perspectiveView(), [3]float64{1, 1, 1}, 1)
	require.NoError(t, err)

	changed, err := w2i.TightenClippingPlanes([6]float64{-20, 20, -20, 20, -20, 20})
	require.NoError(t, err)
	assert.False(t, changed)
}
