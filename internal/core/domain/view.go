package domain

// ViewInfo is the camera model a window renders with.
type ViewInfo struct {
	Orthographic   bool       `yaml:"orthographic" json:"orthographic"`
	CameraPosition [3]float64 `yaml:"camera" json:"camera"`
	Focus          [3]float64 `yaml:"focus" json:"focus"`
	ViewUp         [3]float64 `yaml:"viewUp" json:"viewUp"`
	// ViewAngle is the full vertical field of view in degrees.
	ViewAngle     float64    `yaml:"viewAngle" json:"viewAngle"`
	ParallelScale float64    `yaml:"parallelScale" json:"parallelScale"`
	NearPlane     float64    `yaml:"nearPlane" json:"nearPlane"`
	FarPlane      float64    `yaml:"farPlane" json:"farPlane"`
	ImagePan      [2]float64 `yaml:"imagePan" json:"imagePan"`
	ImageZoom     float64    `yaml:"imageZoom" json:"imageZoom"`
}

// DefaultViewInfo looks down -Z at the origin from z=10.
func DefaultViewInfo() ViewInfo {
	return ViewInfo{
		CameraPosition: [3]float64{0, 0, 10},
		ViewUp:         [3]float64{0, 1, 0},
		ViewAngle:      30,
		ParallelScale:  1,
		NearPlane:      0.1,
		FarPlane:       100,
		ImageZoom:      1,
	}
}
