package app

import (
	"os"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/transform"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ViewFile is the document read by the view commands.
type ViewFile struct {
	View   domain.ViewInfo `yaml:"view"`
	Scale  [3]float64      `yaml:"scale"`
	Aspect float64         `yaml:"aspect"`
	// Bounds, when set, tightens the clipping planes around this box.
	Bounds *[6]float64 `yaml:"bounds"`
}

// ExtentsFile lists one box (xmin, xmax, ymin, ymax, zmin, zmax) per domain.
type ExtentsFile struct {
	Domains [][6]float64 `yaml:"domains"`
}

// LeafCount returns the number of domains.
func (e ExtentsFile) LeafCount() int { return len(e.Domains) }

// LeafExtents returns the box of domain i.
func (e ExtentsFile) LeafExtents(i int) [6]float64 { return e.Domains[i] }

// TransformResult is the world-to-clip transform of a view.
type TransformResult struct {
	Matrix    transform.Matrix4
	View      domain.ViewInfo
	Tightened bool
}

// Transform computes the world-to-clip matrix of the view in path.
func (a *App) Transform(path string) (TransformResult, error) {
	var vf ViewFile
	if err := readYAML(path, &vf); err != nil {
		return TransformResult{}, err
	}
	if vf.Scale == ([3]float64{}) {
		vf.Scale = [3]float64{1, 1, 1}
	}
	if vf.Aspect == 0 {
		vf.Aspect = 1
	}

	w2i, err := transform.New(vf.View, vf.Scale, vf.Aspect)
	if err != nil {
		return TransformResult{}, err
	}
	tightened := false
	if vf.Bounds != nil {
		if tightened, err = w2i.TightenClippingPlanes(*vf.Bounds); err != nil {
			return TransformResult{}, err
		}
	}
	return TransformResult{Matrix: w2i.Matrix(), View: w2i.View(), Tightened: tightened}, nil
}

// Cull returns the domains of the extents file that the view can see.
func (a *App) Cull(viewPath, extentsPath string) ([]int, error) {
	var vf ViewFile
	if err := readYAML(viewPath, &vf); err != nil {
		return nil, err
	}
	var ef ExtentsFile
	if err := readYAML(extentsPath, &ef); err != nil {
		return nil, err
	}
	return transform.GetDomainsList(vf.View, ef)
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidFile, err.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidFile, err.Error()), "path", path)
	}
	return nil
}
