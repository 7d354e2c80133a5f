// Package shadow tessellates ambient soft shadows for 2D renderers.
//
// Given a caster's silhouette polygon (a 2D footprint with per-vertex
// heights) the tessellator emits rings of alpha-blended vertices forming
// a triangle-strip "skirt" around the footprint, suitable for direct
// rasterization by the consuming render pipeline.
package shadow

import "seehuhn.de/go/geom/vec"

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

// Point3 is a caster outline vertex: a position in the xy-plane together
// with the caster's height above that position.
type Point3 struct {
	X, Y, Z float64
}

// Vertex is one emitted shadow vertex: a device-space position and an
// opacity value in the range [0, 1].
type Vertex struct {
	Pos   vec.Vec2
	Alpha float64
}

// StripMode tells the consumer how the emitted vertex buffer is laid out.
type StripMode int

const (
	// SingleRing means the buffer holds an outer (penumbra) ring followed
	// by an inner ring, 2×rayCount vertices in total.
	SingleRing StripMode = iota

	// DoubleRing means a third, innermost ring of duplicated centroid
	// vertices follows the inner ring, filling the umbra underneath a
	// translucent caster; 3×rayCount vertices in total.
	DoubleRing
)

func (m StripMode) String() string {
	switch m {
	case SingleRing:
		return "SingleRing"
	case DoubleRing:
		return "DoubleRing"
	default:
		return "StripMode(unknown)"
	}
}

// Default tessellation parameters.
const (
	// DefaultRayCount is the default number of angular samples.
	// More rays give smoother shadow outlines at higher cost.
	DefaultRayCount = 20

	// DefaultHeightFactor scales how strongly caster height lightens
	// the shadow.
	DefaultHeightFactor = 1.0 / 128

	// DefaultGeomFactor scales the penumbra expansion along the
	// outline normals.
	DefaultGeomFactor = 64.0
)
