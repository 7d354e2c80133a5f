// seehuhn.de/go/shadow - ambient shadow tessellation for 2D renderers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/shadow"
)

// TestCase defines a single tessellation test.
type TestCase struct {
	Name         string          // lowercase a-z and _ only
	Outline      []shadow.Point3 // caster silhouette (closed loop)
	Centroid     shadow.Point3   // ray origin
	HeightFactor float64         // 0 means shadow.DefaultHeightFactor
	GeomFactor   float64         // 0 means shadow.DefaultGeomFactor
	RayCount     int             // 0 means shadow.DefaultRayCount
	Opaque       bool            // opaque casters omit the umbra ring
	Width        int             // canvas width in pixels (for tools)
	Height       int             // canvas height in pixels (for tools)
	CTM          matrix.Matrix   // outline transform (zero-value means none)
}

// Tessellator returns a tessellator configured for the test case,
// with defaults filled in for unset parameters.
func (tc TestCase) Tessellator() *shadow.Tessellator {
	t := shadow.NewTessellator()
	if tc.RayCount != 0 {
		t.RayCount = tc.RayCount
	}
	if tc.HeightFactor != 0 {
		t.HeightFactor = tc.HeightFactor
	}
	if tc.GeomFactor != 0 {
		t.GeomFactor = tc.GeomFactor
	}
	return t
}

// Caster returns the outline and centroid with the test case CTM
// applied.
func (tc TestCase) Caster() ([]shadow.Point3, shadow.Point3) {
	if tc.CTM == (matrix.Matrix{}) || tc.CTM == matrix.Identity {
		return tc.Outline, tc.Centroid
	}
	outline := shadow.TransformOutline(tc.CTM, tc.Outline, nil)
	centroid := shadow.TransformOutline(tc.CTM, []shadow.Point3{tc.Centroid}, nil)[0]
	return outline, centroid
}

// pt3 is a helper to create a shadow.Point3 from x, y, z coordinates.
func pt3(x, y, z float64) shadow.Point3 {
	return shadow.Point3{X: x, Y: y, Z: z}
}
