/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package proj

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestForwardGeom(t *testing.T) {
	pr := newProj(t, "mercator", nil)

	g, err := ForwardGeom(pr, geom.Point{X: 30, Y: 45})
	if err != nil {
		t.Fatal(err)
	}
	x, y := pr.ForwardPoint(45, 30)
	if p := g.(geom.Point); p.X != x || p.Y != y {
		t.Errorf("point %v, want (%g, %g)", p, x, y)
	}

	g, err = ForwardGeom(pr, geom.LineString{{X: 0, Y: 80}, {X: 10, Y: 89}, {X: 20, Y: 80}})
	if err != nil {
		t.Fatal(err)
	}
	ml, ok := g.(geom.MultiLineString)
	if !ok || len(ml) != 2 {
		t.Fatalf("line split into %#v", g)
	}
	for _, l := range ml {
		if len(l) != 2 {
			t.Errorf("part %v", l)
		}
	}

	g, err = ForwardGeom(pr, geom.MultiPoint{{X: 0, Y: 0}, {X: 0, Y: 89}, {X: 10, Y: 10}})
	if err != nil {
		t.Fatal(err)
	}
	if mp := g.(geom.MultiPoint); len(mp) != 2 {
		t.Errorf("multipoint %v", mp)
	}

	if _, err = ForwardGeom(pr, geom.GeometryCollection{}); err == nil {
		t.Error("expected an error for a geometry collection")
	}
}

func TestGeomPolygonRoundTrip(t *testing.T) {
	pr := newProj(t, "eqaazim", nil)
	poly := geom.Polygon{
		{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: -10}},
		{{X: -2, Y: -2}, {X: -2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: -2}, {X: -2, Y: -2}},
	}
	g, err := ForwardGeom(pr, poly)
	if err != nil {
		t.Fatal(err)
	}
	g, err = InverseGeom(pr, g)
	if err != nil {
		t.Fatal(err)
	}
	back := g.(geom.Polygon)
	if len(back) != 2 {
		t.Fatalf("%d rings", len(back))
	}
	for i, r := range back {
		for j, p := range r {
			if math.Abs(p.X-poly[i][j].X) > 1e-9 || math.Abs(p.Y-poly[i][j].Y) > 1e-9 {
				t.Errorf("ring %d vertex %d: %v, want %v", i, j, p, poly[i][j])
			}
		}
	}
}
