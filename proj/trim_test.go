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
	"gonum.org/v1/gonum/floats"
)

var unitQuad = quadFrame{latMin: -1, latMax: 1, lonMin: -1, lonMax: 1}

func sameWithNaN(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) != math.IsNaN(b[i]) || !math.IsNaN(a[i]) && math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestTrimPoints(t *testing.T) {
	lat := []float64{0, 2, 0.5, math.NaN(), -1.5}
	lon := []float64{0, 0, 3, 0, 0.5}
	wantLat, wantLon := append([]float64(nil), lat...), append([]float64(nil), lon...)
	a, b, rec := trim(unitQuad, lat, lon, Point)
	if !sameWithNaN(a, []float64{0, math.NaN(), math.NaN(), math.NaN(), math.NaN()}) {
		t.Errorf("trimmed latitudes %v", a)
	}
	if rec.Trimmed() != 3 || rec.Clipped() != 0 {
		t.Errorf("trimmed %d, clipped %d", rec.Trimmed(), rec.Clipped())
	}
	a, b = rec.undo(a, b)
	if !sameWithNaN(a, wantLat) || !sameWithNaN(b, wantLon) {
		t.Errorf("undo: %v, %v", a, b)
	}
}

func TestTrimLines(t *testing.T) {
	lat := []float64{0, 0, 0, 0, 0}
	lon := []float64{0, 0.5, 2, 3, 0.5}
	a, b, rec := trim(unitQuad, append([]float64(nil), lat...), append([]float64(nil), lon...), Line)
	nan := math.NaN()
	if !sameWithNaN(a, []float64{0, 0, 0, nan, 0, 0}) || !sameWithNaN(b, []float64{0, 0.5, 1, nan, 1, 0.5}) {
		t.Errorf("trimmed: %v, %v", a, b)
	}
	if rec.Trimmed() != 2 || rec.Clipped() != 2 {
		t.Errorf("trimmed %d, clipped %d", rec.Trimmed(), rec.Clipped())
	}
	a, b = rec.undo(a, b)
	if !sameWithNaN(a, lat) || !sameWithNaN(b, lon) {
		t.Errorf("undo: %v, %v", a, b)
	}
}

func TestTrimLinesCrossing(t *testing.T) {
	// Both ends are outside but the segment passes through the frame.
	lat := []float64{0, 0}
	lon := []float64{-1.5, 1.5}
	a, b, rec := trim(unitQuad, append([]float64(nil), lat...), append([]float64(nil), lon...), Line)
	nan := math.NaN()
	if !sameWithNaN(b, []float64{nan, -1, 1, nan}) || !sameWithNaN(a, []float64{nan, 0, 0, nan}) {
		t.Errorf("trimmed: %v, %v", a, b)
	}
	a, b = rec.undo(a, b)
	if !sameWithNaN(a, lat) || !sameWithNaN(b, lon) {
		t.Errorf("undo: %v, %v", a, b)
	}
}

var world = quadFrame{latMin: -halfPi, latMax: halfPi, lonMin: -math.Pi, lonMax: math.Pi}

func TestTrimLinesSeam(t *testing.T) {
	lat := []float64{0, 0.2}
	lon := []float64{3, -3}
	a, b, rec := trim(world, append([]float64(nil), lat...), append([]float64(nil), lon...), Line)
	nan := math.NaN()
	if !sameWithNaN(a, []float64{0, 0.1, nan, 0.1, 0.2}) || !sameWithNaN(b, []float64{3, math.Pi, nan, -math.Pi, -3}) {
		t.Errorf("trimmed: %v, %v", a, b)
	}
	if rec.Trimmed() != 0 || rec.Clipped() != 2 || rec.Empty() {
		t.Errorf("trimmed %d, clipped %d", rec.Trimmed(), rec.Clipped())
	}
	a, b = rec.undo(a, b)
	if !sameWithNaN(a, lat) || !sameWithNaN(b, lon) {
		t.Errorf("undo: %v, %v", a, b)
	}

	// A segment that leaves the frame across the seam and stays outside.
	narrow := quadFrame{latMin: -halfPi, latMax: halfPi, lonMin: -3.1, lonMax: 3.1}
	lat = []float64{0, 0, 0}
	lon = []float64{3, -3.12, -3}
	a, b, rec = trim(narrow, append([]float64(nil), lat...), append([]float64(nil), lon...), Line)
	if !sameWithNaN(b, []float64{3, 3.1, nan, -3.1, -3}) {
		t.Errorf("trimmed: %v, %v", a, b)
	}
	if rec.Trimmed() != 1 || rec.Clipped() != 2 {
		t.Errorf("trimmed %d, clipped %d", rec.Trimmed(), rec.Clipped())
	}
	a, b = rec.undo(a, b)
	if !sameWithNaN(a, lat) || !sameWithNaN(b, lon) {
		t.Errorf("undo: %v, %v", a, b)
	}
}

func TestTrimPolygonsSeam(t *testing.T) {
	lat := []float64{-0.5, -0.5, 0.5, 0.5, -0.5}
	lon := []float64{3, -3, -3, 3, 3}
	a, b, rec := trim(world, append([]float64(nil), lat...), append([]float64(nil), lon...), Polygon)
	var rings [][]geom.Point
	var ring []geom.Point
	for i := range a {
		if math.IsNaN(a[i]) {
			rings = append(rings, ring)
			ring = nil
			continue
		}
		if math.Abs(b[i]) > math.Pi+frameTol {
			t.Errorf("vertex (%g, %g) outside the frame", a[i], b[i])
		}
		ring = append(ring, geom.Point{X: b[i], Y: a[i]})
	}
	rings = append(rings, ring)
	if len(rings) != 2 {
		t.Fatalf("%d rings: %v, %v", len(rings), a, b)
	}
	for _, r := range rings {
		if area := math.Abs(geom.Polygon{r}.Area()); math.Abs(area-(math.Pi-3)) > 1e-9 {
			t.Errorf("ring area %g", area)
		}
	}
	if rec.Empty() {
		t.Error("record is empty")
	}
	a, b = rec.undo(a, b)
	if !floats.Equal(a, lat) || !floats.Equal(b, lon) {
		t.Errorf("undo: %v, %v", a, b)
	}
}

func TestTrimPolygons(t *testing.T) {
	lat := []float64{-2, -2, 2, 2, -2}
	lon := []float64{-2, 2, 2, -2, -2}
	a, b, rec := trim(unitQuad, append([]float64(nil), lat...), append([]float64(nil), lon...), Polygon)
	var ring []geom.Point
	for i := range a {
		if a[i] < -1-frameTol || a[i] > 1+frameTol || b[i] < -1-frameTol || b[i] > 1+frameTol {
			t.Errorf("vertex (%g, %g) outside the frame", a[i], b[i])
		}
		ring = append(ring, geom.Point{X: b[i], Y: a[i]})
	}
	if area := math.Abs(geom.Polygon{ring}.Area()); math.Abs(area-4) > 1e-9 {
		t.Errorf("area %g", area)
	}
	if rec.Empty() {
		t.Error("record is empty")
	}
	a, b = rec.undo(a, b)
	if !floats.Equal(a, lat) || !floats.Equal(b, lon) {
		t.Errorf("undo: %v, %v", a, b)
	}

	in := []float64{0, 0.5, 0.5, 0}
	a, _, rec = trim(unitQuad, in, []float64{0, 0, 0.5, 0}, Polygon)
	if !rec.Empty() || !floats.Equal(a, in) {
		t.Error("polygon inside the frame was changed")
	}
}

func TestCircleFrameClip(t *testing.T) {
	c := circleFrame{rmax: 1}
	t0, t1, ok := c.clip(0, 0, 2, 0)
	if !ok || t0 != 0 || math.Abs(t1-0.5) > 1e-15 {
		t.Errorf("clip = %g, %g, %v", t0, t1, ok)
	}
	if _, _, ok = c.clip(2, 2, 3, 2); ok {
		t.Error("segment outside the circle was clipped")
	}
	x, y := c.toPlane(0.5, math.Pi/2)
	if math.Abs(x-0.5) > 1e-15 || math.Abs(y) > 1e-15 || !c.contains(x, y) {
		t.Errorf("toPlane = (%g, %g)", x, y)
	}
	if rng, az := c.fromPlane(x, y); math.Abs(rng-0.5) > 1e-15 || math.Abs(az-math.Pi/2) > 1e-15 {
		t.Errorf("fromPlane = (%g, %g)", rng, az)
	}
}

func TestForwardTrimUndo(t *testing.T) {
	pr := newProj(t, "mercator", nil)
	lat := []float64{0, 45, 88, 89, 60, 10}
	lon := []float64{0, 10, 20, 30, 40, 50}
	x, y, rec, err := pr.Forward(lat, lon, Line)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Trimmed() != 2 || rec.Clipped() != 2 {
		t.Errorf("trimmed %d, clipped %d", rec.Trimmed(), rec.Clipped())
	}
	for i := range y {
		if !math.IsNaN(y[i]) && math.Abs(y[i]) > math.Asinh(math.Tan(86*deg2rad))+1e-9 {
			t.Errorf("y[%d] = %g is beyond the trimmed latitude", i, y[i])
		}
	}
	if n := floats.Count(math.IsNaN, x); n != 1 {
		t.Errorf("%d NaN separators", n)
	}
	lat2, lon2, err := pr.Inverse(x, y, rec)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(lat2, lat, 1e-9) || !floats.EqualApprox(lon2, lon, 1e-9) {
		t.Errorf("undo: %v, %v", lat2, lon2)
	}

	x, _, rec, err = pr.Forward([]float64{0, 10}, []float64{170, -170}, Line)
	if err != nil {
		t.Fatal(err)
	}
	if len(x) != 5 || !math.IsNaN(x[2]) || !(x[1] > x[0]) || !(x[3] < x[4]) || rec.Clipped() != 2 {
		t.Errorf("antimeridian: x = %v, clipped %d", x, rec.Clipped())
	}

	pr = newProj(t, "ortho", nil)
	x, _, rec, err = pr.Forward([]float64{0, 0, 10}, []float64{0, 120, 170}, Point)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Trimmed() != 2 || !math.IsNaN(x[1]) || !math.IsNaN(x[2]) || math.IsNaN(x[0]) {
		t.Errorf("x = %v, trimmed %d", x, rec.Trimmed())
	}
}
