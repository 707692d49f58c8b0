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

package geodesy

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

const testTolerance = 1e-9

func TestEllipsoidCatalog(t *testing.T) {
	for _, name := range Names() {
		ell, err := Named(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := ell.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := Named("mars"); err == nil {
		t.Error("expected an error for an unknown ellipsoid")
	}
	if f := WGS84.F(); !floats.EqualWithinAbsOrRel(1/f, 298.257223563, 1e-9, 1e-12) {
		t.Errorf("wgs84 inverse flattening %.12g", 1/f)
	}
	if b := WGS84.B(); math.Abs(b-6356752.314245) > 1e-6 {
		t.Errorf("wgs84 semiminor axis %.6f", b)
	}
}

func TestFromVector(t *testing.T) {
	s, err := FromVector([]float64{6371000})
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsSphere() || s.A != 6371000 {
		t.Errorf("sphere = %+v", s)
	}
	e, err := FromVector([]float64{6378137, 0.08})
	if err != nil {
		t.Fatal(err)
	}
	if e.E != 0.08 {
		t.Errorf("ellipsoid = %+v", e)
	}
	for _, v := range [][]float64{nil, {1, 2, 3}, {-1}, {1, 1.5}} {
		if _, err := FromVector(v); err == nil {
			t.Errorf("%v: expected an error", v)
		}
	}
}

func TestRadii(t *testing.T) {
	if r := WGS84.AuthalicRadius(); math.Abs(r-6371007.1809) > 1e-3 {
		t.Errorf("authalic radius %.4f", r)
	}
	if r := WGS84.RectifyingRadius(); math.Abs(r-6367449.1458) > 1e-3 {
		t.Errorf("rectifying radius %.4f", r)
	}
	if n := PrimeVerticalRadius(WGS84, 0); n != WGS84.A {
		t.Errorf("prime vertical radius at the equator = %g", n)
	}
	if m := MeridionalRadius(WGS84, 0); math.Abs(m-WGS84.A*(1-WGS84.Es())) > 1e-6 {
		t.Errorf("meridional radius at the equator = %g", m)
	}
	if r := UnitSphere.AuthalicRadius(); r != 1 {
		t.Errorf("sphere authalic radius = %g", r)
	}
	if q := Q(UnitSphere, math.Pi/6); math.Abs(q-1) > 1e-15 {
		t.Errorf("sphere q(30°) = %g", q)
	}
	if r := WGS84.A * math.Sqrt(Q(WGS84, math.Pi/2)/2); math.Abs(r-WGS84.AuthalicRadius()) > 1e-6 {
		t.Errorf("radius from q = %.6f", r)
	}
}

func TestMeridianArc(t *testing.T) {
	q := MeridianArc(WGS84, math.Pi/2)
	if math.Abs(q-10001965.7293) > 1e-3 {
		t.Errorf("quarter meridian = %.4f", q)
	}
	for lat := -89.0; lat <= 89; lat += 7 {
		phi := lat * math.Pi / 180
		m := MeridianArc(WGS84, phi)
		if back := InverseMeridianArc(WGS84, m); math.Abs(back-phi) > testTolerance {
			t.Errorf("%g°: inverse meridian arc %.15g", lat, back)
		}
	}
	if phi := InverseMeridianArc(WGS84, 2*q); phi != math.Pi/2 {
		t.Errorf("arc past the pole = %g", phi)
	}
	if m := MeridianArc(Sphere(2), 1); m != 2 {
		t.Errorf("sphere arc = %g", m)
	}
}

func TestGreatCircle(t *testing.T) {
	d, az := GreatCircleInverse(1, 0, 0, 0, math.Pi/2)
	if math.Abs(d-math.Pi/2) > testTolerance || math.Abs(az-math.Pi/2) > testTolerance {
		t.Errorf("equator quarter: %g, %g", d, az)
	}
	pts := [][4]float64{
		{0.1, 0.2, 0.7, -1.3},
		{-0.6, 2.9, 0.3, -2.9},
		{1.2, 0, -1.2, 0.5},
	}
	for _, p := range pts {
		d, az := GreatCircleInverse(6371000, p[0], p[1], p[2], p[3])
		lat, lon := GreatCircleForward(6371000, p[0], p[1], d, az)
		if math.Abs(lat-p[2]) > testTolerance || math.Abs(WrapLongitude(lon-p[3])) > testTolerance {
			t.Errorf("%v: reached %g, %g", p, lat, lon)
		}
	}
}

func TestGreatCirclePole(t *testing.T) {
	for _, start := range []float64{math.Pi / 2, -math.Pi / 2} {
		for _, lon2 := range []float64{-2, 0, 0.5, 3} {
			lat2 := 0.3
			az := Azimuth(start, 0.4, lat2, lon2)
			rng := Distance(start, 0.4, lat2, lon2)
			lat, lon := Reckon(start, 0.4, rng, az)
			if math.Abs(lat-lat2) > testTolerance || math.Abs(WrapLongitude(lon-lon2)) > testTolerance {
				t.Errorf("pole %g to %g: reached %g, %g", start, lon2, lat, lon)
			}
		}
	}
	// The start meridian is the reference direction at a pole.
	if az := Azimuth(math.Pi/2, 0, 0, 0); az != 0 {
		t.Errorf("azimuth along the start meridian = %g", az)
	}
}

func TestRhumb(t *testing.T) {
	d, az := RhumbInverse(WGS84, 0, 0, 0, 0.1)
	if math.Abs(d-WGS84.A*0.1) > 1e-6 || math.Abs(az-math.Pi/2) > testTolerance {
		t.Errorf("equator rhumb: %g, %g", d, az)
	}
	d, az = RhumbInverse(WGS84, 0, 1, 0.5, 1)
	if math.Abs(d-MeridianArc(WGS84, 0.5)) > 1e-6 || az != 0 {
		t.Errorf("meridian rhumb: %g, %g", d, az)
	}
	pts := [][4]float64{
		{0.1, 0.2, 0.7, -1.3},
		{-0.6, 2.9, 0.3, -2.9},
		{0.8, 0, 0.8, 0.5},
	}
	for _, p := range pts {
		d, az := RhumbInverse(WGS84, p[0], p[1], p[2], p[3])
		lat, lon := RhumbForward(WGS84, p[0], p[1], d, az)
		if math.Abs(lat-p[2]) > testTolerance || math.Abs(WrapLongitude(lon-p[3])) > testTolerance {
			t.Errorf("%v: reached %g, %g", p, lat, lon)
		}
	}
}

func TestGeodesic(t *testing.T) {
	g, err := NewGeodesic("WGS84")
	if err != nil {
		t.Fatal(err)
	}
	d, az := g.Inverse(0, 0, 0, math.Pi/180)
	if math.Abs(d-111319.4908) > 1e-2 {
		t.Errorf("one degree of equator = %.4f m", d)
	}
	if math.Abs(az-math.Pi/2) > 1e-9 {
		t.Errorf("azimuth = %g", az)
	}
	lat, lon := g.Forward(0.5, 0.2, 500000, 1)
	d2, az2 := g.Inverse(0.5, 0.2, lat, lon)
	if math.Abs(d2-500000) > 1e-2 || math.Abs(az2-1) > 1e-7 {
		t.Errorf("round trip: %g, %g", d2, az2)
	}
	// The great circle on the authalic sphere is close to the geodesic.
	gc, _ := GreatCircleInverse(WGS84.AuthalicRadius(), 0.5, 0.2, lat, lon)
	if math.Abs(gc-500000)/500000 > 5e-3 {
		t.Errorf("great circle %g too far from geodesic", gc)
	}
	if _, err := NewGeodesic("unitsphere"); err == nil {
		t.Error("expected an error")
	}
}

func TestECEF(t *testing.T) {
	x, y, z := ToECEF(WGS84, 0, 0, 0)
	if x != WGS84.A || y != 0 || z != 0 {
		t.Errorf("origin = %g, %g, %g", x, y, z)
	}
	_, _, z = ToECEF(WGS84, math.Pi/2, 0, 0)
	if math.Abs(z-WGS84.B()) > 1e-6 {
		t.Errorf("pole z = %g", z)
	}
	for _, p := range [][3]float64{{0.3, 1, 100}, {-1.2, -2.5, 8848}, {math.Pi / 2, 0, -10}, {0.7, 3, 4e5}} {
		x, y, z := ToECEF(WGS84, p[0], p[1], p[2])
		lat, lon, h := FromECEF(WGS84, x, y, z)
		if math.Abs(lat-p[0]) > testTolerance || math.Abs(lon-p[1]) > testTolerance || math.Abs(h-p[2]) > 1e-6 {
			t.Errorf("%v -> %g, %g, %g", p, lat, lon, h)
		}
	}
}
