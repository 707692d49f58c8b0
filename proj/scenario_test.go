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

	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/wroge/wgs84"
	"gonum.org/v1/gonum/floats"
)

const earthRadius = 6371000

func onSphere(r float64) func(p *Params) {
	return func(p *Params) { p.Ellipsoid = geodesy.Sphere(r) }
}

func TestMercatorScenario(t *testing.T) {
	pr := newProj(t, "mercator", func(p *Params) {
		onSphere(earthRadius)(p)
		p.MapParallels = []float64{0}
	})
	x, y := pr.ForwardPoint(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("forward(0, 0) = (%g, %g)", x, y)
	}
	x, y = pr.ForwardPoint(0, 90)
	if math.Abs(x-math.Pi*earthRadius/2) > 1e-3 || math.Abs(y) > 1e-3 {
		t.Errorf("forward(0, 90) = (%g, %g)", x, y)
	}
}

func TestPlateCarreeScenario(t *testing.T) {
	pr := newProj(t, "pcarree", onSphere(earthRadius))
	x, y := pr.ForwardPoint(30, 45)
	if !floats.EqualWithinAbsOrRel(x, earthRadius*45*deg2rad, 1e-9, 1e-15) ||
		!floats.EqualWithinAbsOrRel(y, earthRadius*30*deg2rad, 1e-9, 1e-15) {
		t.Errorf("forward(30, 45) = (%g, %g)", x, y)
	}
}

func TestAlbersScenario(t *testing.T) {
	pr := newProj(t, "eqaconic", func(p *Params) {
		withEllipsoid("grs80")(p)
		p.MapParallels = []float64{29.5, 45.5}
		p.Origin = [3]float64{0, -96, 0}
	})
	x, y, rec, err := pr.Forward([]float64{39}, []float64{-98}, Point)
	if err != nil {
		t.Fatal(err)
	}
	lat, lon, err := pr.Inverse(x, y, rec)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lat[0]-39) > 1e-9 || math.Abs(lon[0]+98) > 1e-9 {
		t.Errorf("round trip: (%.12g, %.12g)", lat[0], lon[0])
	}
}

func TestOrthographicScenario(t *testing.T) {
	pr := newProj(t, "ortho", func(p *Params) {
		onSphere(earthRadius)(p)
		p.Origin = [3]float64{90, 0, 0}
		p.FlatLimit[1] = 90
	})
	for _, lon := range []float64{-180, -45, 0, 60, 135} {
		x, y := pr.ForwardPoint(90, lon)
		if math.Abs(x) > 1e-6 || math.Abs(y) > 1e-6 {
			t.Errorf("forward(90, %g) = (%g, %g)", lon, x, y)
		}
	}
	x, y := pr.ForwardPoint(0, 0)
	if math.Abs(x) > 1e-6 || math.Abs(y-earthRadius) > 1e-6 {
		t.Errorf("forward(0, 0) = (%g, %g)", x, y)
	}
}

func TestUTMZoneScenario(t *testing.T) {
	lat, lon, err := ZoneLimits("31N")
	if err != nil {
		t.Fatal(err)
	}
	if lat != [2]float64{0, 8} || lon != [2]float64{0, 6} {
		t.Errorf("limits %v, %v", lat, lon)
	}
	z, err := LimitsToZone(lat, lon)
	if err != nil {
		t.Fatal(err)
	}
	if z != "31N" {
		t.Errorf("zone %s", z)
	}
}

func TestGoodeScenario(t *testing.T) {
	goode := newProj(t, "goode", nil)
	sinu := newProj(t, "sinusoid", nil)
	moll := newProj(t, "mollweid", nil)
	const tol = 1e-12
	// Each side of the seam matches one of its two parent projections and
	// differs measurably from the other.
	xg, yg := goode.ForwardPoint(40.7411, 10)
	xs, ys := sinu.ForwardPoint(40.7411, 10)
	xm, _ := moll.ForwardPoint(40.7411, 10)
	if math.Abs(xg-xs) > tol || math.Abs(yg-ys) > tol {
		t.Errorf("40.7411: (%g, %g), sinusoidal (%g, %g)", xg, yg, xs, ys)
	}
	if math.Abs(xg-xm) < 1e-7 {
		t.Errorf("40.7411: x = %g matches the Mollweide projection", xg)
	}
	xg, yg = goode.ForwardPoint(40.7412, 10)
	xs, ys = sinu.ForwardPoint(40.7412, 10)
	xm, ym := moll.ForwardPoint(40.7412, 10)
	if math.Abs(xg-xm) > tol {
		t.Errorf("40.7412: x = %g, Mollweide %g", xg, xm)
	}
	if math.Abs(xg-xs) < 1e-7 {
		t.Errorf("40.7412: x = %g matches the sinusoidal projection", xg)
	}
	if math.Abs(yg-ym) < 1e-3 {
		t.Errorf("40.7412: y = %g is not offset from the Mollweide %g", yg, ym)
	}
	if math.Abs(yg-ys) > 1e-5 {
		t.Errorf("40.7412: y = %g is discontinuous with the sinusoidal %g", yg, ys)
	}
}

func TestUTMAgainstWGS84(t *testing.T) {
	pr := newProj(t, "utm", func(p *Params) { p.Zone = "32U" })
	tm := wgs84.Transform(wgs84.WGS84().LonLat(), wgs84.WGS84().TransverseMercator(9, 0, 0.9996, 500000, 0))
	for _, pt := range [][2]float64{{48, 9}, {50.5, 7.2}, {55.9, 11.8}, {52, 6.5}} {
		x, y := pr.ForwardPoint(pt[0], pt[1])
		wx, wy, _ := tm(pt[1], pt[0], 0)
		// The reference implementation is itself accurate to about 5 cm.
		if math.Abs(x-wx) > 0.1 || math.Abs(y-wy) > 0.1 {
			t.Errorf("%v: (%.3f, %.3f), want (%.3f, %.3f)", pt, x, y, wx, wy)
		}
	}
}

func TestMercatorAgainstWebMercator(t *testing.T) {
	pr := newProj(t, "mercator", onSphere(6378137))
	web := wgs84.LonLat().To(wgs84.WebMercator())
	for _, pt := range [][2]float64{{0, 0}, {37.5, 127}, {-33.9, 18.4}, {60, -150}} {
		x, y := pr.ForwardPoint(pt[0], pt[1])
		wx, wy, _ := web(pt[1], pt[0], 0)
		if math.Abs(x-wx) > 1e-3 || math.Abs(y-wy) > 1e-3 {
			t.Errorf("%v: (%.4f, %.4f), want (%.4f, %.4f)", pt, x, y, wx, wy)
		}
	}
}
