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

package distort

import (
	"math"
	"testing"

	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/spatialmodel/mapproj/proj"
)

func newProj(t *testing.T, id string, ell *geodesy.Ellipsoid) *proj.Projection {
	t.Helper()
	p := proj.NewParams(id)
	if ell != nil {
		p.Ellipsoid = *ell
	}
	pr, err := proj.New(p)
	if err != nil {
		t.Fatalf("%s: %v", id, err)
	}
	return pr
}

type point struct{ lat, lon float64 }

func grid(lats, lons []float64) []point {
	var pts []point
	for _, la := range lats {
		for _, lo := range lons {
			pts = append(pts, point{la, lo})
		}
	}
	return pts
}

var (
	world = grid([]float64{-50, -20, 0, 35, 60}, []float64{-100, -30, 10, 80})
	local = grid([]float64{-30, 0, 25}, []float64{-40, 5, 30})
	// offEquator avoids the kink at the equator of projections whose
	// hemispheres are defined separately.
	offEquator = grid([]float64{-50, -20, 5, 35, 60}, []float64{-100, -30, 10, 80})
)

func TestEqualArea(t *testing.T) {
	wgs84 := geodesy.WGS84
	tests := []struct {
		id  string
		ell *geodesy.Ellipsoid
		pts []point
	}{
		{"eqacylin", nil, world}, {"eqacylin", &wgs84, world}, {"behrmann", &wgs84, world},
		{"sinusoid", nil, world}, {"sinusoid", &wgs84, world},
		{"mollweid", nil, world}, {"mollweid", &wgs84, world},
		{"hatano", nil, offEquator}, {"goode", nil, world}, {"eckert2", nil, offEquator},
		{"eckert4", nil, world}, {"eckert6", &wgs84, world}, {"wagner4", nil, world},
		{"craster", nil, world}, {"quartic", nil, world}, {"collig", nil, world},
		{"kavrsky5", nil, world}, {"kavrsky6", nil, world}, {"flatplrq", nil, world},
		{"bonne", nil, world}, {"bonne", &wgs84, world}, {"werner", nil, world},
		{"eqaconic", nil, world}, {"eqaconic", &wgs84, world}, {"eqaconicstd", &wgs84, world},
		{"eqaazim", nil, world}, {"eqaazim", &wgs84, world}, {"wiechel", nil, local},
		{"hammer", nil, world}, {"briesemeister", nil, local},
	}
	// The published constants of these projections are rounded.
	tolerance := map[string]float64{"hatano": 1e-5, "wagner4": 1e-5}
	for _, test := range tests {
		pr := newProj(t, test.id, test.ell)
		tol, ok := tolerance[test.id]
		if !ok {
			tol = 1e-6
		}
		for _, pt := range test.pts {
			s, err := At(pr, pt.lat, pt.lon)
			if err != nil {
				t.Fatalf("%s: %v", test.id, err)
			}
			if math.Abs(s.Area-1) > tol {
				t.Errorf("%s %v: area scale %g", test.id, pt, s.Area)
			}
		}
	}
}

func TestConformal(t *testing.T) {
	wgs84 := geodesy.WGS84
	tests := []struct {
		id  string
		ell *geodesy.Ellipsoid
		pts []point
	}{
		{"mercator", nil, world}, {"mercator", &wgs84, world},
		{"lambert", nil, world}, {"lambert", &wgs84, world}, {"lambertstd", &wgs84, world},
		{"stereo", nil, world}, {"stereo", &wgs84, local},
		{"tranmerc", nil, local}, {"tranmerc", &wgs84, grid([]float64{-60, -10, 0, 45, 70}, []float64{-15, -3, 0, 8})},
		{"utm", nil, grid([]float64{1, 4, 7}, []float64{0.5, 3, 5.5})},
		{"ups", nil, grid([]float64{84.5, 87}, []float64{-120, 0, 45, 170})},
	}
	for _, test := range tests {
		pr := newProj(t, test.id, test.ell)
		for _, pt := range test.pts {
			s, err := At(pr, pt.lat, pt.lon)
			if err != nil {
				t.Fatalf("%s: %v", test.id, err)
			}
			if math.Abs(s.H-s.K) > 1e-6*s.K || s.Omega > 1e-4 {
				t.Errorf("%s %v: h = %g, k = %g, ω = %g", test.id, pt, s.H, s.K, s.Omega)
			}
		}
	}
}

func TestEquidistant(t *testing.T) {
	wgs84 := geodesy.WGS84
	for _, ell := range []*geodesy.Ellipsoid{nil, &wgs84} {
		for _, id := range []string{"eqdcylin", "eqdconic", "pcarree"} {
			pr := newProj(t, id, ell)
			for _, pt := range world {
				s, err := At(pr, pt.lat, pt.lon)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(s.H-1) > 1e-6 {
					t.Errorf("%s %v: h = %g", id, pt, s.H)
				}
			}
		}
	}
}

func TestStandardParallel(t *testing.T) {
	for id, lat := range map[string]float64{"behrmann": 30, "pcarree": 0, "giso": 45, "mercator": 0} {
		pr := newProj(t, id, nil)
		s, err := At(pr, lat, 20)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(s.K-1) > 1e-6 {
			t.Errorf("%s: k = %g at latitude %g", id, s.K, lat)
		}
	}
	pr := newProj(t, "utm", nil)
	s, err := At(pr, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.K-0.9996) > 1e-6 {
		t.Errorf("utm: k = %g on the central meridian", s.K)
	}
}

func TestTissot(t *testing.T) {
	pr := newProj(t, "pcarree", nil)
	s, err := At(pr, 60, 0)
	if err != nil {
		t.Fatal(err)
	}
	// k = sec 60° = 2, h = 1.
	if math.Abs(s.A-2) > 1e-6 || math.Abs(s.B-1) > 1e-6 || math.Abs(s.Area-2) > 1e-6 {
		t.Errorf("%+v", s)
	}
	want := 2 * math.Asin(1.0/3) * 180 / math.Pi
	if math.Abs(s.Omega-want) > 1e-4 {
		t.Errorf("ω = %g, want %g", s.Omega, want)
	}
	if _, err := At(pr, 90, 0); err == nil {
		t.Error("expected an error at the pole")
	}
}
