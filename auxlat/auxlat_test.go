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

package auxlat

import (
	"math"
	"testing"
)

const wgs84E = 0.0818191908426215

var allTypes = []Type{Geodetic, Authalic, Conformal, Rectifying, Parametric}

func TestRoundTrip(t *testing.T) {
	for _, typ := range allTypes {
		for lat := -90.0; lat <= 90; lat += 2.5 {
			phi := lat * math.Pi / 180
			aux, err := Convert(wgs84E, phi, Geodetic, typ)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Convert(wgs84E, aux, typ, Geodetic)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(back-phi) > 1e-12 {
				t.Errorf("%v: %g° -> %.15g -> %.15g", typ, lat, aux, back)
			}
		}
	}
}

func TestAuxToAux(t *testing.T) {
	phi := 0.7
	beta, _ := Convert(wgs84E, phi, Geodetic, Authalic)
	chi, err := Convert(wgs84E, beta, Authalic, Conformal)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Convert(wgs84E, phi, Geodetic, Conformal)
	if math.Abs(chi-want) > 1e-12 {
		t.Errorf("authalic->conformal = %g, want %g", chi, want)
	}
}

func TestSphere(t *testing.T) {
	for _, from := range allTypes {
		for _, to := range allTypes {
			for _, lat := range []float64{-math.Pi / 2, -0.3, 0, 0.9, math.Pi / 2} {
				v, err := Convert(0, lat, from, to)
				if err != nil {
					t.Fatal(err)
				}
				if v != lat {
					t.Errorf("%v->%v on sphere: %g != %g", from, to, v, lat)
				}
			}
		}
	}
}

func TestEquatorAndPoles(t *testing.T) {
	for _, typ := range allTypes {
		for _, lat := range []float64{-math.Pi / 2, 0, math.Pi / 2} {
			v, err := Convert(wgs84E, lat, Geodetic, typ)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(v-lat) > 1e-14 {
				t.Errorf("%v(%g) = %g", typ, lat, v)
			}
		}
	}
}

func TestHemisphereSymmetry(t *testing.T) {
	for _, typ := range allTypes {
		for _, lat := range []float64{1e-3, 0.3, 1.2, math.Pi/2 - 1e-9, math.Pi / 2} {
			n := ConvertNoCheck(wgs84E, lat, Geodetic, typ)
			s := ConvertNoCheck(wgs84E, -lat, Geodetic, typ)
			if n != -s {
				t.Errorf("%v: f(%g) = %.17g, f(%g) = %.17g", typ, lat, n, -lat, s)
			}
			if lat == math.Pi/2-1e-9 {
				continue
			}
			if back := ConvertNoCheck(wgs84E, s, typ, Geodetic); math.Abs(back+lat) > 1e-12 {
				t.Errorf("%v: %g round trips to %.17g", typ, -lat, back)
			}
		}
	}
}

func TestMidLatitude(t *testing.T) {
	phi := 45 * math.Pi / 180
	// Every auxiliary latitude lies slightly equatorward of the geodetic one.
	for _, typ := range allTypes[1:] {
		v, _ := Convert(wgs84E, phi, Geodetic, typ)
		d := (phi - v) * 180 / math.Pi
		if d <= 0 || d > 0.2 {
			t.Errorf("%v: difference %g° out of range", typ, d)
		}
	}
	beta, _ := Convert(wgs84E, phi, Geodetic, Parametric)
	if want := math.Atan(math.Sqrt(1-wgs84E*wgs84E) * math.Tan(phi)); math.Abs(beta-want) > 1e-15 {
		t.Errorf("parametric = %g, want %g", beta, want)
	}
}

func TestRange(t *testing.T) {
	if _, err := Convert(wgs84E, 2, Geodetic, Authalic); err != ErrLatitudeRange {
		t.Errorf("err = %v", err)
	}
	if v := ConvertNoCheck(wgs84E, math.NaN(), Geodetic, Conformal); !math.IsNaN(v) {
		t.Errorf("NaN became %g", v)
	}
	lats := []float64{0.1, math.NaN(), -0.2}
	if err := ConvertSlice(wgs84E, lats, Geodetic, Authalic); err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(lats[1]) {
		t.Error("NaN not preserved")
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range allTypes {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseType("isometric"); err == nil {
		t.Error("expected an error")
	}
}
