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
)

func TestZoneRoundTrip(t *testing.T) {
	zones := Zones()
	if len(zones) != 60*20-3+4 {
		t.Errorf("%d zones", len(zones))
	}
	for _, z := range zones {
		lat, lon, err := ZoneLimits(z)
		if err != nil {
			t.Fatalf("%s: %v", z, err)
		}
		z2, err := LimitsToZone(lat, lon)
		if err != nil {
			t.Fatalf("%s: %v", z, err)
		}
		if z2 != z {
			t.Errorf("%s: limits %v, %v give %s", z, lat, lon, z2)
		}
	}
}

func TestFindZone(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     string
	}{
		{0, 0, "31N"},
		{-0.1, 0, "31M"},
		{40.7, -74, "18T"},
		{60.5, 5, "32V"},
		{60.5, 2.9, "31V"},
		{75, 10, "33X"},
		{75, 8.9, "31X"},
		{83.9, 40, "37X"},
		{84, 40, "Z"},
		{-80.1, -10, "A"},
		{-79.9, 179.99, "60C"},
		{0, 540, "1N"},
	}
	for _, test := range tests {
		z, err := FindZone(test.lat, test.lon)
		if err != nil {
			t.Fatal(err)
		}
		if z != test.want {
			t.Errorf("(%g, %g): %s, want %s", test.lat, test.lon, z, test.want)
		}
	}
	if _, err := FindZone(math.NaN(), 0); err == nil {
		t.Error("expected an error for a NaN latitude")
	}
}

func TestParseZoneErrors(t *testing.T) {
	for _, z := range []string{"", "32X", "34X", "36X", "61N", "0C", "31I", "31O", "C", "123N"} {
		if _, _, err := ZoneLimits(z); err == nil {
			t.Errorf("%q: expected an error", z)
		}
	}
	lat, lon, err := ZoneLimits("18")
	if err != nil {
		t.Fatal(err)
	}
	if lat != [2]float64{-80, 84} || lon != [2]float64{-78, -72} {
		t.Errorf("18: %v, %v", lat, lon)
	}
}

func TestUTMZoneProjections(t *testing.T) {
	for _, z := range Zones() {
		var pr *Projection
		if z == "A" || z == "B" || z == "Y" || z == "Z" {
			pr = newProj(t, "ups", func(p *Params) { p.Zone = z })
		} else {
			pr = newProj(t, "utm", func(p *Params) { p.Zone = z })
		}
		lat, lon, _ := ZoneLimits(z)
		clat, clon := (lat[0]+lat[1])/2, (lon[0]+lon[1])/2
		checkRoundTrip(t, pr, []float64{clat, lat[0] + 0.5}, []float64{clon, lon[0] + 0.5}, roundTripTol)
	}
}

func TestUTMDefaults(t *testing.T) {
	d, err := Defaults(NewParams("utm"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Zone != "31N" || d.Origin[1] != 3 || d.FalseEasting != 5e5 || d.FalseNorthing != 0 || d.ScaleFactor != 0.9996 {
		t.Errorf("%+v", d)
	}
	p := NewParams("utm")
	p.Zone = "56H"
	d, err = Defaults(p)
	if err != nil {
		t.Fatal(err)
	}
	if d.Origin[1] != 153 || d.FalseNorthing != 1e7 || d.TrimLat != [2]float64{-40, -32} || d.TrimLon != [2]float64{-3, 3} {
		t.Errorf("%+v", d)
	}
	p = NewParams("ups")
	p.Zone = "S"
	d, err = Defaults(p)
	if err != nil {
		t.Fatal(err)
	}
	if d.Zone != "south" || d.Origin[0] != -90 || d.FalseEasting != 2e6 || d.FalseNorthing != 2e6 {
		t.Errorf("%+v", d)
	}
}

func TestRecommendedEllipsoids(t *testing.T) {
	names, err := RecommendedEllipsoids("18T")
	if err != nil {
		t.Fatal(err)
	}
	if names[0] != "clarke66" || names[len(names)-1] != "wgs84" {
		t.Errorf("18T: %v", names)
	}
	if _, err := RecommendedEllipsoids("99Q"); err == nil {
		t.Error("expected an error")
	}
}
