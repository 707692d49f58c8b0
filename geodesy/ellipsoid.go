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

// Package geodesy holds the reference ellipsoid model and the geodetic
// computations the map projections are built on: meridian arcs, radii of
// curvature, great circles, rhumb lines, geodesics and earth-centered
// cartesian coordinates.
package geodesy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spatialmodel/mapproj/auxlat"
)

// Ellipsoid is a reference ellipsoid of revolution, defined by its
// semimajor axis A and first eccentricity E. E == 0 is a sphere of radius A.
type Ellipsoid struct {
	Name string  `toml:"name,omitempty"`
	A    float64 `toml:"a"`
	E    float64 `toml:"e"`
}

// Sphere returns a sphere with radius r.
func Sphere(r float64) Ellipsoid { return Ellipsoid{A: r} }

// NewEllipsoid returns an ellipsoid with semimajor axis a and eccentricity e.
func NewEllipsoid(a, e float64) (Ellipsoid, error) {
	ell := Ellipsoid{A: a, E: e}
	return ell, ell.Validate()
}

// FromVector normalizes the raw vector form of an ellipsoid: a single
// element is a sphere radius and two elements are [semimajor axis, eccentricity].
func FromVector(v []float64) (Ellipsoid, error) {
	switch len(v) {
	case 1:
		return NewEllipsoid(v[0], 0)
	case 2:
		return NewEllipsoid(v[0], v[1])
	}
	return Ellipsoid{}, fmt.Errorf("geodesy: ellipsoid vector must have 1 or 2 elements; it has %d", len(v))
}

// FromFlattening returns an ellipsoid from its semimajor axis and
// inverse flattening.
func FromFlattening(name string, a, invf float64) Ellipsoid {
	f := 1 / invf
	return Ellipsoid{Name: name, A: a, E: math.Sqrt(2*f - f*f)}
}

// Validate checks that the ellipsoid parameters are usable.
func (ell Ellipsoid) Validate() error {
	if !(ell.A > 0) || math.IsInf(ell.A, 0) {
		return fmt.Errorf("geodesy: semimajor axis must be positive and finite; got %g", ell.A)
	}
	if !(ell.E >= 0 && ell.E < 1) {
		return fmt.Errorf("geodesy: eccentricity must be in [0, 1); got %g", ell.E)
	}
	return nil
}

// Vector returns the raw [a, e] form of the ellipsoid.
func (ell Ellipsoid) Vector() []float64 { return []float64{ell.A, ell.E} }

// IsSphere reports whether the eccentricity is zero.
func (ell Ellipsoid) IsSphere() bool { return ell.E == 0 }

// Es is the squared eccentricity.
func (ell Ellipsoid) Es() float64 { return ell.E * ell.E }

// F is the flattening.
func (ell Ellipsoid) F() float64 { return 1 - math.Sqrt(1-ell.E*ell.E) }

// B is the semiminor axis.
func (ell Ellipsoid) B() float64 { return ell.A * math.Sqrt(1-ell.E*ell.E) }

// N is the third flattening (a-b)/(a+b).
func (ell Ellipsoid) N() float64 { return auxlat.ThirdFlattening(ell.E) }

// AuthalicRadius is the radius of the sphere with the same surface area.
func (ell Ellipsoid) AuthalicRadius() float64 {
	if ell.E == 0 {
		return ell.A
	}
	return ell.A * math.Sqrt(auxlat.Q(ell.E, 1)/2)
}

// RectifyingRadius is the radius of the sphere with the same meridian length.
func (ell Ellipsoid) RectifyingRadius() float64 {
	n := ell.N()
	n2 := n * n
	return ell.A / (1 + n) * (1 + n2/4 + n2*n2/64 + n2*n2*n2/256)
}

func (ell Ellipsoid) String() string {
	if ell.Name != "" {
		return ell.Name
	}
	return fmt.Sprintf("[%g %g]", ell.A, ell.E)
}

var catalog = map[string]Ellipsoid{
	"wgs84":         FromFlattening("wgs84", 6378137, 298.257223563),
	"grs80":         FromFlattening("grs80", 6378137, 298.257222101),
	"wgs72":         FromFlattening("wgs72", 6378135, 298.26),
	"clarke66":      FromFlattening("clarke66", 6378206.4, 294.978698214),
	"clarke80":      FromFlattening("clarke80", 6378249.145, 293.465),
	"international": FromFlattening("international", 6378388, 297),
	"bessel":        FromFlattening("bessel", 6377397.155, 299.1528128),
	"airy":          FromFlattening("airy", 6377563.396, 299.3249646),
	"everest":       FromFlattening("everest", 6377276.345, 300.8017),
	"krasovsky":     FromFlattening("krasovsky", 6378245, 298.3),
	"earth":         {Name: "earth", A: 6371000},
	"unitsphere":    {Name: "unitsphere", A: 1},
}

// Named returns the catalog ellipsoid with the given (case-insensitive) name.
func Named(name string) (Ellipsoid, error) {
	ell, ok := catalog[strings.ToLower(name)]
	if !ok {
		return Ellipsoid{}, fmt.Errorf("geodesy: unknown ellipsoid %q", name)
	}
	return ell, nil
}

// Names lists the catalog ellipsoids.
func Names() []string {
	var names []string
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = catalog["wgs84"]

// UnitSphere is a sphere of radius 1.
var UnitSphere = catalog["unitsphere"]
