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

	"github.com/spatialmodel/mapproj/auxlat"
)

// MeridianArc returns the distance along a meridian from the equator to
// latitude phi (radians), in the units of ell.A.
func MeridianArc(ell Ellipsoid, phi float64) float64 {
	if ell.E == 0 {
		return ell.A * phi
	}
	return ell.RectifyingRadius() * auxlat.ConvertNoCheck(ell.E, phi, auxlat.Geodetic, auxlat.Rectifying)
}

// InverseMeridianArc returns the latitude whose meridian arc from the
// equator is m. It is solved by fixed-point iteration on the rectifying
// latitude. Arcs beyond a quarter meridian are clamped to the pole.
func InverseMeridianArc(ell Ellipsoid, m float64) float64 {
	const (
		tol     = 1e-15
		maxIter = 20
	)
	mu := m / ell.RectifyingRadius()
	if ell.E == 0 {
		mu = m / ell.A
	}
	if mu >= math.Pi/2 {
		return math.Pi / 2
	} else if mu <= -math.Pi/2 {
		return -math.Pi / 2
	}
	if ell.E == 0 {
		return mu
	}
	phi := mu
	for i := 0; i < maxIter; i++ {
		d := mu - auxlat.ConvertNoCheck(ell.E, phi, auxlat.Geodetic, auxlat.Rectifying)
		phi += d
		if math.Abs(d) < tol {
			break
		}
	}
	return phi
}

// PrimeVerticalRadius is the radius of curvature normal to the meridian.
func PrimeVerticalRadius(ell Ellipsoid, phi float64) float64 {
	s := ell.E * math.Sin(phi)
	return ell.A / math.Sqrt(1-s*s)
}

// MeridionalRadius is the radius of curvature along the meridian.
func MeridionalRadius(ell Ellipsoid, phi float64) float64 {
	s := ell.E * math.Sin(phi)
	w := 1 - s*s
	return ell.A * (1 - ell.E*ell.E) / (w * math.Sqrt(w))
}

// IsometricLatitude returns the isometric latitude of phi.
func IsometricLatitude(ell Ellipsoid, phi float64) float64 {
	return auxlat.IsometricLatitude(ell.E, phi)
}

// Q returns the authalic q function of phi, the ratio of the area between
// the equator and phi to the area of a sector of the authalic sphere.
func Q(ell Ellipsoid, phi float64) float64 {
	return auxlat.Q(ell.E, math.Sin(phi))
}
