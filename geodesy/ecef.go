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

import "math"

// ToECEF converts geodetic latitude and longitude (radians) and height
// above the ellipsoid to earth-centered, earth-fixed cartesian coordinates.
func ToECEF(ell Ellipsoid, lat, lon, h float64) (x, y, z float64) {
	n := PrimeVerticalRadius(ell, lat)
	sinlat, coslat := math.Sincos(lat)
	sinlon, coslon := math.Sincos(lon)
	x = (n + h) * coslat * coslon
	y = (n + h) * coslat * sinlon
	z = (n*(1-ell.E*ell.E) + h) * sinlat
	return
}

// FromECEF converts earth-centered, earth-fixed coordinates to geodetic
// latitude, longitude (radians) and height, using Bowring's iteration.
func FromECEF(ell Ellipsoid, x, y, z float64) (lat, lon, h float64) {
	const (
		tol     = 1e-15
		maxIter = 20
	)
	lon = math.Atan2(y, x)
	p := math.Hypot(x, y)
	if ell.E == 0 {
		return math.Atan2(z, p), lon, math.Hypot(p, z) - ell.A
	}
	es := ell.E * ell.E
	lat = math.Atan2(z, p*(1-es))
	for i := 0; i < maxIter; i++ {
		n := PrimeVerticalRadius(ell, lat)
		sinlat, coslat := math.Sincos(lat)
		if coslat > 1e-10 {
			h = p/coslat - n
		} else {
			h = z/sinlat - n*(1-es)
		}
		next := math.Atan2(z, p*(1-es*n/(n+h)))
		if math.Abs(next-lat) < tol {
			lat = next
			break
		}
		lat = next
	}
	n := PrimeVerticalRadius(ell, lat)
	sinlat, coslat := math.Sincos(lat)
	if coslat > 1e-10 {
		h = p/coslat - n
	} else {
		h = z/sinlat - n*(1-es)
	}
	return lat, lon, h
}
