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

// RhumbInverse returns the length and constant azimuth of the rhumb line
// (loxodrome) between two points on ell.
func RhumbInverse(ell Ellipsoid, lat1, lon1, lat2, lon2 float64) (dist, az float64) {
	dlon := WrapLongitude(lon2 - lon1)
	dm := MeridianArc(ell, lat2) - MeridianArc(ell, lat1)
	if atPole(lat1) != 0 || atPole(lat2) != 0 {
		// Rhumb lines through a pole are meridians.
		az = 0
		if dm < 0 {
			az = math.Pi
		}
		return math.Abs(dm), az
	}
	if math.Abs(lat2-lat1) < 1e-12 {
		az = math.Pi / 2
		if dlon < 0 {
			az = -math.Pi / 2
		}
		return math.Abs(dlon) * PrimeVerticalRadius(ell, lat1) * math.Cos(lat1), az
	}
	dpsi := IsometricLatitude(ell, lat2) - IsometricLatitude(ell, lat1)
	az = math.Atan2(dlon, dpsi)
	return dm / math.Cos(az), az
}

// RhumbForward returns the end point of a rhumb line of length dist and
// azimuth az starting at point 1. Lines running past a pole stop there.
func RhumbForward(ell Ellipsoid, lat1, lon1, dist, az float64) (lat2, lon2 float64) {
	cosaz := math.Cos(az)
	if pole := atPole(lat1); pole != 0 {
		lat2 = InverseMeridianArc(ell, MeridianArc(ell, lat1)-float64(pole)*math.Abs(dist))
		if pole == 1 {
			return lat2, WrapLongitude(lon1 - az)
		}
		return lat2, WrapLongitude(lon1 + az)
	}
	if math.Abs(cosaz) < 1e-12 {
		n := PrimeVerticalRadius(ell, lat1) * math.Cos(lat1)
		return lat1, WrapLongitude(lon1 + dist*math.Sin(az)/n)
	}
	lat2 = InverseMeridianArc(ell, MeridianArc(ell, lat1)+dist*cosaz)
	if atPole(lat2) != 0 {
		return lat2, lon1
	}
	dpsi := IsometricLatitude(ell, lat2) - IsometricLatitude(ell, lat1)
	return lat2, WrapLongitude(lon1 + math.Tan(az)*dpsi)
}
