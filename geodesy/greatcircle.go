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

// poleTol is how close to ±π/2 a start latitude must be to be treated as
// a pole.
const poleTol = 1e-12

// WrapLongitude wraps lon (radians) into [-π, π]. Values already inside the
// interval, including ±π, are returned unchanged.
func WrapLongitude(lon float64) float64 {
	if math.Abs(lon) <= math.Pi {
		return lon
	}
	lon = math.Mod(lon+math.Pi, 2*math.Pi)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	return lon - math.Pi
}

func atPole(lat float64) int {
	switch {
	case lat >= math.Pi/2-poleTol:
		return 1
	case lat <= -math.Pi/2+poleTol:
		return -1
	}
	return 0
}

// Distance returns the angular great-circle distance (radians) between two
// points on a sphere, using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	sdlat := math.Sin((lat2 - lat1) / 2)
	sdlon := math.Sin((lon2 - lon1) / 2)
	h := sdlat*sdlat + math.Cos(lat1)*math.Cos(lat2)*sdlon*sdlon
	if h > 1 {
		h = 1
	}
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Azimuth returns the initial great-circle azimuth (radians clockwise from
// north) from point 1 to point 2.
// Starting from a pole, the azimuth is measured clockwise from the
// direction of the start point's meridian.
func Azimuth(lat1, lon1, lat2, lon2 float64) float64 {
	switch atPole(lat1) {
	case 1:
		return WrapLongitude(lon1 - lon2)
	case -1:
		return WrapLongitude(lon2 - lon1)
	}
	dlon := lon2 - lon1
	return math.Atan2(math.Sin(dlon)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon))
}

// Reckon returns the point reached by traveling the angular distance rng
// (radians) from point 1 along the great circle with initial azimuth az.
// It is the inverse of Distance and Azimuth, including the pole convention.
func Reckon(lat1, lon1, rng, az float64) (lat2, lon2 float64) {
	switch atPole(lat1) {
	case 1:
		return math.Pi/2 - rng, WrapLongitude(lon1 - az)
	case -1:
		return -math.Pi/2 + rng, WrapLongitude(lon1 + az)
	}
	sinlat1, coslat1 := math.Sincos(lat1)
	sinrng, cosrng := math.Sincos(rng)
	s := sinlat1*cosrng + coslat1*sinrng*math.Cos(az)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	lat2 = math.Asin(s)
	lon2 = lon1 + math.Atan2(math.Sin(az)*sinrng*coslat1, cosrng-sinlat1*s)
	return lat2, WrapLongitude(lon2)
}

// GreatCircleInverse returns the distance and initial azimuth between two
// points on a sphere of radius r.
func GreatCircleInverse(r, lat1, lon1, lat2, lon2 float64) (dist, az float64) {
	return r * Distance(lat1, lon1, lat2, lon2), Azimuth(lat1, lon1, lat2, lon2)
}

// GreatCircleForward returns the point a distance dist along azimuth az
// from point 1 on a sphere of radius r.
func GreatCircleForward(r, lat1, lon1, dist, az float64) (lat2, lon2 float64) {
	return Reckon(lat1, lon1, dist/r, az)
}
