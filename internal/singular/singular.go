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

// Package singular moves coordinates away from the singular points of
// projection formulas (the poles and the ±180° meridian) and snaps
// results back onto them afterward.
package singular

import "math"

// Eps is the base distance (radians) coordinates are moved away from a
// singular limit. Callers use small multiples of it.
const Eps = 1e-10

// BackOff returns x moved to within ±(limit − eps) if it lies closer to
// ±limit than that. Values farther away are returned unchanged.
func BackOff(x, limit, eps float64) float64 {
	switch {
	case x > limit-eps:
		return limit - eps
	case x < -limit+eps:
		return -limit + eps
	}
	return x
}

// Snap returns ±limit if x is within eps of it, and x otherwise.
// eps should be larger than the one used to back off.
func Snap(x, limit, eps float64) float64 {
	if math.Abs(math.Abs(x)-limit) < eps {
		return math.Copysign(limit, x)
	}
	return x
}

// Latitude backs a latitude away from the poles.
func Latitude(lat float64, k float64) float64 { return BackOff(lat, math.Pi/2, k*Eps) }

// Longitude backs a longitude away from the ±180° meridian.
func Longitude(lon float64, k float64) float64 { return BackOff(lon, math.Pi, k*Eps) }
